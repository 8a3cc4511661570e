package domain

import "context"

// Store represents a commercial store. Every store has exactly one owner
// (the business owner, linked through UserStore) and one creator (the
// authenticated user who performed the create).
type Store struct {
	BaseModel
	Name      string     `gorm:"size:255;not null" json:"name"`
	Address   string     `gorm:"size:255;not null" json:"address"`
	Logo      string     `gorm:"size:512;not null" json:"logo"`
	URL       string     `gorm:"size:512;not null" json:"url"`
	CreatedBy uint       `gorm:"not null" json:"createdBy"`
	Creator   *User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	OwnerLink *UserStore `gorm:"foreignKey:StoreID" json:"owner,omitempty"`
}

// UserStore is the join row associating a store with its owning user.
type UserStore struct {
	BaseModel
	StoreID uint  `gorm:"not null;uniqueIndex" json:"storeId"`
	OwnerID uint  `gorm:"not null" json:"ownerId"`
	Owner   *User `gorm:"foreignKey:OwnerID" json:"user,omitempty"`
}

// StoreCreate holds the validated input for creating a store.
type StoreCreate struct {
	Name    string
	Address string
	Logo    string
	URL     string
	Owner   uint
}

// StoreUpdate holds the fields a store update may change. Nil means "leave as is".
type StoreUpdate struct {
	Name    *string
	Address *string
	Logo    *string
	URL     *string
	Owner   *uint
}

// Empty reports whether the update carries no changes at all.
func (u StoreUpdate) Empty() bool {
	return u.Name == nil && u.Address == nil && u.Logo == nil && u.URL == nil && u.Owner == nil
}

// StoreRepository defines the data access interface for stores.
// Create and DeleteMany are transactional: the store row and its owner link
// are written (or removed) atomically.
type StoreRepository interface {
	Create(ctx context.Context, store *Store, ownerID uint) error
	GetByID(ctx context.Context, id uint) (*Store, error)
	GetByIDs(ctx context.Context, ids []uint) ([]Store, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Store], error)
	Update(ctx context.Context, store *Store, newOwnerID *uint) error
	Delete(ctx context.Context, id uint) error
	DeleteMany(ctx context.Context, ids []uint) error
}

// StoreService defines the business logic interface for stores.
type StoreService interface {
	Create(ctx context.Context, data StoreCreate, creator AuthUser) (*Store, error)
	FindByID(ctx context.Context, id uint) (*Store, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Store], error)
	Update(ctx context.Context, id uint, upd StoreUpdate) (*Store, error)
	Delete(ctx context.Context, id uint) error
	DeleteMany(ctx context.Context, ids []uint) error
}
