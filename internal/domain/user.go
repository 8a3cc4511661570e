package domain

import "context"

// User represents a registered account.
type User struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
}

// UserUpdate holds the fields a user update may change. Nil means "leave as is".
type UserUpdate struct {
	Name     *string
	Password *string
}

// UniqueKey identifies a user by exactly one of id or email.
// ID is signed so out-of-range values reach validation intact.
type UniqueKey struct {
	ID    int
	Email string
}

// UserRepository defines the data access interface for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, req PageRequest) (*PageResult[User], error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error
}

// AuthUser is the decoded token identity attached to authenticated requests.
type AuthUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// UserService defines the business logic interface for users.
type UserService interface {
	Create(ctx context.Context, name, email, password string) (*User, string, error)
	FindByUniqueKey(ctx context.Context, key UniqueKey) (*User, error)
	List(ctx context.Context, req PageRequest) (*PageResult[User], error)
	Update(ctx context.Context, id uint, upd UserUpdate) (*User, error)
	Delete(ctx context.Context, id uint) error
	Login(ctx context.Context, email, password string) (*User, string, error)
}
