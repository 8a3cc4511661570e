package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gustavods/storefront/internal/domain"
	"github.com/gustavods/storefront/internal/pkg"
)

// filterRules whitelists the query fields a store list may filter on.
var filterRules = map[string]pkg.FilterRule{
	"name":      pkg.ContainsRule("name"),
	"address":   pkg.ContainsRule("address"),
	"logo":      pkg.ContainsRule("logo"),
	"url":       pkg.ContainsRule("url"),
	"createdAt": pkg.DateRule("CreatedAt", "stores.created_at"),
	"updatedAt": pkg.DateRule("UpdatedAt", "stores.updated_at"),
	"createdBy": pkg.NumberRule("CreatedBy", "created_by"),
	"owner":     ownerRule,
}

// ownerRule filters stores through their owner link in user_stores.
func ownerRule(value string) (func(*gorm.DB) *gorm.DB, error) {
	n, err := pkg.Number("Owner", value)
	if err != nil {
		return nil, err
	}
	return func(db *gorm.DB) *gorm.DB {
		return db.Joins("JOIN user_stores ON user_stores.store_id = stores.id").
			Where("user_stores.owner_id = ?", n)
	}, nil
}

// storeRepository implements domain.StoreRepository using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new StoreRepository backed by the given GORM database.
func NewStoreRepository(db *gorm.DB) domain.StoreRepository {
	return &storeRepository{db: db}
}

// Create inserts the store and its owner link in one transaction.
func (r *storeRepository) Create(ctx context.Context, store *domain.Store, ownerID uint) error {
	err := pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Create(store).Error; err != nil {
			return err
		}
		link := &domain.UserStore{StoreID: store.ID, OwnerID: ownerID}
		if err := tx.Create(link).Error; err != nil {
			return err
		}
		store.OwnerLink = link
		return nil
	})
	if err != nil {
		return mapError(err)
	}
	return nil
}

// GetByID retrieves a store with its owner and creator projections.
func (r *storeRepository) GetByID(ctx context.Context, id uint) (*domain.Store, error) {
	var store domain.Store
	err := r.db.WithContext(ctx).
		Preload("OwnerLink.Owner").
		Preload("Creator").
		First(&store, id).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &store, nil
}

// GetByIDs fetches every store whose id is in ids, without projections.
func (r *storeRepository) GetByIDs(ctx context.Context, ids []uint) ([]domain.Store, error) {
	var stores []domain.Store
	if err := r.db.WithContext(ctx).Find(&stores, ids).Error; err != nil {
		return nil, mapError(err)
	}
	return stores, nil
}

// List returns one page of stores matching the request's filter, along with
// the total count across all pages.
func (r *storeRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Store], error) {
	filter, err := pkg.BuildFilter(req.Filter, filterRules)
	if err != nil {
		return nil, err
	}

	base := r.db.WithContext(ctx).Model(&domain.Store{}).Scopes(filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, mapError(err)
	}

	var stores []domain.Store
	if err := base.Scopes(pkg.Paginate(req)).Find(&stores).Error; err != nil {
		return nil, mapError(err)
	}

	return pkg.NewPageResult(stores, total, req), nil
}

// Update saves store changes and, when newOwnerID is set, repoints the owner
// link in the same transaction.
func (r *storeRepository) Update(ctx context.Context, store *domain.Store, newOwnerID *uint) error {
	err := pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Save(store).Error; err != nil {
			return err
		}
		if newOwnerID != nil {
			return tx.Model(&domain.UserStore{}).
				Where("store_id = ?", store.ID).
				Updates(map[string]any{"owner_id": *newOwnerID, "updated_at": store.UpdatedAt}).Error
		}
		return nil
	})
	if err != nil {
		return mapError(err)
	}
	return nil
}

// Delete removes a store and its owner link in one transaction.
func (r *storeRepository) Delete(ctx context.Context, id uint) error {
	return r.DeleteMany(ctx, []uint{id})
}

// DeleteMany removes the given stores and their owner links atomically.
func (r *storeRepository) DeleteMany(ctx context.Context, ids []uint) error {
	err := pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Where("store_id IN ?", ids).Delete(&domain.UserStore{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Store{}, ids).Error
	})
	if err != nil {
		return mapError(err)
	}
	return nil
}

// mapError converts GORM errors to domain errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errStoreNotFound()
	}
	return domain.NewAppError(domain.CodeInternal, "database error", err)
}
