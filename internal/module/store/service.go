package store

import (
	"context"
	"time"

	"github.com/gustavods/storefront/internal/domain"
)

// storeService implements domain.StoreService.
type storeService struct {
	repo  domain.StoreRepository
	users domain.UserRepository
}

// NewStoreService creates a new StoreService. The user repository backs the
// owner-existence checks on create and update.
func NewStoreService(repo domain.StoreRepository, users domain.UserRepository) domain.StoreService {
	return &storeService{repo: repo, users: users}
}

// Create validates the payload, requires the owner user to exist, and
// persists the store together with its owner link. The creator link comes
// from the authenticated identity.
func (s *storeService) Create(ctx context.Context, data domain.StoreCreate, creator domain.AuthUser) (*domain.Store, error) {
	if err := validateCreate(data); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, data.Owner); err != nil {
		return nil, err
	}

	store := &domain.Store{
		Name:      data.Name,
		Address:   data.Address,
		Logo:      data.Logo,
		URL:       data.URL,
		CreatedBy: creator.ID,
	}

	if err := s.repo.Create(ctx, store, data.Owner); err != nil {
		if domain.IsInternal(err) {
			return nil, domain.NewAppError(domain.CodeInternal, "Error creating store", err)
		}
		return nil, err
	}

	return store, nil
}

// FindByID fetches a store with its owner and creator projections.
func (s *storeService) FindByID(ctx context.Context, id uint) (*domain.Store, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of stores matching the request's filter.
func (s *storeService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Store], error) {
	return s.repo.List(ctx, req)
}

// Update applies a partial update to an existing store. An owner change
// requires the new owner user to exist and repoints the owner link.
func (s *storeService) Update(ctx context.Context, id uint, upd domain.StoreUpdate) (*domain.Store, error) {
	store, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Owner != nil {
		if _, err := s.users.GetByID(ctx, *upd.Owner); err != nil {
			return nil, err
		}
	}

	if upd.Name != nil {
		store.Name = *upd.Name
	}
	if upd.Address != nil {
		store.Address = *upd.Address
	}
	if upd.Logo != nil {
		store.Logo = *upd.Logo
	}
	if upd.URL != nil {
		store.URL = *upd.URL
	}

	now := time.Now()
	store.UpdatedAt = &now

	// Detach projections so Save only touches the stores table.
	store.OwnerLink = nil
	store.Creator = nil

	if err := s.repo.Update(ctx, store, upd.Owner); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

// Delete removes a store after confirming it exists.
func (s *storeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// DeleteMany removes every requested store, failing before any delete when
// one of the ids does not exist.
func (s *storeService) DeleteMany(ctx context.Context, ids []uint) error {
	stores, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if err := checkAllFound(stores, ids); err != nil {
		return err
	}
	return s.repo.DeleteMany(ctx, ids)
}
