package user

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gustavods/storefront/internal/domain"
	"github.com/gustavods/storefront/internal/module/auth"
)

// userService implements domain.UserService.
type userService struct {
	repo   domain.UserRepository
	tokens auth.TokenService
}

// NewUserService creates a new UserService with the given repository and token service.
func NewUserService(repo domain.UserRepository, tokens auth.TokenService) domain.UserService {
	return &userService{repo: repo, tokens: tokens}
}

// Create validates the signup payload, rejects taken emails, hashes the
// password, persists the user, and issues a token for the new identity.
func (s *userService) Create(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateCreate(name, email, password); err != nil {
		return nil, "", err
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, "", domain.NewAppError(domain.CodeAlreadyExists, "User already exists", nil)
	} else if !domain.IsNotFound(err) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(domain.AuthUser{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates by email and password and issues a token.
// An unknown email answers 404; a bad password answers 401.
func (s *userService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if err := validateLogin(email, password); err != nil {
		return nil, "", err
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, "", errUserNotFound()
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.NewAppError(domain.CodeUnauthorized, "Invalid password", nil)
	}

	token, err := s.tokens.Generate(domain.AuthUser{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// FindByUniqueKey fetches a user by id or email after validating the key.
func (s *userService) FindByUniqueKey(ctx context.Context, key domain.UniqueKey) (*domain.User, error) {
	if err := validateUniqueKey(key); err != nil {
		return nil, err
	}

	if key.ID != 0 {
		return s.repo.GetByID(ctx, uint(key.ID))
	}
	return s.repo.GetByEmail(ctx, key.Email)
}

// List returns a paginated list of users matching the request's filter.
func (s *userService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return s.repo.List(ctx, req)
}

// Update applies a partial update to an existing user. Only name and
// password may change; a present password is re-hashed before persisting.
func (s *userService) Update(ctx context.Context, id uint, upd domain.UserUpdate) (*domain.User, error) {
	if err := validateUpdate(upd); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
		}
		user.PasswordHash = string(hash)
	}

	now := time.Now()
	user.UpdatedAt = &now

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user after confirming it exists.
func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
