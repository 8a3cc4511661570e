package user

import (
	"github.com/gustavods/storefront/internal/domain"
	"github.com/gustavods/storefront/internal/pkg"
)

const (
	minPasswordLen = 3
	minNameLen     = 3
)

// validateCreate checks the full signup payload.
func validateCreate(name, email, password string) error {
	if err := pkg.Email(email); err != nil {
		return err
	}
	if err := pkg.MinLen("Password", password, minPasswordLen); err != nil {
		return err
	}
	return pkg.MinLen("Name", name, minNameLen)
}

// validateLogin checks the login payload with the same field rules.
func validateLogin(email, password string) error {
	if err := pkg.Email(email); err != nil {
		return err
	}
	return pkg.MinLen("Password", password, minPasswordLen)
}

// validateUpdate applies the create rules only to fields present.
func validateUpdate(upd domain.UserUpdate) error {
	if upd.Name != nil {
		if err := pkg.MinLen("Name", *upd.Name, minNameLen); err != nil {
			return err
		}
	}
	if upd.Password != nil {
		if err := pkg.MinLen("Password", *upd.Password, minPasswordLen); err != nil {
			return err
		}
	}
	return nil
}

// validateUniqueKey requires id or email, with id at least 1 when given.
func validateUniqueKey(key domain.UniqueKey) error {
	if key.ID == 0 && key.Email == "" {
		return domain.NewValidationError("Key must have id or email")
	}
	if key.Email != "" {
		if err := pkg.Email(key.Email); err != nil {
			return err
		}
	}
	if key.ID != 0 && key.ID < 1 {
		return domain.NewValidationError("Id must be at least 1")
	}
	return nil
}

// errUserNotFound is the not-found answer shared by lookups.
func errUserNotFound() error {
	return domain.NewNotFoundError("User not found")
}
