package store

import (
	"encoding/json"
	"fmt"

	"github.com/gustavods/storefront/internal/domain"
	"github.com/gustavods/storefront/internal/pkg"
)

// updateFields is the closed set of fields a store update may carry.
var updateFields = map[string]bool{
	"name":    true,
	"address": true,
	"logo":    true,
	"url":     true,
	"owner":   true,
}

// validateCreate checks the full store creation payload.
func validateCreate(data domain.StoreCreate) error {
	if err := pkg.Required("Name", data.Name); err != nil {
		return err
	}
	if err := pkg.Required("Address", data.Address); err != nil {
		return err
	}
	if err := pkg.Required("Logo", data.Logo); err != nil {
		return err
	}
	if err := pkg.Required("URL", data.URL); err != nil {
		return err
	}
	if data.Owner == 0 {
		return domain.NewValidationError("Owner is required")
	}
	return nil
}

// parseUpdate turns a raw JSON object into a StoreUpdate, rejecting unknown
// fields, wrongly typed values, and empty payloads.
func parseUpdate(raw map[string]any) (domain.StoreUpdate, error) {
	var upd domain.StoreUpdate

	if len(raw) == 0 {
		return upd, domain.NewValidationError("No data to update")
	}

	for field, value := range raw {
		if !updateFields[field] {
			return upd, domain.NewValidationError("Invalid field " + field)
		}

		if field == "owner" {
			n, ok := value.(float64)
			if !ok {
				return upd, domain.NewValidationError("Invalid Owner type, it must be a number")
			}
			if n < 1 {
				return upd, domain.NewValidationError("Owner is required")
			}
			owner := uint(n)
			upd.Owner = &owner
			continue
		}

		s, ok := value.(string)
		if !ok {
			return upd, domain.NewValidationError("Invalid " + label(field) + " type, it must be a string")
		}
		if err := pkg.Required(label(field), s); err != nil {
			return upd, err
		}

		v := s
		switch field {
		case "name":
			upd.Name = &v
		case "address":
			upd.Address = &v
		case "logo":
			upd.Logo = &v
		case "url":
			upd.URL = &v
		}
	}

	return upd, nil
}

// parseBulkIDs parses the ids query value (a JSON array) and rejects
// non-numeric entries and duplicates.
func parseBulkIDs(raw string) ([]uint, error) {
	if raw == "" {
		return nil, domain.NewValidationError("Stores is required")
	}

	var parsed []any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, domain.NewValidationError("Stores must be an array")
	}
	if len(parsed) == 0 {
		return nil, domain.NewValidationError("Stores is empty")
	}

	ids := make([]uint, 0, len(parsed))
	seen := make(map[uint]bool, len(parsed))
	for _, v := range parsed {
		n, ok := v.(float64)
		if !ok || n != float64(int64(n)) || n < 1 {
			return nil, domain.NewValidationError("Id must be a number")
		}
		id := uint(n)
		if seen[id] {
			return nil, domain.NewValidationError(fmt.Sprintf("Store %d is repeated", id))
		}
		seen[id] = true
		ids = append(ids, id)
	}

	return ids, nil
}

// checkAllFound compares fetched stores against the requested ids and fails
// naming the first missing one.
func checkAllFound(stores []domain.Store, ids []uint) error {
	if len(stores) == 0 {
		return domain.NewNotFoundError("Stores not found")
	}

	found := make(map[uint]bool, len(stores))
	for _, s := range stores {
		found[s.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return domain.NewNotFoundError(fmt.Sprintf("Store %d not found", id))
		}
	}
	return nil
}

// label maps a JSON field name to its message label.
func label(field string) string {
	switch field {
	case "name":
		return "Name"
	case "address":
		return "Address"
	case "logo":
		return "Logo"
	case "url":
		return "URL"
	default:
		return field
	}
}

// errStoreNotFound is the not-found answer shared by lookups.
func errStoreNotFound() error {
	return domain.NewNotFoundError("Store not found")
}
