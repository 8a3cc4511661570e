package pkg

import (
	"time"

	"gorm.io/gorm"

	"github.com/gustavods/storefront/internal/domain"
)

// FilterRule validates a raw query value and returns a GORM scope applying
// the corresponding WHERE predicate. Rules are registered per entity in a
// whitelist table; query keys outside the table are rejected, which keeps
// per-field validation in one place and blocks arbitrary field probing.
type FilterRule func(value string) (func(*gorm.DB) *gorm.DB, error)

// BuildFilter turns the raw filter map of a page request into a single GORM
// scope. Any key without a rule fails with 400 "Invalid filter field <key>"
// (page and limit are stripped before the map reaches this point).
func BuildFilter(filter map[string]string, rules map[string]FilterRule) (func(*gorm.DB) *gorm.DB, error) {
	scopes := make([]func(*gorm.DB) *gorm.DB, 0, len(filter))
	for key, value := range filter {
		rule, ok := rules[key]
		if !ok {
			return nil, domain.NewValidationError("Invalid filter field " + key)
		}
		scope, err := rule(value)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, scope)
	}
	return func(db *gorm.DB) *gorm.DB {
		for _, s := range scopes {
			db = s(db)
		}
		return db
	}, nil
}

// EmailRule matches column exactly after validating the email format.
func EmailRule(column string) FilterRule {
	return func(value string) (func(*gorm.DB) *gorm.DB, error) {
		if err := Email(value); err != nil {
			return nil, err
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" = ?", value)
		}, nil
	}
}

// ContainsRule produces a LIKE '%value%' predicate on column.
func ContainsRule(column string) FilterRule {
	return func(value string) (func(*gorm.DB) *gorm.DB, error) {
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" LIKE ?", "%"+value+"%")
		}, nil
	}
}

// NumberRule matches column against a validated integer value.
func NumberRule(field, column string) FilterRule {
	return func(value string) (func(*gorm.DB) *gorm.DB, error) {
		n, err := Number(field, value)
		if err != nil {
			return nil, err
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" = ?", n)
		}, nil
	}
}

// DateRule matches rows whose column timestamp falls on the given calendar day.
func DateRule(field, column string) FilterRule {
	return func(value string) (func(*gorm.DB) *gorm.DB, error) {
		day, err := Date(field, value)
		if err != nil {
			return nil, err
		}
		next := day.Add(24 * time.Hour)
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(column+" >= ? AND "+column+" < ?", day, next)
		}, nil
	}
}
