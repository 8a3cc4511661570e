package pkg

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/gustavods/storefront/internal/domain"
)

// Field validators. Each check is a pure function returning a
// *domain.AppError with CodeValidation whose message names the field,
// so handlers can surface it verbatim.

// emailPattern is a deliberately loose local@domain.tld check.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// dateLayout is the calendar date format accepted by filters.
const dateLayout = "2006-01-02"

// Required fails when value is empty.
func Required(field, value string) error {
	if value == "" {
		return domain.NewValidationError(field + " is required")
	}
	return nil
}

// MinLen fails when value is shorter than min runes. Empty values fail the
// Required message rather than the length one.
func MinLen(field, value string, min int) error {
	if err := Required(field, value); err != nil {
		return err
	}
	if utf8.RuneCountInString(value) < min {
		return domain.NewValidationError(fmt.Sprintf("%s must be at least %d characters", field, min))
	}
	return nil
}

// Email fails when value is empty or does not look like local@domain.tld.
func Email(value string) error {
	if err := Required("Email", value); err != nil {
		return err
	}
	if !emailPattern.MatchString(value) {
		return domain.NewValidationError("Invalid email")
	}
	return nil
}

// Number parses value as an integer, failing with a typed-field message.
func Number(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, domain.NewValidationError("Invalid " + field + " type, it must be a number")
	}
	return n, nil
}

// Date parses value as a calendar date, failing with a typed-field message.
func Date(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("Invalid " + field + " type, it must be a timestamp")
	}
	return t, nil
}
