package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	e := NewAppError(CodeInternal, "database error", errors.New("disk full"))
	if got := e.Error(); got != "database error: disk full" {
		t.Errorf("Error()=%q; want %q", got, "database error: disk full")
	}

	e = NewValidationError("Email is required")
	if got := e.Error(); got != "Email is required" {
		t.Errorf("Error()=%q; want %q", got, "Email is required")
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		fn   func(error) bool
		want bool
	}{
		{"not found", NewNotFoundError("User not found"), IsNotFound, true},
		{"not found sentinel", ErrNotFound, IsNotFound, true},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), IsNotFound, true},
		{"already exists", NewAppError(CodeAlreadyExists, "User already exists", nil), IsAlreadyExists, true},
		{"validation", NewValidationError("Name is required"), IsValidation, true},
		{"unauthorized", ErrUnauthorized, IsUnauthorized, true},
		{"internal", NewAppError(CodeInternal, "database error", nil), IsInternal, true},
		{"wrong code", NewValidationError("x"), IsNotFound, false},
		{"plain error", errors.New("boom"), IsInternal, false},
		{"nil", nil, IsNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.err); got != tt.want {
				t.Errorf("got %v; want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFoundError("Store not found"), http.StatusNotFound},
		{"already exists", NewAppError(CodeAlreadyExists, "User already exists", nil), http.StatusBadRequest},
		{"validation", NewValidationError("Email is required"), http.StatusBadRequest},
		{"unauthorized", NewAppError(CodeUnauthorized, "Invalid password", nil), http.StatusUnauthorized},
		{"internal", NewAppError(CodeInternal, "database error", nil), http.StatusInternalServerError},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
		{"nil", nil, http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("ctx: %w", NewNotFoundError("User not found")), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatusCode(tt.err); got != tt.want {
				t.Errorf("HTTPStatusCode=%d; want %d", got, tt.want)
			}
		})
	}
}
