package user

import "time"

// CreateUserRequest is the signup payload.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest is the partial update payload. Only name and password
// may change; a nil field is left untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserResponse is the signup response: the public identity plus a
// freshly issued token. The password never appears in any response.
type CreateUserResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	Token     string     `json:"token"`
}

// LoginResponse is the login response.
type LoginResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
