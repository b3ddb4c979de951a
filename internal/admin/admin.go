package admin

import "errors"

// Admin is a back-office account. Password holds the bcrypt hash and is never
// serialized.
type Admin struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

var (
	ErrNotFound           = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
