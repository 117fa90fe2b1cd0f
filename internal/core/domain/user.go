package domain

import (
	"errors"
	"time"
)

// Registration rules enforced before any user document is written.
const (
	MinUsernameLength = 3
	MinPasswordLength = 3
)

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username must be unique")
var ErrUsernameTooShort = errors.New("username should be at least 3 characters")
var ErrPasswordAbsent = errors.New("password is absent")
var ErrPasswordTooShort = errors.New("password should be at least 3 characters")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrTooManyLogins = errors.New("too many login attempts")

// User models a registered account. Blogs holds the ids of every blog the
// user owns, in creation order; it is kept consistent with Blog.UserID by
// every mutation that adds or removes ownership.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Blogs        []string  `json:"blogs"`
	CreatedAt    time.Time `json:"created_at"`
}
