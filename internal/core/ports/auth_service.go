package ports

import (
	"context"

	"github.com/openblog/bloglist/internal/core/domain"
)

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	// Login returns a signed token for the user on success. Bad credentials
	// surface as domain.ErrInvalidCredentials; repeated failures for the same
	// username surface as domain.ErrTooManyLogins.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
