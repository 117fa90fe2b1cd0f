package ports

import (
	"context"

	"github.com/openblog/bloglist/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and returns the stored document. A username
	// collision surfaces as domain.ErrUsernameTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	// AddBlog appends blogID to the user's owned-blog list atomically.
	AddBlog(ctx context.Context, userID, blogID string) error
	// RemoveBlog removes blogID from the user's owned-blog list atomically.
	RemoveBlog(ctx context.Context, userID, blogID string) error
	DeleteAll(ctx context.Context) error
}
