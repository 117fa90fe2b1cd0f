package ports

import (
	"context"

	"github.com/openblog/bloglist/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	// FindByBlog returns the comments attached to blogID in creation order.
	FindByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error)
	DeleteAll(ctx context.Context) error
}
