package ports

import (
	"context"

	"github.com/openblog/bloglist/internal/core/domain"
)

// CommentService defines the use-case operations on comments. Comments are
// deliberately unauthenticated: anyone may post or list them.
type CommentService interface {
	Add(ctx context.Context, blogID, content string) (*domain.Comment, error)
	ListForBlog(ctx context.Context, blogID string) ([]*domain.Comment, error)
}
