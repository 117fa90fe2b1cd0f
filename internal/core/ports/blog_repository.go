package ports

import (
	"context"

	"github.com/openblog/bloglist/internal/core/domain"
)

// BlogRepository defines persistence operations for blogs.
type BlogRepository interface {
	Insert(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	// FindAll returns every blog in creation order.
	FindAll(ctx context.Context) ([]*domain.Blog, error)
	// Update applies the non-nil fields of patch to the blog and returns the
	// updated document.
	Update(ctx context.Context, id string, patch domain.BlogPatch) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
