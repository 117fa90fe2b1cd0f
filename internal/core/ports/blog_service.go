package ports

import (
	"context"
	"time"

	"github.com/openblog/bloglist/internal/core/domain"
	"github.com/openblog/bloglist/internal/core/stats"
)

// CreateBlogInput carries all data needed to create a blog. Likes is a
// pointer so an absent field can default to zero without conflating it with
// an explicit zero.
type CreateBlogInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// OwnerSummary is the projection of the owning user embedded in blog
// responses. It deliberately omits the owner's blog list.
type OwnerSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// BlogView is a blog joined with its owner summary at read time.
type BlogView struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Author    string        `json:"author"`
	URL       string        `json:"url"`
	Likes     int           `json:"likes"`
	CreatedAt time.Time     `json:"created_at"`
	User      *OwnerSummary `json:"user,omitempty"`
}

// BlogStats aggregates the whole collection. Nil sub-results mean the
// collection was empty.
type BlogStats struct {
	TotalLikes int
	Favorite   *stats.FavoriteResult
	MostBlogs  *stats.MostBlogsResult
	MostLikes  *stats.MostLikesResult
}

// BlogService defines the use-case operations on blogs. Every mutating
// operation takes the requester's user id; an empty id means the request
// carried no usable token and fails with domain.ErrTokenMissing.
type BlogService interface {
	List(ctx context.Context) ([]BlogView, error)
	Create(ctx context.Context, input CreateBlogInput, requesterID string) (*BlogView, error)
	Update(ctx context.Context, blogID string, patch domain.BlogPatch, requesterID string) (*BlogView, error)
	Delete(ctx context.Context, blogID, requesterID string) error
	// Stats computes the aggregate summary over every stored blog.
	Stats(ctx context.Context) (*BlogStats, error)
}
