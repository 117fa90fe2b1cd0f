package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/openblog/bloglist/internal/core/domain"
	"github.com/openblog/bloglist/internal/core/ports"
	"github.com/openblog/bloglist/internal/core/stats"
)

// BlogService implements blog CRUD and the ownership rules that keep the
// User.Blogs list and Blog.UserID reference consistent with each other.
type BlogService struct {
	blogs ports.BlogRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewBlogService(blogs ports.BlogRepository, users ports.UserRepository, log zerolog.Logger) *BlogService {
	return &BlogService{blogs: blogs, users: users, log: log}
}

// List returns all blogs with their owner summaries embedded. Owners are
// fetched once per distinct user id and projected at read time.
func (s *BlogService) List(ctx context.Context) ([]ports.BlogView, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	owners := make(map[string]*ports.OwnerSummary)
	views := make([]ports.BlogView, 0, len(blogs))
	for _, b := range blogs {
		owner, ok := owners[b.UserID]
		if !ok {
			owner = s.ownerSummary(ctx, b.UserID)
			owners[b.UserID] = owner
		}
		views = append(views, blogView(b, owner))
	}
	return views, nil
}

// Create inserts a blog owned by the requester and appends its id to the
// owner's blog list. The two writes form one logical operation: when the
// list append fails, the inserted blog is removed again.
func (s *BlogService) Create(ctx context.Context, input ports.CreateBlogInput, requesterID string) (*ports.BlogView, error) {
	if requesterID == "" {
		return nil, domain.ErrTokenMissing
	}

	likes := 0
	if input.Likes != nil {
		likes = *input.Likes
	}

	blog := &domain.Blog{
		Title:     input.Title,
		Author:    input.Author,
		URL:       input.URL,
		Likes:     likes,
		UserID:    requesterID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.blogs.Insert(ctx, blog)
	if err != nil {
		return nil, err
	}

	if err := s.users.AddBlog(ctx, requesterID, created.ID); err != nil {
		s.log.Error().Err(err).Str("blog_id", created.ID).Str("user_id", requesterID).
			Msg("owner list update failed, removing inserted blog")
		if delErr := s.blogs.Delete(ctx, created.ID); delErr != nil {
			s.log.Error().Err(delErr).Str("blog_id", created.ID).Msg("compensating delete failed")
		}
		return nil, err
	}

	s.log.Info().Str("blog_id", created.ID).Str("user_id", requesterID).Str("title", created.Title).
		Msg("blog created")

	view := blogView(created, s.ownerSummary(ctx, requesterID))
	return &view, nil
}

// Update replaces the supplied fields of a blog. The ownership rule matches
// Delete: only the creator may update. The reference implementation shipped
// with this check disabled; it is enforced here.
func (s *BlogService) Update(ctx context.Context, blogID string, patch domain.BlogPatch, requesterID string) (*ports.BlogView, error) {
	if requesterID == "" {
		return nil, domain.ErrTokenMissing
	}

	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog.UserID != requesterID {
		return nil, domain.ErrNotBlogOwner
	}

	updated, err := s.blogs.Update(ctx, blogID, patch)
	if err != nil {
		return nil, err
	}

	view := blogView(updated, s.ownerSummary(ctx, updated.UserID))
	return &view, nil
}

// Delete removes a blog and withdraws its id from the owner's blog list.
// Only the creator may delete. The owner-list pull happens first so a
// failure on either step leaves both documents consistent: a failed pull
// changes nothing, and a failed blog delete is compensated by restoring
// the pulled reference.
func (s *BlogService) Delete(ctx context.Context, blogID, requesterID string) error {
	if requesterID == "" {
		return domain.ErrTokenMissing
	}

	blog, err := s.blogs.FindByID(ctx, blogID)
	if err != nil {
		return err
	}
	if blog.UserID != requesterID {
		return domain.ErrNotBlogOwner
	}

	if err := s.users.RemoveBlog(ctx, requesterID, blogID); err != nil {
		return err
	}
	if err := s.blogs.Delete(ctx, blogID); err != nil {
		s.log.Error().Err(err).Str("blog_id", blogID).Str("user_id", requesterID).
			Msg("blog delete failed, restoring owner list entry")
		if addErr := s.users.AddBlog(ctx, requesterID, blogID); addErr != nil {
			s.log.Error().Err(addErr).Str("blog_id", blogID).Msg("compensating owner list restore failed")
		}
		return err
	}

	s.log.Info().Str("blog_id", blogID).Str("user_id", requesterID).Msg("blog deleted")
	return nil
}

// Stats computes the aggregate summary over every stored blog.
func (s *BlogService) Stats(ctx context.Context) (*ports.BlogStats, error) {
	found, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	batch := make([]domain.Blog, 0, len(found))
	for _, b := range found {
		batch = append(batch, *b)
	}

	return &ports.BlogStats{
		TotalLikes: stats.TotalLikes(batch),
		Favorite:   stats.FavoriteBlog(batch),
		MostBlogs:  stats.MostBlogs(batch),
		MostLikes:  stats.MostLikes(batch),
	}, nil
}

// ownerSummary resolves the owner projection for embedding. A dangling
// reference yields nil rather than failing the whole read.
func (s *BlogService) ownerSummary(ctx context.Context, userID string) *ports.OwnerSummary {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("owner lookup failed")
		}
		return nil
	}
	return &ports.OwnerSummary{ID: user.ID, Username: user.Username, Name: user.Name}
}

func blogView(b *domain.Blog, owner *ports.OwnerSummary) ports.BlogView {
	return ports.BlogView{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		URL:       b.URL,
		Likes:     b.Likes,
		CreatedAt: b.CreatedAt,
		User:      owner,
	}
}
