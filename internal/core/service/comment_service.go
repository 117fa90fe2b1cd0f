package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/openblog/bloglist/internal/core/domain"
	"github.com/openblog/bloglist/internal/core/ports"
)

// CommentService implements anonymous commenting on blogs.
type CommentService struct {
	comments ports.CommentRepository
	blogs    ports.BlogRepository
	log      zerolog.Logger
}

func NewCommentService(comments ports.CommentRepository, blogs ports.BlogRepository, log zerolog.Logger) *CommentService {
	return &CommentService{comments: comments, blogs: blogs, log: log}
}

// Add attaches a comment to the blog. The parent must exist at creation
// time; comments are not removed when the blog later disappears.
func (s *CommentService) Add(ctx context.Context, blogID, content string) (*domain.Comment, error) {
	if _, err := s.blogs.FindByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Content:   content,
		BlogID:    blogID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Insert(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("blog_id", blogID).Str("comment_id", created.ID).Msg("comment added")
	return created, nil
}

func (s *CommentService) ListForBlog(ctx context.Context, blogID string) ([]*domain.Comment, error) {
	return s.comments.FindByBlog(ctx, blogID)
}
