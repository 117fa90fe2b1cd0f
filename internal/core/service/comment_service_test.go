package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/openblog/bloglist/internal/core/domain"
)

func TestCommentService_AddAndList(t *testing.T) {
	blogs := newStubBlogRepo()
	comments := newStubCommentRepo()
	svc := NewCommentService(comments, blogs, zerolog.Nop())

	blog, _ := blogs.Insert(context.Background(), &domain.Blog{Title: "t", Author: "a", URL: "u", UserID: "user-1"})

	created, err := svc.Add(context.Background(), blog.ID, "nice post")
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.ID == "" || created.BlogID != blog.ID {
		t.Fatalf("unexpected comment: %+v", created)
	}

	listed, err := svc.ListForBlog(context.Background(), blog.ID)
	if err != nil {
		t.Fatalf("ListForBlog returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].Content != "nice post" {
		t.Fatalf("unexpected comments: %+v", listed)
	}
}

func TestCommentService_Add_UnknownBlog(t *testing.T) {
	svc := NewCommentService(newStubCommentRepo(), newStubBlogRepo(), zerolog.Nop())

	if _, err := svc.Add(context.Background(), "missing", "hello"); !errors.Is(err, domain.ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestCommentService_CommentsSurviveBlogDeletion(t *testing.T) {
	users := newStubUserRepo()
	blogs := newStubBlogRepo()
	comments := newStubCommentRepo()
	owner, _ := users.Create(context.Background(), &domain.User{Username: "xyl"})

	blogSvc := NewBlogService(blogs, users, zerolog.Nop())
	commentSvc := NewCommentService(comments, blogs, zerolog.Nop())

	blog, _ := blogs.Insert(context.Background(), &domain.Blog{Title: "t", Author: "a", URL: "u", UserID: owner.ID})
	_ = users.AddBlog(context.Background(), owner.ID, blog.ID)
	if _, err := commentSvc.Add(context.Background(), blog.ID, "orphan me"); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if err := blogSvc.Delete(context.Background(), blog.ID, owner.ID); err != nil {
		t.Fatalf("delete blog: %v", err)
	}

	listed, err := commentSvc.ListForBlog(context.Background(), blog.ID)
	if err != nil {
		t.Fatalf("ListForBlog returned error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("comments should survive blog deletion, got %d", len(listed))
	}
}
