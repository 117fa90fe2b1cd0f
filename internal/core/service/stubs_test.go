package service

import (
	"context"
	"fmt"

	"github.com/openblog/bloglist/internal/core/domain"
)

// In-memory repositories shared by the service tests. Ids are assigned
// sequentially; err fields inject failures for specific operations.

type stubUserRepo struct {
	users   []*domain.User
	nextID  int
	addErr  error
	pullErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.Blogs = append([]string(nil), u.Blogs...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.nextID++
	if clone.Blogs == nil {
		clone.Blogs = []string{}
	}
	r.users = append(r.users, clone)
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) AddBlog(_ context.Context, userID, blogID string) error {
	if r.addErr != nil {
		return r.addErr
	}
	for _, u := range r.users {
		if u.ID == userID {
			u.Blogs = append(u.Blogs, blogID)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) RemoveBlog(_ context.Context, userID, blogID string) error {
	if r.pullErr != nil {
		return r.pullErr
	}
	for _, u := range r.users {
		if u.ID == userID {
			kept := u.Blogs[:0]
			for _, id := range u.Blogs {
				if id != blogID {
					kept = append(kept, id)
				}
			}
			u.Blogs = kept
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) DeleteAll(context.Context) error {
	r.users = nil
	return nil
}

type stubBlogRepo struct {
	blogs     []*domain.Blog
	nextID    int
	deleteErr error
}

func newStubBlogRepo() *stubBlogRepo {
	return &stubBlogRepo{nextID: 1}
}

func cloneBlog(b *domain.Blog) *domain.Blog {
	clone := *b
	return &clone
}

func (r *stubBlogRepo) Insert(_ context.Context, blog *domain.Blog) (*domain.Blog, error) {
	clone := cloneBlog(blog)
	clone.ID = fmt.Sprintf("blog-%d", r.nextID)
	r.nextID++
	r.blogs = append(r.blogs, clone)
	return cloneBlog(clone), nil
}

func (r *stubBlogRepo) FindByID(_ context.Context, id string) (*domain.Blog, error) {
	for _, b := range r.blogs {
		if b.ID == id {
			return cloneBlog(b), nil
		}
	}
	return nil, domain.ErrBlogNotFound
}

func (r *stubBlogRepo) FindAll(_ context.Context) ([]*domain.Blog, error) {
	out := make([]*domain.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		out = append(out, cloneBlog(b))
	}
	return out, nil
}

func (r *stubBlogRepo) Update(_ context.Context, id string, patch domain.BlogPatch) (*domain.Blog, error) {
	for _, b := range r.blogs {
		if b.ID == id {
			if patch.Title != nil {
				b.Title = *patch.Title
			}
			if patch.Author != nil {
				b.Author = *patch.Author
			}
			if patch.URL != nil {
				b.URL = *patch.URL
			}
			if patch.Likes != nil {
				b.Likes = *patch.Likes
			}
			return cloneBlog(b), nil
		}
	}
	return nil, domain.ErrBlogNotFound
}

func (r *stubBlogRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	for i, b := range r.blogs {
		if b.ID == id {
			r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
			return nil
		}
	}
	return domain.ErrBlogNotFound
}

func (r *stubBlogRepo) DeleteAll(context.Context) error {
	r.blogs = nil
	return nil
}

type stubCommentRepo struct {
	comments []*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{nextID: 1}
}

func (r *stubCommentRepo) Insert(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	clone := *comment
	clone.ID = fmt.Sprintf("comment-%d", r.nextID)
	r.nextID++
	r.comments = append(r.comments, &clone)
	copied := clone
	return &copied, nil
}

func (r *stubCommentRepo) FindByBlog(_ context.Context, blogID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.BlogID == blogID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) DeleteAll(context.Context) error {
	r.comments = nil
	return nil
}

// stubThrottle counts failures in memory; blocked forces the check result.
type stubThrottle struct {
	failures map[string]int
	blocked  bool
}

func newStubThrottle() *stubThrottle {
	return &stubThrottle{failures: make(map[string]int)}
}

func (t *stubThrottle) TooManyFailures(_ context.Context, username string) (bool, error) {
	return t.blocked, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, username string) error {
	t.failures[username]++
	return nil
}

func (t *stubThrottle) Clear(_ context.Context, username string) error {
	delete(t.failures, username)
	return nil
}
