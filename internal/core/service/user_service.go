package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/openblog/bloglist/internal/core/domain"
	"github.com/openblog/bloglist/internal/core/ports"
)

// UserService implements registration and user listing.
type UserService struct {
	users ports.UserRepository
	blogs ports.BlogRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, blogs ports.BlogRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, blogs: blogs, log: log}
}

func (s *UserService) Register(ctx context.Context, username, name, password string) (*domain.User, error) {
	if len(username) < domain.MinUsernameLength {
		return nil, domain.ErrUsernameTooShort
	}
	if password == "" {
		return nil, domain.ErrPasswordAbsent
	}
	if len(password) < domain.MinPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Blogs:        []string{},
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return created, nil
}

// List returns every user with a projection of the blogs they own. The join
// runs at read time: blogs are fetched once and indexed by id, then each
// user's owned-blog list is resolved against the index.
func (s *UserService) List(ctx context.Context) ([]ports.UserView, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Blog, len(blogs))
	for _, b := range blogs {
		byID[b.ID] = b
	}

	views := make([]ports.UserView, 0, len(users))
	for _, u := range users {
		refs := make([]ports.BlogRef, 0, len(u.Blogs))
		for _, id := range u.Blogs {
			b, ok := byID[id]
			if !ok {
				continue
			}
			refs = append(refs, ports.BlogRef{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL})
		}
		views = append(views, ports.UserView{
			ID:       u.ID,
			Username: u.Username,
			Name:     u.Name,
			Blogs:    refs,
		})
	}
	return views, nil
}
