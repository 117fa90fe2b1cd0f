package ports

import (
	"context"

	"github.com/openblog/bloglist/internal/core/domain"
)

// BlogRef is the projection of an owned blog embedded in user listings.
type BlogRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// UserView is a user joined with projections of the blogs they own.
type UserView struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
	Blogs    []BlogRef `json:"blogs"`
}

// UserService defines registration and user listing.
type UserService interface {
	// Register validates the credentials, hashes the password, and persists
	// the user. Validation failures surface as the domain sentinel errors.
	Register(ctx context.Context, username, name, password string) (*domain.User, error)
	List(ctx context.Context) ([]UserView, error)
}
