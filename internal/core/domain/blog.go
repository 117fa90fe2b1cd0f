package domain

import (
	"errors"
	"time"
)

var ErrBlogNotFound = errors.New("blog not found")
var ErrTokenMissing = errors.New("token missing or invalid")
var ErrInvalidToken = errors.New("invalid token")

// ErrNotBlogOwner is returned when an authenticated caller attempts to mutate
// a blog owned by somebody else. The reference API answers 401 for this case,
// not 403, and clients depend on the exact message.
var ErrNotBlogOwner = errors.New("only the creator of the blog is authorized")

// Blog is the core aggregate. UserID references the owning User, whose Blogs
// list contains this blog's id; the pair is maintained together on create
// and delete.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Likes     int       `json:"likes"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogPatch carries the fields of a full-replace update. Nil fields keep the
// stored value, so a likes-only update does not clear the title.
type BlogPatch struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}
