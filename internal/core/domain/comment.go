package domain

import "time"

// Comment is an anonymous remark attached to a blog. Comments carry no
// ownership and survive the deletion of their parent blog.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	BlogID    string    `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}
