// Package stats computes summary statistics over a batch of blogs.
//
// All functions are pure and deterministic for a given input order; ties are
// always resolved in favour of the first candidate encountered.
package stats

import "github.com/openblog/bloglist/internal/core/domain"

// FavoriteResult identifies the single most-liked blog.
type FavoriteResult struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// MostBlogsResult identifies the most prolific author.
type MostBlogsResult struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// MostLikesResult identifies the author with the highest combined likes.
type MostLikesResult struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes returns the sum of likes across all blogs, zero for an empty batch.
func TotalLikes(blogs []domain.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// batch. The first blog to reach the maximum wins.
func FavoriteBlog(blogs []domain.Blog) *FavoriteResult {
	if len(blogs) == 0 {
		return nil
	}
	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}
	return &FavoriteResult{Title: best.Title, Author: best.Author, Likes: best.Likes}
}

// MostBlogs returns the author with the most posts, or nil for an empty
// batch. Ties go to the author that first reached the winning count, in
// order of first appearance.
func MostBlogs(blogs []domain.Blog) *MostBlogsResult {
	if len(blogs) == 0 {
		return nil
	}
	counts := make(map[string]int, len(blogs))
	order := make([]string, 0, len(blogs))
	for _, b := range blogs {
		if _, seen := counts[b.Author]; !seen {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}

	best := MostBlogsResult{}
	for _, author := range order {
		if counts[author] > best.Blogs {
			best = MostBlogsResult{Author: author, Blogs: counts[author]}
		}
	}
	return &best
}

// MostLikes returns the author whose blogs collect the highest combined
// likes, or nil for an empty batch. Same tie rule as MostBlogs. When every
// sum is zero the first-seen author still wins, rather than an empty result.
func MostLikes(blogs []domain.Blog) *MostLikesResult {
	if len(blogs) == 0 {
		return nil
	}
	sums := make(map[string]int, len(blogs))
	order := make([]string, 0, len(blogs))
	for _, b := range blogs {
		if _, seen := sums[b.Author]; !seen {
			order = append(order, b.Author)
		}
		sums[b.Author] += b.Likes
	}

	best := MostLikesResult{}
	first := true
	for _, author := range order {
		if first || sums[author] > best.Likes {
			best = MostLikesResult{Author: author, Likes: sums[author]}
			first = false
		}
	}
	return &best
}
