package stats

import (
	"testing"

	"github.com/openblog/bloglist/internal/core/domain"
)

var manyBlogs = []domain.Blog{
	{ID: "1", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: "2", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
	{ID: "3", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
	{ID: "4", Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
	{ID: "5", Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
	{ID: "6", Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
}

func TestTotalLikes_EmptyList(t *testing.T) {
	if got := TotalLikes(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestTotalLikes_SingleBlog(t *testing.T) {
	if got := TotalLikes(manyBlogs[2:3]); got != 12 {
		t.Fatalf("expected 12, got %d", got)
	}
}

func TestTotalLikes_ManyBlogs(t *testing.T) {
	if got := TotalLikes(manyBlogs); got != 36 {
		t.Fatalf("expected 36, got %d", got)
	}
}

func TestFavoriteBlog_Empty(t *testing.T) {
	if got := FavoriteBlog(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestFavoriteBlog_ManyBlogs(t *testing.T) {
	got := FavoriteBlog(manyBlogs)
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.Title != "Canonical string reduction" || got.Author != "Edsger W. Dijkstra" || got.Likes != 12 {
		t.Fatalf("unexpected favorite: %+v", got)
	}
}

func TestFavoriteBlog_TieKeepsFirst(t *testing.T) {
	blogs := []domain.Blog{
		{Title: "first", Author: "a", Likes: 5},
		{Title: "second", Author: "b", Likes: 5},
	}
	got := FavoriteBlog(blogs)
	if got.Title != "first" {
		t.Fatalf("expected first blog to win the tie, got %q", got.Title)
	}
}

func TestMostBlogs_Empty(t *testing.T) {
	if got := MostBlogs(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestMostBlogs_ManyBlogs(t *testing.T) {
	got := MostBlogs(manyBlogs)
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.Author != "Robert C. Martin" || got.Blogs != 3 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMostBlogs_TieKeepsFirstSeen(t *testing.T) {
	blogs := []domain.Blog{
		{Author: "a"}, {Author: "b"}, {Author: "a"}, {Author: "b"},
	}
	got := MostBlogs(blogs)
	if got.Author != "a" || got.Blogs != 2 {
		t.Fatalf("expected first-seen author to win the tie, got %+v", got)
	}
}

func TestMostLikes_Empty(t *testing.T) {
	if got := MostLikes(nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestMostLikes_ManyBlogs(t *testing.T) {
	got := MostLikes(manyBlogs)
	if got == nil {
		t.Fatal("expected a result")
	}
	if got.Author != "Edsger W. Dijkstra" || got.Likes != 17 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMostLikes_AllZeroLikes(t *testing.T) {
	blogs := []domain.Blog{
		{Author: "a", Likes: 0},
		{Author: "b", Likes: 0},
	}
	got := MostLikes(blogs)
	if got.Author != "a" || got.Likes != 0 {
		t.Fatalf("expected first author with zero likes, got %+v", got)
	}
}
