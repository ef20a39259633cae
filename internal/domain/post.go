package domain

// Post is one board posting as returned by the Band API.
type Post struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}
