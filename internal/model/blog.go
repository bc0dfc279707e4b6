package model

type Blog struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author,omitempty"`
	Images []string `json:"images,omitempty"`
	Tags   []string `json:"tags,omitempty"`
	Body   string   `json:"body"`
}
