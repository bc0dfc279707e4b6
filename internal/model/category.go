package model

// Category groups products. When no category feed is available, categories
// are derived from product category/subtype fields, so ID may equal Name.
type Category struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// DisplayName falls back to the id when the feed carries no name.
func (c Category) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.ID != "" {
		return c.ID
	}
	return "Unnamed"
}
