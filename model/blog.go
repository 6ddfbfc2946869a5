package model

import "time"

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

type Blog struct {
	ID              int              `json:"id"`
	Title           string           `json:"title"`
	Content         string           `json:"content"`
	Excerpt         string           `json:"excerpt"`
	FeaturedImage   string           `json:"featured_image"`
	AuthorID        int              `json:"author_id"`
	CategoryID      int              `json:"category_id"`
	Tags            []string         `json:"tags"`
	Status          string           `json:"status"`
	IsFeatured      bool             `json:"is_featured"`
	Slug            string           `json:"slug"`
	MetaTitle       string           `json:"meta_title"`
	MetaDescription string           `json:"meta_description"`
	ReadTime        int              `json:"read_time"`
	Views           int              `json:"views"`
	Likes           int              `json:"likes"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Author          *UserSummary     `json:"author,omitempty"`
	Category        *CategorySummary `json:"category,omitempty"`
}

// BlogFilter narrows blog listing queries. Zero values mean "no filter".
type BlogFilter struct {
	Status       string
	AuthorID     int
	CategoryID   int
	Tag          string
	Featured     bool
	Search       string
	BookmarkedBy int
	CreatedAfter time.Time
	// SortByUpdated orders by updated_at instead of created_at (drafts view).
	SortByUpdated bool
}
