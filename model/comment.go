package model

import "time"

const (
	CommentStatusApproved = "approved"
	CommentStatusHidden   = "hidden"
)

type Comment struct {
	ID              int          `json:"id"`
	Content         string       `json:"content"`
	BlogID          int          `json:"blog_id"`
	AuthorID        int          `json:"author_id"`
	ParentCommentID *int         `json:"parent_comment_id,omitempty"`
	Status          string       `json:"status"`
	IsEdited        bool         `json:"is_edited"`
	Likes           int          `json:"likes"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Author          *UserSummary `json:"author,omitempty"`
	Replies         []*Comment   `json:"replies,omitempty"`
}
