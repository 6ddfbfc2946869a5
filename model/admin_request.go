package model

import "time"

// AdminRequest tracks one user's bid for admin privileges. A request starts
// as pending and is moved exactly once to approved or rejected by the root
// admin; there is no path out of a terminal state.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

type AdminRequest struct {
	ID          int          `json:"id"`
	UserID      int          `json:"user_id"`
	Reason      string       `json:"reason"`
	Status      string       `json:"status"`
	ReviewedBy  *int         `json:"reviewed_by,omitempty"`
	ReviewNotes string       `json:"review_notes"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	User        *UserSummary `json:"user,omitempty"`
	Reviewer    *UserSummary `json:"reviewer,omitempty"`
}

// DashboardStats is the summary block of the admin dashboard.
type DashboardStats struct {
	TotalUsers           int `json:"total_users"`
	TotalBlogs           int `json:"total_blogs"`
	TotalPublishedBlogs  int `json:"total_published_blogs"`
	TotalCategories      int `json:"total_categories"`
	PendingAdminRequests int `json:"pending_admin_requests"`
	RecentUsers          int `json:"recent_users"`
	RecentBlogs          int `json:"recent_blogs"`
}
