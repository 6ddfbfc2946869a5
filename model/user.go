package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

const (
	UserStatusActive    = "active"
	UserStatusPending   = "pending"
	UserStatusSuspended = "suspended"
)

type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	Role           string    `json:"role"`
	Status         string    `json:"status"`
	Root           bool      `json:"root"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserSummary is the populated shape of a user reference on another record
// (blog author, comment author, request subject, reviewer).
type UserSummary struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// UserFilter narrows user listing queries. Zero values mean "no filter".
type UserFilter struct {
	Search       string
	Status       string
	Role         string
	CreatedAfter time.Time
}
