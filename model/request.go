// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// It includes validation tags to ensure data integrity at the entry point.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the payload for updating the caller's profile.
// All fields are optional; nil fields are left untouched.
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Email          *string `json:"email,omitempty" validate:"omitempty,email"`
	Password       *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}

// CreateBlogRequest defines the payload for creating a blog post.
type CreateBlogRequest struct {
	Title           string   `json:"title" validate:"required,min=5,max=200"`
	Content         string   `json:"content" validate:"required,min=50"`
	Excerpt         string   `json:"excerpt" validate:"omitempty,max=300"`
	CategoryID      int      `json:"category_id" validate:"required"`
	Tags            []string `json:"tags"`
	FeaturedImage   string   `json:"featured_image"`
	MetaTitle       string   `json:"meta_title" validate:"omitempty,max=200"`
	MetaDescription string   `json:"meta_description" validate:"omitempty,max=500"`
}

// UpdateBlogRequest defines the payload for updating a blog post.
// All fields are optional; nil fields are left untouched.
type UpdateBlogRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=5,max=200"`
	Content         *string  `json:"content,omitempty" validate:"omitempty,min=50"`
	Excerpt         *string  `json:"excerpt,omitempty" validate:"omitempty,max=300"`
	CategoryID      *int     `json:"category_id,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	FeaturedImage   *string  `json:"featured_image,omitempty"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=draft published archived"`
	IsFeatured      *bool    `json:"is_featured,omitempty"`
	MetaTitle       *string  `json:"meta_title,omitempty" validate:"omitempty,max=200"`
	MetaDescription *string  `json:"meta_description,omitempty" validate:"omitempty,max=500"`
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"omitempty,max=200"`
}

// UpdateCategoryRequest defines the payload for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=200"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CreateCommentRequest defines the payload for posting a comment or a reply.
type CreateCommentRequest struct {
	Content         string `json:"content" validate:"required,min=1,max=1000"`
	BlogID          int    `json:"blog_id" validate:"required"`
	ParentCommentID *int   `json:"parent_comment_id,omitempty"`
}

// UpdateCommentRequest defines the payload for editing a comment.
type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// SubmitAdminRequest defines the payload for requesting admin access.
type SubmitAdminRequest struct {
	Reason string `json:"reason" validate:"required,min=1,max=500"`
}

// ReviewAdminRequest defines the payload for deciding an admin request.
type ReviewAdminRequest struct {
	Status      string `json:"status" validate:"required,oneof=approved rejected"`
	ReviewNotes string `json:"review_notes" validate:"omitempty,max=500"`
}

// UpdateUserStatusRequest defines the payload for suspending or reactivating a user.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

// UpdateBlogStatusRequest defines the payload for moderating a blog's status.
type UpdateBlogStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}
