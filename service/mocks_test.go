// service/mocks_test.go
//
// Shared testify mocks for the repository and mailer interfaces used across
// the service tests.
package service

import (
	"github.com/Prasanth-1011/Blog-System/model"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for IUserRepository.
type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *MockUserRepository) GetUserByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepository) GetUserByID(id int) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepository) GetRootUser() (*model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *MockUserRepository) UpdateProfile(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}
func (m *MockUserRepository) ListUsers(filter model.UserFilter, limit, offset int) ([]*model.User, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *MockUserRepository) CountUsers(filter model.UserFilter) (int, error) {
	args := m.Called(filter)
	return args.Int(0), args.Error(1)
}
func (m *MockUserRepository) UpdateUserStatus(userID int, status string) error {
	args := m.Called(userID, status)
	return args.Error(0)
}
func (m *MockUserRepository) PromoteToAdmin(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockBlogRepository is a mock for IBlogRepository.
type MockBlogRepository struct{ mock.Mock }

func (m *MockBlogRepository) CreateBlog(blog *model.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}
func (m *MockBlogRepository) GetBlogByID(id int) (*model.Blog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}
func (m *MockBlogRepository) ListBlogs(filter model.BlogFilter, limit, offset int) ([]*model.Blog, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Blog), args.Error(1)
}
func (m *MockBlogRepository) CountBlogs(filter model.BlogFilter) (int, error) {
	args := m.Called(filter)
	return args.Int(0), args.Error(1)
}
func (m *MockBlogRepository) UpdateBlog(blog *model.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}
func (m *MockBlogRepository) UpdateBlogStatus(id int, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}
func (m *MockBlogRepository) DeleteBlog(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockBlogRepository) IncrementViews(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockBlogRepository) GetTopViewedBlogs(limit int) ([]*model.Blog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Blog), args.Error(1)
}
func (m *MockBlogRepository) HasLike(blogID, userID int) (bool, error) {
	args := m.Called(blogID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBlogRepository) AddLike(blogID, userID int) error {
	args := m.Called(blogID, userID)
	return args.Error(0)
}
func (m *MockBlogRepository) RemoveLike(blogID, userID int) error {
	args := m.Called(blogID, userID)
	return args.Error(0)
}
func (m *MockBlogRepository) CountLikes(blogID int) (int, error) {
	args := m.Called(blogID)
	return args.Int(0), args.Error(1)
}
func (m *MockBlogRepository) HasBookmark(blogID, userID int) (bool, error) {
	args := m.Called(blogID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBlogRepository) AddBookmark(blogID, userID int) error {
	args := m.Called(blogID, userID)
	return args.Error(0)
}
func (m *MockBlogRepository) RemoveBookmark(blogID, userID int) error {
	args := m.Called(blogID, userID)
	return args.Error(0)
}

// MockCategoryRepository is a mock for ICategoryRepository.
type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) CreateCategory(category *model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}
func (m *MockCategoryRepository) GetCategoryByID(id int) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}
func (m *MockCategoryRepository) GetCategoryBySlug(slug string) (*model.Category, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}
func (m *MockCategoryRepository) FindCategoryByName(name string, excludeID int) (*model.Category, error) {
	args := m.Called(name, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}
func (m *MockCategoryRepository) GetActiveCategories() ([]*model.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Category), args.Error(1)
}
func (m *MockCategoryRepository) UpdateCategory(category *model.Category) error {
	args := m.Called(category)
	return args.Error(0)
}
func (m *MockCategoryRepository) DeleteCategory(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockCategoryRepository) CountCategories() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockCommentRepository is a mock for ICommentRepository.
type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) CreateComment(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}
func (m *MockCommentRepository) GetCommentByID(id int) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}
func (m *MockCommentRepository) ListBlogComments(blogID, limit, offset int) ([]*model.Comment, error) {
	args := m.Called(blogID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}
func (m *MockCommentRepository) CountBlogComments(blogID int) (int, error) {
	args := m.Called(blogID)
	return args.Int(0), args.Error(1)
}
func (m *MockCommentRepository) ListReplies(parentID int) ([]*model.Comment, error) {
	args := m.Called(parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}
func (m *MockCommentRepository) UpdateComment(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}
func (m *MockCommentRepository) DeleteComment(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockCommentRepository) HasLike(commentID, userID int) (bool, error) {
	args := m.Called(commentID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockCommentRepository) AddLike(commentID, userID int) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}
func (m *MockCommentRepository) RemoveLike(commentID, userID int) error {
	args := m.Called(commentID, userID)
	return args.Error(0)
}
func (m *MockCommentRepository) CountLikes(commentID int) (int, error) {
	args := m.Called(commentID)
	return args.Int(0), args.Error(1)
}

// MockAdminRequestRepository is a mock for IAdminRequestRepository.
type MockAdminRequestRepository struct{ mock.Mock }

func (m *MockAdminRequestRepository) CreateRequest(request *model.AdminRequest) error {
	args := m.Called(request)
	return args.Error(0)
}
func (m *MockAdminRequestRepository) GetRequestByID(id int) (*model.AdminRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminRequest), args.Error(1)
}
func (m *MockAdminRequestRepository) HasPendingRequest(userID int) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockAdminRequestRepository) ListRequests(status string, limit, offset int) ([]*model.AdminRequest, error) {
	args := m.Called(status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.AdminRequest), args.Error(1)
}
func (m *MockAdminRequestRepository) CountRequests(status string) (int, error) {
	args := m.Called(status)
	return args.Int(0), args.Error(1)
}
func (m *MockAdminRequestRepository) MarkReviewed(id int, status string, reviewerID int, notes string) (bool, error) {
	args := m.Called(id, status, reviewerID, notes)
	return args.Bool(0), args.Error(1)
}

// MockMailer is a mock for mailer.IMailer.
type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendAdminDecisionEmail(email string, approved bool) error {
	args := m.Called(email, approved)
	return args.Error(0)
}
func (m *MockMailer) SendWelcomeEmail(email, name string) error {
	args := m.Called(email, name)
	return args.Error(0)
}
