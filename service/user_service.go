package service

import (
	"database/sql"

	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/repository"
)

// UserService serves public profiles and the caller's bookmark shelf.
type UserService struct {
	userRepo repository.IUserRepository
	blogRepo repository.IBlogRepository
}

func NewUserService(userRepo repository.IUserRepository, blogRepo repository.IBlogRepository) *UserService {
	return &UserService{userRepo: userRepo, blogRepo: blogRepo}
}

// GetProfile returns a user's public profile with their published blog count.
func (s *UserService) GetProfile(userID int) (*model.User, int, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, err
	}

	publishedCount, err := s.blogRepo.CountBlogs(model.BlogFilter{
		AuthorID: userID,
		Status:   model.BlogStatusPublished,
	})
	if err != nil {
		return nil, 0, err
	}

	user.Password = ""
	return user, publishedCount, nil
}

// ListUserBlogs returns a page of a user's published blogs.
func (s *UserService) ListUserBlogs(userID, page, limit int) ([]*model.Blog, model.Pagination, error) {
	filter := model.BlogFilter{
		AuthorID: userID,
		Status:   model.BlogStatusPublished,
	}
	offset := (page - 1) * limit

	blogs, err := s.blogRepo.ListBlogs(filter, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	total, err := s.blogRepo.CountBlogs(filter)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return blogs, model.NewPagination(page, limit, total), nil
}

// ListBookmarks returns a page of the published blogs the caller bookmarked.
func (s *UserService) ListBookmarks(userID, page, limit int) ([]*model.Blog, model.Pagination, error) {
	filter := model.BlogFilter{
		Status:       model.BlogStatusPublished,
		BookmarkedBy: userID,
	}
	offset := (page - 1) * limit

	blogs, err := s.blogRepo.ListBlogs(filter, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	total, err := s.blogRepo.CountBlogs(filter)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return blogs, model.NewPagination(page, limit, total), nil
}
