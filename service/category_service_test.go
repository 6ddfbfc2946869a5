// service/category_service_test.go
package service

import (
	"database/sql"
	"testing"

	"github.com/Prasanth-1011/Blog-System/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryService_CreateCategory(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindCategoryByName", "Tech News", 0).Return(nil, sql.ErrNoRows).Once()

		var created *model.Category
		mockCategoryRepo.On("CreateCategory", mock.AnythingOfType("*model.Category")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*model.Category)
			}).Return(nil).Once()

		categoryService := NewCategoryService(mockCategoryRepo, new(MockBlogRepository), nil)
		category, err := categoryService.CreateCategory(1, model.CreateCategoryRequest{Name: "Tech News"})

		assert.NoError(t, err)
		assert.Equal(t, "tech-news", created.Slug)
		assert.True(t, created.IsActive)
		assert.Equal(t, category, created)
		mockCategoryRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("FindCategoryByName", "Tech", 0).
			Return(&model.Category{ID: 1, Name: "tech"}, nil).Once()

		categoryService := NewCategoryService(mockCategoryRepo, new(MockBlogRepository), nil)
		category, err := categoryService.CreateCategory(1, model.CreateCategoryRequest{Name: "Tech"})

		assert.Nil(t, category)
		assert.Equal(t, ErrCategoryExists, err)
		mockCategoryRepo.AssertNotCalled(t, "CreateCategory")
	})
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	t.Run("category with blogs cannot be deleted", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockBlogRepo := new(MockBlogRepository)

		mockCategoryRepo.On("GetCategoryByID", 3).Return(&model.Category{ID: 3}, nil).Once()
		mockBlogRepo.On("CountBlogs", model.BlogFilter{CategoryID: 3}).Return(5, nil).Once()

		categoryService := NewCategoryService(mockCategoryRepo, mockBlogRepo, nil)
		err := categoryService.DeleteCategory(3)

		assert.Equal(t, ErrCategoryHasBlogs, err)
		mockCategoryRepo.AssertNotCalled(t, "DeleteCategory")
	})

	t.Run("empty category is deleted", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockBlogRepo := new(MockBlogRepository)

		mockCategoryRepo.On("GetCategoryByID", 3).Return(&model.Category{ID: 3}, nil).Once()
		mockBlogRepo.On("CountBlogs", model.BlogFilter{CategoryID: 3}).Return(0, nil).Once()
		mockCategoryRepo.On("DeleteCategory", 3).Return(nil).Once()

		categoryService := NewCategoryService(mockCategoryRepo, mockBlogRepo, nil)
		err := categoryService.DeleteCategory(3)

		assert.NoError(t, err)
		mockCategoryRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("GetCategoryByID", 404).Return(nil, sql.ErrNoRows).Once()

		categoryService := NewCategoryService(mockCategoryRepo, new(MockBlogRepository), nil)
		err := categoryService.DeleteCategory(404)

		assert.Equal(t, ErrCategoryNotFound, err)
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	t.Run("renaming to a taken name fails", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("GetCategoryByID", 3).
			Return(&model.Category{ID: 3, Name: "Old"}, nil).Once()
		mockCategoryRepo.On("FindCategoryByName", "Taken", 3).
			Return(&model.Category{ID: 4, Name: "taken"}, nil).Once()

		newName := "Taken"
		categoryService := NewCategoryService(mockCategoryRepo, new(MockBlogRepository), nil)
		category, err := categoryService.UpdateCategory(3, model.UpdateCategoryRequest{Name: &newName})

		assert.Nil(t, category)
		assert.Equal(t, ErrCategoryExists, err)
		mockCategoryRepo.AssertNotCalled(t, "UpdateCategory")
	})

	t.Run("rename recomputes the slug", func(t *testing.T) {
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("GetCategoryByID", 3).
			Return(&model.Category{ID: 3, Name: "Old", Slug: "old"}, nil).Once()
		mockCategoryRepo.On("FindCategoryByName", "Data Engineering", 3).
			Return(nil, sql.ErrNoRows).Once()
		mockCategoryRepo.On("UpdateCategory", mock.AnythingOfType("*model.Category")).Return(nil).Once()

		newName := "Data Engineering"
		categoryService := NewCategoryService(mockCategoryRepo, new(MockBlogRepository), nil)
		category, err := categoryService.UpdateCategory(3, model.UpdateCategoryRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "data-engineering", category.Slug)
		mockCategoryRepo.AssertExpectations(t)
	})
}
