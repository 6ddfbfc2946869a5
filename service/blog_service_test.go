// service/blog_service_test.go
package service

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/Prasanth-1011/Blog-System/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", slugify("Hello, World!"))
	assert.Equal(t, "gos-error-handling-in-2026", slugify("Go's Error Handling in 2026"))
	assert.Equal(t, "spaces-everywhere", slugify("  spaces   everywhere  "))

	long := strings.Repeat("a", 150)
	assert.Len(t, slugify(long), 100)
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, readTime("just a few words"))
	assert.Equal(t, 1, readTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, readTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 0, readTime(""))
}

func TestDeriveExcerpt(t *testing.T) {
	assert.Equal(t, "Plain text stays.", deriveExcerpt("<p>Plain text stays.</p>"))

	long := strings.Repeat("x", 400)
	excerpt := deriveExcerpt(long)
	assert.Len(t, excerpt, 300)
	assert.True(t, strings.HasSuffix(excerpt, "..."))
}

func TestBlogService_CreateBlog(t *testing.T) {
	t.Run("category not found", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("GetCategoryByID", 9).Return(nil, sql.ErrNoRows).Once()

		blogService := NewBlogService(mockBlogRepo, mockCategoryRepo, nil)
		blog, err := blogService.CreateBlog(1, model.CreateBlogRequest{
			Title:      "A valid title",
			Content:    strings.Repeat("content ", 10),
			CategoryID: 9,
		})

		assert.Nil(t, blog)
		assert.Equal(t, ErrCategoryNotFound, err)
		mockBlogRepo.AssertNotCalled(t, "CreateBlog")
	})

	t.Run("starts as draft with derived fields", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("GetCategoryByID", 2).Return(&model.Category{ID: 2}, nil).Once()

		var created *model.Blog
		mockBlogRepo.On("CreateBlog", mock.AnythingOfType("*model.Blog")).
			Run(func(args mock.Arguments) {
				created = args.Get(0).(*model.Blog)
				created.ID = 10
			}).Return(nil).Once()
		mockBlogRepo.On("GetBlogByID", 10).Return(&model.Blog{ID: 10}, nil).Once()

		blogService := NewBlogService(mockBlogRepo, mockCategoryRepo, nil)
		_, err := blogService.CreateBlog(1, model.CreateBlogRequest{
			Title:      "My First Post!",
			Content:    "<p>" + strings.Repeat("word ", 250) + "</p>",
			CategoryID: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, model.BlogStatusDraft, created.Status)
		assert.Equal(t, "my-first-post", created.Slug)
		assert.Equal(t, 2, created.ReadTime)
		assert.NotEmpty(t, created.Excerpt)
		assert.NotNil(t, created.Tags)
		mockBlogRepo.AssertExpectations(t)
	})
}

func TestBlogService_UpdateBlog(t *testing.T) {
	t.Run("only author or admin may update", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockBlogRepo.On("GetBlogByID", 10).
			Return(&model.Blog{ID: 10, AuthorID: 1}, nil).Once()

		blogService := NewBlogService(mockBlogRepo, new(MockCategoryRepository), nil)
		blog, err := blogService.UpdateBlog(10, 2, false, model.UpdateBlogRequest{})

		assert.Nil(t, blog)
		assert.Equal(t, ErrPermissionDenied, err)
		mockBlogRepo.AssertNotCalled(t, "UpdateBlog")
	})

	t.Run("admin may update another author's blog", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockBlogRepo.On("GetBlogByID", 10).
			Return(&model.Blog{ID: 10, AuthorID: 1, Title: "Old", CategoryID: 2}, nil).Once()
		mockBlogRepo.On("UpdateBlog", mock.AnythingOfType("*model.Blog")).Return(nil).Once()
		mockBlogRepo.On("GetBlogByID", 10).
			Return(&model.Blog{ID: 10, AuthorID: 1, Title: "New Title", CategoryID: 2}, nil).Once()

		newTitle := "New Title"
		blogService := NewBlogService(mockBlogRepo, new(MockCategoryRepository), nil)
		blog, err := blogService.UpdateBlog(10, 2, true, model.UpdateBlogRequest{Title: &newTitle})

		assert.NoError(t, err)
		assert.Equal(t, "New Title", blog.Title)
		mockBlogRepo.AssertExpectations(t)
	})
}

func TestBlogService_GetBlog(t *testing.T) {
	t.Run("increments views", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockBlogRepo.On("GetBlogByID", 10).
			Return(&model.Blog{ID: 10, Views: 41}, nil).Once()
		mockBlogRepo.On("IncrementViews", 10).Return(nil).Once()

		blogService := NewBlogService(mockBlogRepo, nil, nil)
		blog, err := blogService.GetBlog(10)

		assert.NoError(t, err)
		assert.Equal(t, 42, blog.Views)
	})

	t.Run("not found", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockBlogRepo.On("GetBlogByID", 404).Return(nil, sql.ErrNoRows).Once()

		blogService := NewBlogService(mockBlogRepo, nil, nil)
		blog, err := blogService.GetBlog(404)

		assert.Nil(t, blog)
		assert.Equal(t, ErrBlogNotFound, err)
	})
}

func TestBlogService_ToggleLike(t *testing.T) {
	t.Run("like then unlike", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockBlogRepo.On("GetBlogByID", 10).Return(&model.Blog{ID: 10}, nil).Twice()

		// First call: no like yet, one is added.
		mockBlogRepo.On("HasLike", 10, 1).Return(false, nil).Once()
		mockBlogRepo.On("AddLike", 10, 1).Return(nil).Once()
		mockBlogRepo.On("CountLikes", 10).Return(1, nil).Once()

		blogService := NewBlogService(mockBlogRepo, nil, nil)
		likes, isLiked, err := blogService.ToggleLike(10, 1)
		assert.NoError(t, err)
		assert.True(t, isLiked)
		assert.Equal(t, 1, likes)

		// Second call: the like exists and is removed.
		mockBlogRepo.On("HasLike", 10, 1).Return(true, nil).Once()
		mockBlogRepo.On("RemoveLike", 10, 1).Return(nil).Once()
		mockBlogRepo.On("CountLikes", 10).Return(0, nil).Once()

		likes, isLiked, err = blogService.ToggleLike(10, 1)
		assert.NoError(t, err)
		assert.False(t, isLiked)
		assert.Equal(t, 0, likes)
		mockBlogRepo.AssertExpectations(t)
	})
}

func TestBlogService_ListPublished(t *testing.T) {
	t.Run("unknown category slug is ignored", func(t *testing.T) {
		mockBlogRepo := new(MockBlogRepository)
		mockCategoryRepo := new(MockCategoryRepository)
		mockCategoryRepo.On("GetCategoryBySlug", "nope").Return(nil, sql.ErrNoRows).Once()

		expectedFilter := model.BlogFilter{Status: model.BlogStatusPublished}
		mockBlogRepo.On("ListBlogs", expectedFilter, 10, 0).Return([]*model.Blog{}, nil).Once()
		mockBlogRepo.On("CountBlogs", expectedFilter).Return(0, nil).Once()

		blogService := NewBlogService(mockBlogRepo, mockCategoryRepo, nil)
		blogs, pagination, err := blogService.ListPublished("nope", "", "", false, 1, 10)

		assert.NoError(t, err)
		assert.Empty(t, blogs)
		assert.Equal(t, model.Pagination{Current: 1, Pages: 0, Total: 0}, pagination)
		mockBlogRepo.AssertExpectations(t)
	})
}
