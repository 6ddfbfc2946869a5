package service

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/repository"
)

var (
	ErrBlogNotFound     = errors.New("blog not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrPermissionDenied = errors.New("not authorized to modify this resource")
)

// BlogService handles the blog publishing workflow.
type BlogService struct {
	blogRepo     repository.IBlogRepository
	categoryRepo repository.ICategoryRepository
	cache        ICacheClient
}

func NewBlogService(blogRepo repository.IBlogRepository, categoryRepo repository.ICategoryRepository, cache ICacheClient) *BlogService {
	return &BlogService{blogRepo: blogRepo, categoryRepo: categoryRepo, cache: cache}
}

var slugStripPattern = regexp.MustCompile(`[^a-z0-9 ]`)
var whitespacePattern = regexp.MustCompile(`\s+`)
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// slugify lowercases the title, strips everything but letters, digits and
// spaces, and joins the words with hyphens, capped at 100 characters.
func slugify(title string) string {
	slug := strings.ToLower(title)
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = whitespacePattern.ReplaceAllString(strings.TrimSpace(slug), "-")
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}

// readTime estimates reading minutes at 200 words per minute, rounded up.
func readTime(content string) int {
	words := len(strings.Fields(content))
	return (words + 199) / 200
}

// deriveExcerpt strips markup from the content and takes the first 300
// characters, used when the author provides no excerpt.
func deriveExcerpt(content string) string {
	plain := htmlTagPattern.ReplaceAllString(content, "")
	if len(plain) > 300 {
		plain = plain[:297] + "..."
	}
	return strings.TrimSpace(plain)
}

// ListPublished returns a page of published blogs matching the public
// filters. An unknown category slug simply leaves the filter unset.
func (s *BlogService) ListPublished(categorySlug, tag, search string, featured bool, page, limit int) ([]*model.Blog, model.Pagination, error) {
	filter := model.BlogFilter{
		Status:   model.BlogStatusPublished,
		Tag:      tag,
		Search:   search,
		Featured: featured,
	}

	if categorySlug != "" {
		category, err := s.categoryRepo.GetCategoryBySlug(categorySlug)
		if err == nil {
			filter.CategoryID = category.ID
		} else if err != sql.ErrNoRows {
			return nil, model.Pagination{}, err
		}
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

// GetBlog fetches a single blog and bumps its view counter. A failed counter
// update is logged but does not fail the read.
func (s *BlogService) GetBlog(blogID int) (*model.Blog, error) {
	blog, err := s.blogRepo.GetBlogByID(blogID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if err := s.blogRepo.IncrementViews(blogID); err != nil {
		logger.Log.WithError(err).WithField("blog_id", blogID).Warn("Failed to increment blog views")
	} else {
		blog.Views++
	}
	return blog, nil
}

// CreateBlog creates a draft for the author after verifying the category.
func (s *BlogService) CreateBlog(authorID int, req model.CreateBlogRequest) (*model.Blog, error) {
	if _, err := s.categoryRepo.GetCategoryByID(req.CategoryID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	excerpt := req.Excerpt
	if excerpt == "" {
		excerpt = deriveExcerpt(req.Content)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	blog := &model.Blog{
		Title:           req.Title,
		Content:         req.Content,
		Excerpt:         excerpt,
		FeaturedImage:   req.FeaturedImage,
		AuthorID:        authorID,
		CategoryID:      req.CategoryID,
		Tags:            tags,
		Status:          model.BlogStatusDraft,
		Slug:            slugify(req.Title),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		ReadTime:        readTime(req.Content),
	}
	if err := s.blogRepo.CreateBlog(blog); err != nil {
		return nil, err
	}

	invalidateCategoryCache(s.cache)

	return s.blogRepo.GetBlogByID(blog.ID)
}

// UpdateBlog applies the non-nil fields of the request. Only the author or an
// admin may update a blog.
func (s *BlogService) UpdateBlog(blogID, callerID int, callerIsAdmin bool, req model.UpdateBlogRequest) (*model.Blog, error) {
	blog, err := s.blogRepo.GetBlogByID(blogID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if blog.AuthorID != callerID && !callerIsAdmin {
		return nil, ErrPermissionDenied
	}

	if req.CategoryID != nil && *req.CategoryID != blog.CategoryID {
		if _, err := s.categoryRepo.GetCategoryByID(*req.CategoryID); err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		blog.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		blog.Title = *req.Title
		blog.Slug = slugify(*req.Title)
	}
	if req.Content != nil {
		blog.Content = *req.Content
		blog.ReadTime = readTime(*req.Content)
		if req.Excerpt == nil && blog.Excerpt == "" {
			blog.Excerpt = deriveExcerpt(*req.Content)
		}
	}
	if req.Excerpt != nil {
		blog.Excerpt = *req.Excerpt
	}
	if req.FeaturedImage != nil {
		blog.FeaturedImage = *req.FeaturedImage
	}
	if req.Tags != nil {
		blog.Tags = req.Tags
	}
	if req.Status != nil {
		blog.Status = *req.Status
	}
	if req.IsFeatured != nil {
		blog.IsFeatured = *req.IsFeatured
	}
	if req.MetaTitle != nil {
		blog.MetaTitle = *req.MetaTitle
	}
	if req.MetaDescription != nil {
		blog.MetaDescription = *req.MetaDescription
	}

	if err := s.blogRepo.UpdateBlog(blog); err != nil {
		return nil, err
	}

	invalidateCategoryCache(s.cache)

	return s.blogRepo.GetBlogByID(blogID)
}

// DeleteBlog removes a blog and, through the schema, its comments, likes and
// bookmarks. Only the author or an admin may delete.
func (s *BlogService) DeleteBlog(blogID, callerID int, callerIsAdmin bool) error {
	blog, err := s.blogRepo.GetBlogByID(blogID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrBlogNotFound
		}
		return err
	}

	if blog.AuthorID != callerID && !callerIsAdmin {
		return ErrPermissionDenied
	}

	if err := s.blogRepo.DeleteBlog(blogID); err != nil {
		return err
	}

	invalidateCategoryCache(s.cache)
	return nil
}

// ToggleLike flips the caller's like on a blog and returns the new like count
// and state.
func (s *BlogService) ToggleLike(blogID, userID int) (int, bool, error) {
	if _, err := s.blogRepo.GetBlogByID(blogID); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, ErrBlogNotFound
		}
		return 0, false, err
	}

	liked, err := s.blogRepo.HasLike(blogID, userID)
	if err != nil {
		return 0, false, err
	}

	if liked {
		err = s.blogRepo.RemoveLike(blogID, userID)
	} else {
		err = s.blogRepo.AddLike(blogID, userID)
	}
	if err != nil {
		return 0, false, err
	}

	likes, err := s.blogRepo.CountLikes(blogID)
	if err != nil {
		return 0, false, err
	}
	return likes, !liked, nil
}

// ToggleBookmark flips the caller's bookmark on a blog and returns the new state.
func (s *BlogService) ToggleBookmark(blogID, userID int) (bool, error) {
	if _, err := s.blogRepo.GetBlogByID(blogID); err != nil {
		if err == sql.ErrNoRows {
			return false, ErrBlogNotFound
		}
		return false, err
	}

	bookmarked, err := s.blogRepo.HasBookmark(blogID, userID)
	if err != nil {
		return false, err
	}

	if bookmarked {
		err = s.blogRepo.RemoveBookmark(blogID, userID)
	} else {
		err = s.blogRepo.AddBookmark(blogID, userID)
	}
	if err != nil {
		return false, err
	}
	return !bookmarked, nil
}

// ListDrafts returns the caller's draft blogs, most recently edited first.
func (s *BlogService) ListDrafts(authorID, page, limit int) ([]*model.Blog, model.Pagination, error) {
	filter := model.BlogFilter{
		Status:        model.BlogStatusDraft,
		AuthorID:      authorID,
		SortByUpdated: true,
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
