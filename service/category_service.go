package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/repository"
)

var (
	ErrCategoryExists   = errors.New("category with this name already exists")
	ErrCategoryHasBlogs = errors.New("cannot delete category that has blogs, please reassign or delete the blogs first")
)

// CategoryService handles category management with a cache-aside read path
// for the public listing.
type CategoryService struct {
	categoryRepo repository.ICategoryRepository
	blogRepo     repository.IBlogRepository
	cache        ICacheClient
}

func NewCategoryService(categoryRepo repository.ICategoryRepository, blogRepo repository.IBlogRepository, cache ICacheClient) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, blogRepo: blogRepo, cache: cache}
}

// ListActive returns the active categories with their published blog counts,
// serving from Redis when the list is cached.
func (s *CategoryService) ListActive() ([]*model.Category, error) {
	ctx := context.Background()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, categoriesCacheKey).Result()
		if err == nil {
			var categories []*model.Category
			if err := json.Unmarshal([]byte(cached), &categories); err == nil {
				return categories, nil
			}
		}
	}

	categories, err := s.categoryRepo.GetActiveCategories()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(categories); err == nil {
			s.cache.Set(ctx, categoriesCacheKey, data, categoriesCacheTTL)
		}
	}

	return categories, nil
}

func (s *CategoryService) GetCategory(id int) (*model.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// CreateCategory creates a category after a case-insensitive name check.
func (s *CategoryService) CreateCategory(creatorID int, req model.CreateCategoryRequest) (*model.Category, error) {
	_, err := s.categoryRepo.FindCategoryByName(req.Name, 0)
	if err == nil {
		return nil, ErrCategoryExists
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	category := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Slug:        slugify(req.Name),
		IsActive:    true,
		CreatedBy:   creatorID,
	}
	if err := s.categoryRepo.CreateCategory(category); err != nil {
		return nil, err
	}

	invalidateCategoryCache(s.cache)
	return category, nil
}

// UpdateCategory applies the non-nil fields, re-checking name uniqueness when
// the name changes.
func (s *CategoryService) UpdateCategory(id int, req model.UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		_, err := s.categoryRepo.FindCategoryByName(*req.Name, category.ID)
		if err == nil {
			return nil, ErrCategoryExists
		}
		if err != sql.ErrNoRows {
			return nil, err
		}
		category.Name = *req.Name
		category.Slug = slugify(*req.Name)
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.UpdateCategory(category); err != nil {
		return nil, err
	}

	invalidateCategoryCache(s.cache)
	return category, nil
}

// DeleteCategory removes an empty category; categories that still have blogs
// cannot be deleted.
func (s *CategoryService) DeleteCategory(id int) error {
	category, err := s.categoryRepo.GetCategoryByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrCategoryNotFound
		}
		return err
	}

	blogCount, err := s.blogRepo.CountBlogs(model.BlogFilter{CategoryID: category.ID})
	if err != nil {
		return err
	}
	if blogCount > 0 {
		return ErrCategoryHasBlogs
	}

	if err := s.categoryRepo.DeleteCategory(id); err != nil {
		return err
	}

	invalidateCategoryCache(s.cache)
	return nil
}
