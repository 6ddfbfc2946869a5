package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prasanth-1011/Blog-System/common"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/service"
)

type CategoryHandler struct {
	service *service.CategoryService
}

func NewCategoryHandler(s *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// ListCategories godoc
// @Summary      List active categories
// @Description  Returns all active categories with their published blog counts, sorted by name.
// @Tags         categories
// @Produce      json
// @Success      200  {array}   model.Category
// @Failure      500  {object}  common.AppError
// @Router       /api/categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) *common.AppError {
	categories, err := h.service.ListActive()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve categories", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(categories)
	return nil
}

func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid category ID in URL path", err)
	}

	category, svcErr := h.service.GetCategory(categoryID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrCategoryNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve category", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(category)
	return nil
}

// CreateCategory godoc
// @Summary      Create a category
// @Description  Creates a new category. Admin only. Names are unique case-insensitively.
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category body model.CreateCategoryRequest true "Category"
// @Success      201  {object}  model.Category
// @Failure      409  {object}  common.AppError "Name already in use"
// @Router       /api/categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateCategoryRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	category, err := h.service.CreateCategory(userID, req)
	if err != nil {
		switch err {
		case service.ErrCategoryExists:
			return common.NewAppError(http.StatusConflict, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create category", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(category)
	return nil
}

func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid category ID in URL path", err)
	}

	var req model.UpdateCategoryRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	category, svcErr := h.service.UpdateCategory(categoryID, req)
	if svcErr != nil {
		switch svcErr {
		case service.ErrCategoryNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrCategoryExists:
			return common.NewAppError(http.StatusConflict, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update category", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(category)
	return nil
}

func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) *common.AppError {
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid category ID in URL path", err)
	}

	if svcErr := h.service.DeleteCategory(categoryID); svcErr != nil {
		switch svcErr {
		case service.ErrCategoryNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrCategoryHasBlogs:
			return common.NewAppError(http.StatusBadRequest, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not delete category", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Category deleted successfully"})
	return nil
}
