package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prasanth-1011/Blog-System/common"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/service"
)

type BlogHandler struct {
	service *service.BlogService
}

func NewBlogHandler(s *service.BlogService) *BlogHandler {
	return &BlogHandler{service: s}
}

// ListBlogs godoc
// @Summary      List published blogs
// @Description  Returns a page of published blogs, filterable by category slug, tag, featured flag and full-text search.
// @Tags         blogs
// @Produce      json
// @Param        category query string false "Category slug"
// @Param        tag      query string false "Tag"
// @Param        search   query string false "Full-text search"
// @Param        featured query bool   false "Only featured blogs"
// @Param        page     query int    false "Page number"
// @Param        limit    query int    false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  common.AppError
// @Router       /api/blogs [get]
func (h *BlogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) *common.AppError {
	page, limit := parsePagination(r)
	q := r.URL.Query()

	blogs, pagination, err := h.service.ListPublished(
		q.Get("category"), q.Get("tag"), q.Get("search"), q.Get("featured") == "true", page, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve blogs", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"blogs":      blogs,
		"pagination": pagination,
	})
	return nil
}

// GetBlog godoc
// @Summary      Get a single blog
// @Description  Returns one blog by id and increments its view counter.
// @Tags         blogs
// @Produce      json
// @Param        id path int true "Blog ID"
// @Success      200  {object}  model.Blog
// @Failure      404  {object}  common.AppError
// @Router       /api/blogs/{id} [get]
func (h *BlogHandler) GetBlog(w http.ResponseWriter, r *http.Request) *common.AppError {
	blogID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid blog ID in URL path", err)
	}

	blog, svcErr := h.service.GetBlog(blogID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrBlogNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve blog", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(blog)
	return nil
}

// CreateBlog godoc
// @Summary      Create a blog
// @Description  Creates a draft blog for the authenticated author.
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        blog body model.CreateBlogRequest true "Blog content"
// @Success      201  {object}  model.Blog
// @Failure      400  {object}  common.AppError "Category not found or invalid payload"
// @Failure      401  {object}  common.AppError
// @Router       /api/blogs [post]
func (h *BlogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateBlogRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	blog, err := h.service.CreateBlog(userID, req)
	if err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create blog", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(blog)
	return nil
}

func (h *BlogHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) *common.AppError {
	blogID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid blog ID in URL path", err)
	}

	var req model.UpdateBlogRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	blog, svcErr := h.service.UpdateBlog(blogID, userID, callerIsAdmin(r), req)
	if svcErr != nil {
		switch svcErr {
		case service.ErrBlogNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrPermissionDenied:
			return common.NewAppError(http.StatusForbidden, svcErr.Error(), svcErr)
		case service.ErrCategoryNotFound:
			return common.NewAppError(http.StatusBadRequest, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update blog", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(blog)
	return nil
}

func (h *BlogHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) *common.AppError {
	blogID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid blog ID in URL path", err)
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	if svcErr := h.service.DeleteBlog(blogID, userID, callerIsAdmin(r)); svcErr != nil {
		switch svcErr {
		case service.ErrBlogNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrPermissionDenied:
			return common.NewAppError(http.StatusForbidden, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not delete blog", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Blog deleted successfully"})
	return nil
}

// ToggleLike flips the caller's like on a blog.
func (h *BlogHandler) ToggleLike(w http.ResponseWriter, r *http.Request) *common.AppError {
	blogID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid blog ID in URL path", err)
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	likes, isLiked, svcErr := h.service.ToggleLike(blogID, userID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrBlogNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update like", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"likes":    likes,
		"is_liked": isLiked,
	})
	return nil
}

// ToggleBookmark flips the caller's bookmark on a blog.
func (h *BlogHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) *common.AppError {
	blogID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid blog ID in URL path", err)
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	isBookmarked, svcErr := h.service.ToggleBookmark(blogID, userID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrBlogNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update bookmark", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"is_bookmarked": isBookmarked,
	})
	return nil
}

// ListDrafts returns the caller's draft blogs.
func (h *BlogHandler) ListDrafts(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	page, limit := parsePagination(r)
	blogs, pagination, err := h.service.ListDrafts(userID, page, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve draft blogs", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"blogs":      blogs,
		"pagination": pagination,
	})
	return nil
}
