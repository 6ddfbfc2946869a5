package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prasanth-1011/Blog-System/common"
	"github.com/Prasanth-1011/Blog-System/service"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{service: s}
}

// GetProfile godoc
// @Summary      Get a public user profile
// @Description  Returns a user's public profile with their published blog count.
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  common.AppError
// @Router       /api/users/profile/{id} [get]
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID in URL path", err)
	}

	user, blogCount, svcErr := h.service.GetProfile(userID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrUserNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve profile", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":       user,
		"blog_count": blogCount,
	})
	return nil
}

// ListUserBlogs returns a user's published blogs.
func (h *UserHandler) ListUserBlogs(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID in URL path", err)
	}

	page, limit := parsePagination(r)
	blogs, pagination, svcErr := h.service.ListUserBlogs(userID, page, limit)
	if svcErr != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve blogs", svcErr)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"blogs":      blogs,
		"pagination": pagination,
	})
	return nil
}

// ListBookmarks returns the caller's bookmarked blogs.
func (h *UserHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	page, limit := parsePagination(r)
	blogs, pagination, err := h.service.ListBookmarks(userID, page, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve bookmarks", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"blogs":      blogs,
		"pagination": pagination,
	})
	return nil
}
