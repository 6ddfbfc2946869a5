package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prasanth-1011/Blog-System/common"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/service"
)

type AdminHandler struct {
	service *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// GetDashboard godoc
// @Summary      Admin dashboard
// @Description  Returns platform-wide counts, 7-day activity numbers and the top viewed blogs.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  common.AppError
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) *common.AppError {
	stats, topBlogs, err := h.service.GetDashboardStats()
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve dashboard stats", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"stats":     stats,
		"top_blogs": topBlogs,
	})
	return nil
}

// ListUsers returns a filtered page of users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	page, limit := parsePagination(r)
	q := r.URL.Query()

	filter := model.UserFilter{
		Search: q.Get("search"),
		Status: q.Get("status"),
		Role:   q.Get("role"),
	}

	users, pagination, err := h.service.ListUsers(filter, page, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve users", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"users":      users,
		"pagination": pagination,
	})
	return nil
}

// UpdateUserStatus activates or suspends a user account. The root account
// cannot be modified.
func (h *AdminHandler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid user ID in URL path", err)
	}

	var req model.UpdateUserStatusRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, svcErr := h.service.UpdateUserStatus(userID, req.Status)
	if svcErr != nil {
		switch svcErr {
		case service.ErrUserNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrRootImmutable:
			return common.NewAppError(http.StatusForbidden, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update user status", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(user)
	return nil
}

// ListAllBlogs returns blogs in any status for moderation.
func (h *AdminHandler) ListAllBlogs(w http.ResponseWriter, r *http.Request) *common.AppError {
	page, limit := parsePagination(r)
	q := r.URL.Query()

	blogs, pagination, err := h.service.ListAllBlogs(q.Get("status"), q.Get("search"), page, limit)
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

// UpdateBlogStatus moves a blog between draft, published and archived.
func (h *AdminHandler) UpdateBlogStatus(w http.ResponseWriter, r *http.Request) *common.AppError {
	blogID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid blog ID in URL path", err)
	}

	var req model.UpdateBlogStatusRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	blog, svcErr := h.service.UpdateBlogStatus(blogID, req.Status)
	if svcErr != nil {
		switch svcErr {
		case service.ErrBlogNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrInvalidStatus:
			return common.NewAppError(http.StatusBadRequest, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update blog status", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(blog)
	return nil
}

// SubmitRequest godoc
// @Summary      Request admin privileges
// @Description  Submits an admin-access request for the authenticated user. Only one pending request per user is allowed.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body model.SubmitAdminRequest true "Request"
// @Success      201  {object}  model.AdminRequest
// @Failure      400  {object}  common.AppError "A pending request already exists"
// @Router       /api/admin/requests [post]
func (h *AdminHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.SubmitAdminRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	request, err := h.service.SubmitRequest(userID, req.Reason)
	if err != nil {
		switch err {
		case service.ErrDuplicateRequest:
			return common.NewAppError(http.StatusBadRequest, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not submit request", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(request)
	return nil
}

// ListRequests returns a page of admin-access requests, optionally filtered
// by status.
func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) *common.AppError {
	page, limit := parsePagination(r)

	requests, pagination, err := h.service.ListRequests(r.URL.Query().Get("status"), page, limit)
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve requests", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"requests":   requests,
		"pagination": pagination,
	})
	return nil
}

// ReviewRequest godoc
// @Summary      Review an admin-access request
// @Description  Approves or rejects a pending request. Root only. Approval promotes the requester to admin.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                       true "Request ID"
// @Param        review  body model.ReviewAdminRequest  true "Decision"
// @Success      200  {object}  model.AdminRequest
// @Failure      400  {object}  common.AppError "Already reviewed or invalid decision"
// @Failure      404  {object}  common.AppError
// @Router       /api/admin/requests/{id}/review [put]
func (h *AdminHandler) ReviewRequest(w http.ResponseWriter, r *http.Request) *common.AppError {
	requestID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid request ID in URL path", err)
	}

	var req model.ReviewAdminRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	reviewerID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	request, svcErr := h.service.ReviewRequest(requestID, reviewerID, req.Status, req.ReviewNotes)
	if svcErr != nil {
		switch svcErr {
		case service.ErrRequestNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrAlreadyReviewed, service.ErrInvalidDecision:
			return common.NewAppError(http.StatusBadRequest, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not review request", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(request)
	return nil
}
