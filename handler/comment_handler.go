package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Prasanth-1011/Blog-System/common"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/service"
)

type CommentHandler struct {
	service *service.CommentService
}

func NewCommentHandler(s *service.CommentService) *CommentHandler {
	return &CommentHandler{service: s}
}

// ListBlogComments godoc
// @Summary      List comments on a blog
// @Description  Returns a page of top-level comments for a blog, newest first, each with its replies.
// @Tags         comments
// @Produce      json
// @Param        blogId path  int true  "Blog ID"
// @Param        page   query int false "Page number"
// @Param        limit  query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  common.AppError
// @Router       /api/comments/blog/{blogId} [get]
func (h *CommentHandler) ListBlogComments(w http.ResponseWriter, r *http.Request) *common.AppError {
	blogID, err := strconv.Atoi(r.PathValue("blogId"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid blog ID in URL path", err)
	}

	page, limit := parsePagination(r)
	comments, pagination, svcErr := h.service.ListBlogComments(blogID, page, limit)
	if svcErr != nil {
		switch svcErr {
		case service.ErrBlogNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve comments", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"comments":   comments,
		"pagination": pagination,
	})
	return nil
}

// ListReplies returns the replies to a comment, oldest first.
func (h *CommentHandler) ListReplies(w http.ResponseWriter, r *http.Request) *common.AppError {
	commentID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid comment ID in URL path", err)
	}

	replies, svcErr := h.service.ListReplies(commentID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrCommentNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not retrieve replies", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(replies)
	return nil
}

// CreateComment godoc
// @Summary      Create a comment
// @Description  Posts a comment on a blog, optionally as a reply to another comment.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        comment body model.CreateCommentRequest true "Comment"
// @Success      201  {object}  model.Comment
// @Failure      404  {object}  common.AppError "Blog or parent comment not found"
// @Router       /api/comments [post]
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateCommentRequest
	if err := common.ValidateAndDecode(r, &req); err != nil {
		return err
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	comment, err := h.service.CreateComment(userID, req)
	if err != nil {
		switch err {
		case service.ErrBlogNotFound, service.ErrParentCommentNotFound:
			return common.NewAppError(http.StatusNotFound, err.Error(), err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not create comment", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(comment)
	return nil
}

func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) *common.AppError {
	commentID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid comment ID in URL path", err)
	}

	var req model.UpdateCommentRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	comment, svcErr := h.service.UpdateComment(commentID, userID, req.Content)
	if svcErr != nil {
		switch svcErr {
		case service.ErrCommentNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrPermissionDenied:
			return common.NewAppError(http.StatusForbidden, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not update comment", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(comment)
	return nil
}

func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) *common.AppError {
	commentID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid comment ID in URL path", err)
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	if svcErr := h.service.DeleteComment(commentID, userID, callerIsAdmin(r)); svcErr != nil {
		switch svcErr {
		case service.ErrCommentNotFound:
			return common.NewAppError(http.StatusNotFound, svcErr.Error(), svcErr)
		case service.ErrPermissionDenied:
			return common.NewAppError(http.StatusForbidden, svcErr.Error(), svcErr)
		default:
			return common.NewAppError(http.StatusInternalServerError, "Could not delete comment", svcErr)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Comment deleted successfully"})
	return nil
}

// ToggleLike flips the caller's like on a comment.
func (h *CommentHandler) ToggleLike(w http.ResponseWriter, r *http.Request) *common.AppError {
	commentID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewAppError(http.StatusBadRequest, "Invalid comment ID in URL path", err)
	}

	userID, ok := callerID(r)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	likes, isLiked, svcErr := h.service.ToggleLike(commentID, userID)
	if svcErr != nil {
		switch svcErr {
		case service.ErrCommentNotFound:
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
