package service

import (
	"database/sql"
	"errors"

	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/repository"
)

var (
	ErrCommentNotFound       = errors.New("comment not found")
	ErrParentCommentNotFound = errors.New("parent comment not found")
)

// CommentService handles comments and one-level reply threads.
type CommentService struct {
	commentRepo repository.ICommentRepository
	blogRepo    repository.IBlogRepository
}

func NewCommentService(commentRepo repository.ICommentRepository, blogRepo repository.IBlogRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, blogRepo: blogRepo}
}

// ListBlogComments returns a page of a blog's top-level comments with their
// replies populated.
func (s *CommentService) ListBlogComments(blogID, page, limit int) ([]*model.Comment, model.Pagination, error) {
	offset := (page - 1) * limit

	comments, err := s.commentRepo.ListBlogComments(blogID, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	for _, comment := range comments {
		replies, err := s.commentRepo.ListReplies(comment.ID)
		if err != nil {
			return nil, model.Pagination{}, err
		}
		comment.Replies = replies
	}

	total, err := s.commentRepo.CountBlogComments(blogID)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return comments, model.NewPagination(page, limit, total), nil
}

// ListReplies returns a comment's replies, oldest first.
func (s *CommentService) ListReplies(commentID int) ([]*model.Comment, error) {
	return s.commentRepo.ListReplies(commentID)
}

// CreateComment posts a comment, or a reply when a parent is given. The blog
// and the parent must both exist.
func (s *CommentService) CreateComment(authorID int, req model.CreateCommentRequest) (*model.Comment, error) {
	if _, err := s.blogRepo.GetBlogByID(req.BlogID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if req.ParentCommentID != nil {
		if _, err := s.commentRepo.GetCommentByID(*req.ParentCommentID); err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrParentCommentNotFound
			}
			return nil, err
		}
	}

	comment := &model.Comment{
		Content:         req.Content,
		BlogID:          req.BlogID,
		AuthorID:        authorID,
		ParentCommentID: req.ParentCommentID,
		Status:          model.CommentStatusApproved,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetCommentByID(comment.ID)
}

// UpdateComment edits a comment's content. Only the author may edit, and the
// comment is marked as edited.
func (s *CommentService) UpdateComment(commentID, callerID int, content string) (*model.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if comment.AuthorID != callerID {
		return nil, ErrPermissionDenied
	}

	comment.Content = content
	if err := s.commentRepo.UpdateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment (author or admin only); replies cascade.
func (s *CommentService) DeleteComment(commentID, callerID int, callerIsAdmin bool) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrCommentNotFound
		}
		return err
	}

	if comment.AuthorID != callerID && !callerIsAdmin {
		return ErrPermissionDenied
	}

	return s.commentRepo.DeleteComment(commentID)
}

// ToggleLike flips the caller's like on a comment and returns the new count
// and state.
func (s *CommentService) ToggleLike(commentID, userID int) (int, bool, error) {
	if _, err := s.commentRepo.GetCommentByID(commentID); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, ErrCommentNotFound
		}
		return 0, false, err
	}

	liked, err := s.commentRepo.HasLike(commentID, userID)
	if err != nil {
		return 0, false, err
	}

	if liked {
		err = s.commentRepo.RemoveLike(commentID, userID)
	} else {
		err = s.commentRepo.AddLike(commentID, userID)
	}
	if err != nil {
		return 0, false, err
	}

	likes, err := s.commentRepo.CountLikes(commentID)
	if err != nil {
		return 0, false, err
	}
	return likes, !liked, nil
}
