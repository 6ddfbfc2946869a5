package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/mailer"
	"github.com/Prasanth-1011/Blog-System/model"
	"github.com/Prasanth-1011/Blog-System/repository"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

var (
	ErrDuplicateRequest = errors.New("you already have a pending admin request")
	ErrRequestNotFound  = errors.New("admin request not found")
	ErrAlreadyReviewed  = errors.New("this request has already been reviewed")
	ErrInvalidDecision  = errors.New("invalid review decision")
	ErrRootImmutable    = errors.New("cannot modify root admin status")
	ErrInvalidStatus    = errors.New("invalid status value")
)

// AdminService governs the admin-request lifecycle and the admin dashboard.
type AdminService struct {
	requestRepo  repository.IAdminRequestRepository
	userRepo     repository.IUserRepository
	blogRepo     repository.IBlogRepository
	categoryRepo repository.ICategoryRepository
	mailer       mailer.IMailer
	cache        ICacheClient
}

func NewAdminService(
	requestRepo repository.IAdminRequestRepository,
	userRepo repository.IUserRepository,
	blogRepo repository.IBlogRepository,
	categoryRepo repository.ICategoryRepository,
	m mailer.IMailer,
	cache ICacheClient,
) *AdminService {
	return &AdminService{
		requestRepo:  requestRepo,
		userRepo:     userRepo,
		blogRepo:     blogRepo,
		categoryRepo: categoryRepo,
		mailer:       m,
		cache:        cache,
	}
}

// SubmitRequest files a new admin-access request for the caller. A user may
// have at most one pending request at a time; the partial unique index on
// admin_requests backs up the read check here.
func (s *AdminService) SubmitRequest(userID int, reason string) (*model.AdminRequest, error) {
	pending, err := s.requestRepo.HasPendingRequest(userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateRequest
	}

	request := &model.AdminRequest{
		UserID: userID,
		Reason: reason,
		Status: model.RequestStatusPending,
	}
	if err := s.requestRepo.CreateRequest(request); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Lost a race with a concurrent submission from the same user.
			return nil, ErrDuplicateRequest
		}
		return nil, err
	}

	return s.requestRepo.GetRequestByID(request.ID)
}

// ListRequests returns a page of admin requests, newest first, with the
// subject and reviewer populated.
func (s *AdminService) ListRequests(status string, page, limit int) ([]*model.AdminRequest, model.Pagination, error) {
	offset := (page - 1) * limit

	requests, err := s.requestRepo.ListRequests(status, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	total, err := s.requestRepo.CountRequests(status)
	if err != nil {
		return nil, model.Pagination{}, err
	}

	return requests, model.NewPagination(page, limit, total), nil
}

// ReviewRequest decides a pending request. Only the root admin may call this;
// the transport layer enforces that before the service is reached. The
// transition out of pending happens at most once: the conditional update in
// MarkReviewed rejects concurrent or repeated reviews. On approval the subject
// is promoted to an active admin strictly after the request write; if the
// promotion fails the request stays approved and the error is surfaced.
func (s *AdminService) ReviewRequest(requestID, reviewerID int, decision, notes string) (*model.AdminRequest, error) {
	if decision != model.RequestStatusApproved && decision != model.RequestStatusRejected {
		return nil, ErrInvalidDecision
	}

	request, err := s.requestRepo.GetRequestByID(requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if request.Status != model.RequestStatusPending {
		return nil, ErrAlreadyReviewed
	}

	reviewed, err := s.requestRepo.MarkReviewed(requestID, decision, reviewerID, notes)
	if err != nil {
		return nil, err
	}
	if !reviewed {
		return nil, ErrAlreadyReviewed
	}

	log := logger.Log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"user_id":     request.UserID,
		"decision":    decision,
		"reviewer_id": reviewerID,
	})

	if decision == model.RequestStatusApproved {
		if err := s.userRepo.PromoteToAdmin(request.UserID); err != nil {
			log.WithError(err).Error("Request approved but role promotion failed")
			return nil, fmt.Errorf("could not promote user to admin: %w", err)
		}
	}

	// Best-effort notification: a send failure never fails the review.
	if s.mailer != nil {
		if err := s.mailer.SendAdminDecisionEmail(request.User.Email, decision == model.RequestStatusApproved); err != nil {
			log.WithError(err).Warn("Failed to send admin decision email")
		}
	}

	log.Info("Admin request reviewed")
	return s.requestRepo.GetRequestByID(requestID)
}

// GetDashboardStats aggregates the counters shown on the admin dashboard and
// the five most viewed published blogs.
func (s *AdminService) GetDashboardStats() (*model.DashboardStats, []*model.Blog, error) {
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)

	totalUsers, err := s.userRepo.CountUsers(model.UserFilter{})
	if err != nil {
		return nil, nil, err
	}
	totalBlogs, err := s.blogRepo.CountBlogs(model.BlogFilter{})
	if err != nil {
		return nil, nil, err
	}
	totalPublished, err := s.blogRepo.CountBlogs(model.BlogFilter{Status: model.BlogStatusPublished})
	if err != nil {
		return nil, nil, err
	}
	totalCategories, err := s.categoryRepo.CountCategories()
	if err != nil {
		return nil, nil, err
	}
	pendingRequests, err := s.requestRepo.CountRequests(model.RequestStatusPending)
	if err != nil {
		return nil, nil, err
	}
	recentUsers, err := s.userRepo.CountUsers(model.UserFilter{CreatedAfter: sevenDaysAgo})
	if err != nil {
		return nil, nil, err
	}
	recentBlogs, err := s.blogRepo.CountBlogs(model.BlogFilter{
		Status:       model.BlogStatusPublished,
		CreatedAfter: sevenDaysAgo,
	})
	if err != nil {
		return nil, nil, err
	}

	popularBlogs, err := s.blogRepo.GetTopViewedBlogs(5)
	if err != nil {
		return nil, nil, err
	}

	stats := &model.DashboardStats{
		TotalUsers:           totalUsers,
		TotalBlogs:           totalBlogs,
		TotalPublishedBlogs:  totalPublished,
		TotalCategories:      totalCategories,
		PendingAdminRequests: pendingRequests,
		RecentUsers:          recentUsers,
		RecentBlogs:          recentBlogs,
	}
	return stats, popularBlogs, nil
}

// ListUsers returns a filtered page of users for the admin user table.
func (s *AdminService) ListUsers(filter model.UserFilter, page, limit int) ([]*model.User, model.Pagination, error) {
	offset := (page - 1) * limit

	users, err := s.userRepo.ListUsers(filter, limit, offset)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	total, err := s.userRepo.CountUsers(filter)
	if err != nil {
		return nil, model.Pagination{}, err
	}
	return users, model.NewPagination(page, limit, total), nil
}

// UpdateUserStatus activates or suspends a user. The root admin is excluded
// from every status-mutation path.
func (s *AdminService) UpdateUserStatus(userID int, status string) (*model.User, error) {
	if status != model.UserStatusActive && status != model.UserStatusSuspended {
		return nil, ErrInvalidStatus
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.Root {
		return nil, ErrRootImmutable
	}

	if err := s.userRepo.UpdateUserStatus(userID, status); err != nil {
		return nil, err
	}
	user.Status = status
	return user, nil
}

// ListAllBlogs returns a page of blogs across every status for moderation.
func (s *AdminService) ListAllBlogs(status, search string, page, limit int) ([]*model.Blog, model.Pagination, error) {
	filter := model.BlogFilter{Status: status, Search: search}
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

// UpdateBlogStatus moderates a blog into any of the three statuses.
func (s *AdminService) UpdateBlogStatus(blogID int, status string) (*model.Blog, error) {
	if status != model.BlogStatusDraft && status != model.BlogStatusPublished && status != model.BlogStatusArchived {
		return nil, ErrInvalidStatus
	}

	if _, err := s.blogRepo.GetBlogByID(blogID); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}

	if err := s.blogRepo.UpdateBlogStatus(blogID, status); err != nil {
		return nil, err
	}

	// Published counts feed the cached category list.
	invalidateCategoryCache(s.cache)

	return s.blogRepo.GetBlogByID(blogID)
}
