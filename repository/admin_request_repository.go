package repository

import (
	"database/sql"

	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/model"

	"github.com/sirupsen/logrus"
)

// IAdminRequestRepository defines the contract for admin-request database operations.
type IAdminRequestRepository interface {
	CreateRequest(request *model.AdminRequest) error
	GetRequestByID(id int) (*model.AdminRequest, error)
	HasPendingRequest(userID int) (bool, error)
	ListRequests(status string, limit, offset int) ([]*model.AdminRequest, error)
	CountRequests(status string) (int, error)
	MarkReviewed(id int, status string, reviewerID int, notes string) (bool, error)
}

type AdminRequestRepository struct {
	DB *sql.DB
}

func NewAdminRequestRepository(db *sql.DB) *AdminRequestRepository {
	return &AdminRequestRepository{DB: db}
}

const adminRequestSelect = `
	SELECT r.id, r.user_id, r.reason, r.status, r.reviewed_by, r.review_notes,
		r.created_at, r.updated_at, u.name, u.email, u.profile_picture, rv.name
	FROM admin_requests r
	JOIN users u ON u.id = r.user_id
	LEFT JOIN users rv ON rv.id = r.reviewed_by`

func scanAdminRequest(row interface{ Scan(...interface{}) error }) (*model.AdminRequest, error) {
	req := &model.AdminRequest{User: &model.UserSummary{}}
	var reviewerName sql.NullString
	err := row.Scan(&req.ID, &req.UserID, &req.Reason, &req.Status, &req.ReviewedBy,
		&req.ReviewNotes, &req.CreatedAt, &req.UpdatedAt,
		&req.User.Name, &req.User.Email, &req.User.ProfilePicture, &reviewerName)
	if err != nil {
		return nil, err
	}
	req.User.ID = req.UserID
	if req.ReviewedBy != nil {
		req.Reviewer = &model.UserSummary{ID: *req.ReviewedBy, Name: reviewerName.String}
	}
	return req, nil
}

func (r *AdminRequestRepository) CreateRequest(request *model.AdminRequest) error {
	log := logger.Log.WithField("user_id", request.UserID)
	log.Info("Executing query to create a new admin request")

	query := `INSERT INTO admin_requests (user_id, reason, status)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, request.UserID, request.Reason, request.Status).
		Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create admin request query")
		return err
	}
	return nil
}

func (r *AdminRequestRepository) GetRequestByID(id int) (*model.AdminRequest, error) {
	return scanAdminRequest(r.DB.QueryRow(adminRequestSelect+` WHERE r.id = $1`, id))
}

func (r *AdminRequestRepository) HasPendingRequest(userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM admin_requests WHERE user_id = $1 AND status = 'pending')`,
		userID).Scan(&exists)
	return exists, err
}

// ListRequests returns requests newest first, optionally filtered by status,
// with the subject and reviewer references populated.
func (r *AdminRequestRepository) ListRequests(status string, limit, offset int) ([]*model.AdminRequest, error) {
	query := adminRequestSelect
	var args []interface{}
	if status != "" {
		query += ` WHERE r.status = $1`
		args = append(args, status)
	}
	args = append(args, limit, offset)
	if status != "" {
		query += ` ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY r.created_at DESC LIMIT $1 OFFSET $2`
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list admin requests query")
		return nil, err
	}
	defer rows.Close()

	var requests []*model.AdminRequest
	for rows.Next() {
		request, err := scanAdminRequest(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan admin request row")
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

func (r *AdminRequestRepository) CountRequests(status string) (int, error) {
	var total int
	var err error
	if status != "" {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM admin_requests WHERE status = $1`, status).Scan(&total)
	} else {
		err = r.DB.QueryRow(`SELECT COUNT(*) FROM admin_requests`).Scan(&total)
	}
	return total, err
}

// MarkReviewed moves a request out of pending. The status guard in the WHERE
// clause makes the transition conditional: a request that has already been
// reviewed (including by a concurrent reviewer) matches no rows, and the
// method reports false.
func (r *AdminRequestRepository) MarkReviewed(id int, status string, reviewerID int, notes string) (bool, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"request_id":  id,
		"status":      status,
		"reviewer_id": reviewerID,
	})
	log.Info("Executing query to review admin request")

	query := `UPDATE admin_requests SET status = $1, reviewed_by = $2, review_notes = $3,
		updated_at = now() WHERE id = $4 AND status = 'pending'`
	result, err := r.DB.Exec(query, status, reviewerID, notes, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute review admin request query")
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
