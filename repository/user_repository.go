package repository

import (
	"database/sql"
	"fmt"

	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/model"

	"github.com/sirupsen/logrus"
)

// IUserRepository defines the contract for user database operations.
type IUserRepository interface {
	CreateUser(user *model.User) error
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	GetRootUser() (*model.User, error)
	UpdateProfile(user *model.User) error
	ListUsers(filter model.UserFilter, limit, offset int) ([]*model.User, error)
	CountUsers(filter model.UserFilter) (int, error)
	UpdateUserStatus(userID int, status string) error
	PromoteToAdmin(userID int) error
}

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, name, email, password, bio, profile_picture, role, status, root, created_at, updated_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Bio,
		&user.ProfilePicture, &user.Role, &user.Status, &user.Root, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) CreateUser(user *model.User) error {
	query := `INSERT INTO users (name, email, password, bio, profile_picture, role, status, root)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query, user.Name, user.Email, user.Password, user.Bio,
		user.ProfilePicture, user.Role, user.Status, user.Root).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) GetUserByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.DB.QueryRow(query, email))
}

func (r *UserRepository) GetUserByID(id int) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.DB.QueryRow(query, id))
}

// GetRootUser returns the single seeded root admin, or sql.ErrNoRows when the
// database has not been seeded yet.
func (r *UserRepository) GetRootUser() (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE root = TRUE`
	return scanUser(r.DB.QueryRow(query))
}

func (r *UserRepository) UpdateProfile(user *model.User) error {
	log := logger.Log.WithField("user_id", user.ID)
	log.Info("Executing query to update user profile")

	query := `UPDATE users SET name = $1, email = $2, password = $3, bio = $4,
		profile_picture = $5, updated_at = now() WHERE id = $6 RETURNING updated_at`
	err := r.DB.QueryRow(query, user.Name, user.Email, user.Password, user.Bio,
		user.ProfilePicture, user.ID).Scan(&user.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute update profile query")
		return err
	}
	return nil
}

func buildUserFilter(filter model.UserFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d)", n, n)
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Role != "" {
		args = append(args, filter.Role)
		where += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if !filter.CreatedAfter.IsZero() {
		args = append(args, filter.CreatedAfter)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}

	return where, args
}

func (r *UserRepository) ListUsers(filter model.UserFilter, limit, offset int) ([]*model.User, error) {
	where, args := buildUserFilter(filter)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+userColumns+` FROM users%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list users query")
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan user row")
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) CountUsers(filter model.UserFilter) (int, error) {
	where, args := buildUserFilter(filter)
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`+where, args...).Scan(&total)
	return total, err
}

func (r *UserRepository) UpdateUserStatus(userID int, status string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"status":  status,
	})
	log.Info("Executing query to update user status")

	query := `UPDATE users SET status = $1, updated_at = now() WHERE id = $2`
	if _, err := r.DB.Exec(query, status, userID); err != nil {
		log.WithError(err).Error("Failed to execute update user status query")
		return err
	}
	return nil
}

// PromoteToAdmin grants admin role and activates the account in one write.
// This is the cross-entity side effect of an approved admin request.
func (r *UserRepository) PromoteToAdmin(userID int) error {
	log := logger.Log.WithField("user_id", userID)
	log.Info("Executing query to promote user to admin")

	query := `UPDATE users SET role = 'admin', status = 'active', updated_at = now() WHERE id = $1`
	if _, err := r.DB.Exec(query, userID); err != nil {
		log.WithError(err).Error("Failed to execute promote to admin query")
		return err
	}
	return nil
}
