package repository

import (
	"database/sql"

	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/model"
)

// ICategoryRepository defines the contract for category database operations.
type ICategoryRepository interface {
	CreateCategory(category *model.Category) error
	GetCategoryByID(id int) (*model.Category, error)
	GetCategoryBySlug(slug string) (*model.Category, error)
	FindCategoryByName(name string, excludeID int) (*model.Category, error)
	GetActiveCategories() ([]*model.Category, error)
	UpdateCategory(category *model.Category) error
	DeleteCategory(id int) error
	CountCategories() (int, error)
}

type CategoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

const categoryColumns = `id, name, description, slug, is_active, created_by, created_at, updated_at`

func scanCategory(row interface{ Scan(...interface{}) error }) (*model.Category, error) {
	c := &model.Category{}
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.IsActive,
		&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) CreateCategory(category *model.Category) error {
	log := logger.Log.WithField("name", category.Name)
	log.Info("Executing query to create a new category")

	query := `INSERT INTO categories (name, description, slug, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, category.Name, category.Description, category.Slug,
		category.IsActive, category.CreatedBy).
		Scan(&category.ID, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create category query")
		return err
	}
	return nil
}

func (r *CategoryRepository) GetCategoryByID(id int) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return scanCategory(r.DB.QueryRow(query, id))
}

func (r *CategoryRepository) GetCategoryBySlug(slug string) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE slug = $1`
	return scanCategory(r.DB.QueryRow(query, slug))
}

// FindCategoryByName does a case-insensitive name lookup, optionally excluding
// one category id (used when renaming to detect conflicts with other rows).
func (r *CategoryRepository) FindCategoryByName(name string, excludeID int) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE lower(name) = lower($1) AND id <> $2`
	return scanCategory(r.DB.QueryRow(query, name, excludeID))
}

// GetActiveCategories returns active categories sorted by name, each with its
// published blog count attached.
func (r *CategoryRepository) GetActiveCategories() ([]*model.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.slug, c.is_active, c.created_by, c.created_at, c.updated_at,
			COUNT(b.id) FILTER (WHERE b.status = 'published') AS blog_count
		FROM categories c
		LEFT JOIN blogs b ON b.category_id = c.id
		WHERE c.is_active = TRUE
		GROUP BY c.id
		ORDER BY c.name ASC`

	rows, err := r.DB.Query(query)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for active categories")
		return nil, err
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		c := &model.Category{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.IsActive,
			&c.CreatedBy, &c.CreatedAt, &c.UpdatedAt, &c.BlogCount); err != nil {
			logger.Log.WithError(err).Error("Failed to scan category row")
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) UpdateCategory(category *model.Category) error {
	log := logger.Log.WithField("category_id", category.ID)
	log.Info("Executing query to update category")

	query := `UPDATE categories SET name = $1, description = $2, slug = $3, is_active = $4,
		updated_at = now() WHERE id = $5 RETURNING updated_at`
	err := r.DB.QueryRow(query, category.Name, category.Description, category.Slug,
		category.IsActive, category.ID).Scan(&category.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute update category query")
		return err
	}
	return nil
}

func (r *CategoryRepository) DeleteCategory(id int) error {
	log := logger.Log.WithField("category_id", id)
	log.Info("Executing query to delete category")

	if _, err := r.DB.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
		log.WithError(err).Error("Failed to execute delete category query")
		return err
	}
	return nil
}

func (r *CategoryRepository) CountCategories() (int, error) {
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&total)
	return total, err
}
