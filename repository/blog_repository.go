package repository

import (
	"database/sql"
	"fmt"

	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/model"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// IBlogRepository defines the contract for blog database operations.
type IBlogRepository interface {
	CreateBlog(blog *model.Blog) error
	GetBlogByID(id int) (*model.Blog, error)
	ListBlogs(filter model.BlogFilter, limit, offset int) ([]*model.Blog, error)
	CountBlogs(filter model.BlogFilter) (int, error)
	UpdateBlog(blog *model.Blog) error
	UpdateBlogStatus(id int, status string) error
	DeleteBlog(id int) error
	IncrementViews(id int) error
	GetTopViewedBlogs(limit int) ([]*model.Blog, error)
	HasLike(blogID, userID int) (bool, error)
	AddLike(blogID, userID int) error
	RemoveLike(blogID, userID int) error
	CountLikes(blogID int) (int, error)
	HasBookmark(blogID, userID int) (bool, error)
	AddBookmark(blogID, userID int) error
	RemoveBookmark(blogID, userID int) error
}

type BlogRepository struct {
	DB *sql.DB
}

func NewBlogRepository(db *sql.DB) *BlogRepository {
	return &BlogRepository{DB: db}
}

// blogSelect joins the author and category so every returned blog comes back
// with its references populated, plus the like count.
const blogSelect = `
	SELECT b.id, b.title, b.content, b.excerpt, b.featured_image, b.author_id, b.category_id,
		b.tags, b.status, b.is_featured, b.slug, b.meta_title, b.meta_description,
		b.read_time, b.views, b.created_at, b.updated_at,
		u.name, u.profile_picture, c.name, c.slug,
		(SELECT COUNT(*) FROM blog_likes bl WHERE bl.blog_id = b.id) AS likes
	FROM blogs b
	JOIN users u ON u.id = b.author_id
	JOIN categories c ON c.id = b.category_id`

func scanBlog(row interface{ Scan(...interface{}) error }) (*model.Blog, error) {
	b := &model.Blog{
		Author:   &model.UserSummary{},
		Category: &model.CategorySummary{},
	}
	err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Excerpt, &b.FeaturedImage, &b.AuthorID,
		&b.CategoryID, pq.Array(&b.Tags), &b.Status, &b.IsFeatured, &b.Slug, &b.MetaTitle,
		&b.MetaDescription, &b.ReadTime, &b.Views, &b.CreatedAt, &b.UpdatedAt,
		&b.Author.Name, &b.Author.ProfilePicture, &b.Category.Name, &b.Category.Slug, &b.Likes)
	if err != nil {
		return nil, err
	}
	b.Author.ID = b.AuthorID
	b.Category.ID = b.CategoryID
	return b, nil
}

func (r *BlogRepository) CreateBlog(blog *model.Blog) error {
	log := logger.Log.WithFields(logrus.Fields{
		"author_id":   blog.AuthorID,
		"category_id": blog.CategoryID,
		"title":       blog.Title,
	})
	log.Info("Executing query to create a new blog")

	query := `INSERT INTO blogs (title, content, excerpt, featured_image, author_id, category_id,
		tags, status, is_featured, slug, meta_title, meta_description, read_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, views, created_at, updated_at`
	err := r.DB.QueryRow(query, blog.Title, blog.Content, blog.Excerpt, blog.FeaturedImage,
		blog.AuthorID, blog.CategoryID, pq.Array(blog.Tags), blog.Status, blog.IsFeatured,
		blog.Slug, blog.MetaTitle, blog.MetaDescription, blog.ReadTime).
		Scan(&blog.ID, &blog.Views, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create blog query")
		return err
	}
	return nil
}

func (r *BlogRepository) GetBlogByID(id int) (*model.Blog, error) {
	return scanBlog(r.DB.QueryRow(blogSelect+` WHERE b.id = $1`, id))
}

func buildBlogFilter(filter model.BlogFilter) (string, []interface{}) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND b.status = $%d", len(args))
	}
	if filter.AuthorID != 0 {
		args = append(args, filter.AuthorID)
		where += fmt.Sprintf(" AND b.author_id = $%d", len(args))
	}
	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		where += fmt.Sprintf(" AND b.category_id = $%d", len(args))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		where += fmt.Sprintf(" AND $%d = ANY(b.tags)", len(args))
	}
	if filter.Featured {
		where += " AND b.is_featured = TRUE"
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		where += fmt.Sprintf(
			" AND to_tsvector('english', b.title || ' ' || b.content || ' ' || b.excerpt) @@ plainto_tsquery('english', $%d)",
			len(args))
	}
	if filter.BookmarkedBy != 0 {
		args = append(args, filter.BookmarkedBy)
		where += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM blog_bookmarks bb WHERE bb.blog_id = b.id AND bb.user_id = $%d)", len(args))
	}
	if !filter.CreatedAfter.IsZero() {
		args = append(args, filter.CreatedAfter)
		where += fmt.Sprintf(" AND b.created_at >= $%d", len(args))
	}

	return where, args
}

func (r *BlogRepository) ListBlogs(filter model.BlogFilter, limit, offset int) ([]*model.Blog, error) {
	where, args := buildBlogFilter(filter)

	orderBy := " ORDER BY b.created_at DESC"
	if filter.SortByUpdated {
		orderBy = " ORDER BY b.updated_at DESC"
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf("%s%s%s LIMIT $%d OFFSET $%d", blogSelect, where, orderBy, len(args)-1, len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list blogs query")
		return nil, err
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan blog row")
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func (r *BlogRepository) CountBlogs(filter model.BlogFilter) (int, error) {
	where, args := buildBlogFilter(filter)
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM blogs b`+where, args...).Scan(&total)
	return total, err
}

func (r *BlogRepository) UpdateBlog(blog *model.Blog) error {
	log := logger.Log.WithField("blog_id", blog.ID)
	log.Info("Executing query to update blog")

	query := `UPDATE blogs SET title = $1, content = $2, excerpt = $3, featured_image = $4,
		category_id = $5, tags = $6, status = $7, is_featured = $8, slug = $9,
		meta_title = $10, meta_description = $11, read_time = $12, updated_at = now()
		WHERE id = $13 RETURNING updated_at`
	err := r.DB.QueryRow(query, blog.Title, blog.Content, blog.Excerpt, blog.FeaturedImage,
		blog.CategoryID, pq.Array(blog.Tags), blog.Status, blog.IsFeatured, blog.Slug,
		blog.MetaTitle, blog.MetaDescription, blog.ReadTime, blog.ID).Scan(&blog.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute update blog query")
		return err
	}
	return nil
}

func (r *BlogRepository) UpdateBlogStatus(id int, status string) error {
	log := logger.Log.WithFields(logrus.Fields{
		"blog_id": id,
		"status":  status,
	})
	log.Info("Executing query to update blog status")

	query := `UPDATE blogs SET status = $1, updated_at = now() WHERE id = $2`
	if _, err := r.DB.Exec(query, status, id); err != nil {
		log.WithError(err).Error("Failed to execute update blog status query")
		return err
	}
	return nil
}

// DeleteBlog removes the blog row; comments, likes and bookmarks cascade via
// their foreign keys.
func (r *BlogRepository) DeleteBlog(id int) error {
	log := logger.Log.WithField("blog_id", id)
	log.Info("Executing query to delete blog")

	if _, err := r.DB.Exec(`DELETE FROM blogs WHERE id = $1`, id); err != nil {
		log.WithError(err).Error("Failed to execute delete blog query")
		return err
	}
	return nil
}

func (r *BlogRepository) IncrementViews(id int) error {
	_, err := r.DB.Exec(`UPDATE blogs SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *BlogRepository) GetTopViewedBlogs(limit int) ([]*model.Blog, error) {
	query := blogSelect + ` WHERE b.status = 'published' ORDER BY b.views DESC LIMIT $1`

	rows, err := r.DB.Query(query, limit)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute query for top viewed blogs")
		return nil, err
	}
	defer rows.Close()

	var blogs []*model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}
	return blogs, rows.Err()
}

func (r *BlogRepository) HasLike(blogID, userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM blog_likes WHERE blog_id = $1 AND user_id = $2)`,
		blogID, userID).Scan(&exists)
	return exists, err
}

func (r *BlogRepository) AddLike(blogID, userID int) error {
	_, err := r.DB.Exec(`INSERT INTO blog_likes (blog_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		blogID, userID)
	return err
}

func (r *BlogRepository) RemoveLike(blogID, userID int) error {
	_, err := r.DB.Exec(`DELETE FROM blog_likes WHERE blog_id = $1 AND user_id = $2`, blogID, userID)
	return err
}

func (r *BlogRepository) CountLikes(blogID int) (int, error) {
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM blog_likes WHERE blog_id = $1`, blogID).Scan(&total)
	return total, err
}

func (r *BlogRepository) HasBookmark(blogID, userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM blog_bookmarks WHERE blog_id = $1 AND user_id = $2)`,
		blogID, userID).Scan(&exists)
	return exists, err
}

func (r *BlogRepository) AddBookmark(blogID, userID int) error {
	_, err := r.DB.Exec(`INSERT INTO blog_bookmarks (blog_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		blogID, userID)
	return err
}

func (r *BlogRepository) RemoveBookmark(blogID, userID int) error {
	_, err := r.DB.Exec(`DELETE FROM blog_bookmarks WHERE blog_id = $1 AND user_id = $2`, blogID, userID)
	return err
}
