package repository

import (
	"database/sql"

	"github.com/Prasanth-1011/Blog-System/logger"
	"github.com/Prasanth-1011/Blog-System/model"
)

// ICommentRepository defines the contract for comment database operations.
type ICommentRepository interface {
	CreateComment(comment *model.Comment) error
	GetCommentByID(id int) (*model.Comment, error)
	ListBlogComments(blogID, limit, offset int) ([]*model.Comment, error)
	CountBlogComments(blogID int) (int, error)
	ListReplies(parentID int) ([]*model.Comment, error)
	UpdateComment(comment *model.Comment) error
	DeleteComment(id int) error
	HasLike(commentID, userID int) (bool, error)
	AddLike(commentID, userID int) error
	RemoveLike(commentID, userID int) error
	CountLikes(commentID int) (int, error)
}

type CommentRepository struct {
	DB *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{DB: db}
}

const commentSelect = `
	SELECT c.id, c.content, c.blog_id, c.author_id, c.parent_comment_id, c.status, c.is_edited,
		c.created_at, c.updated_at, u.name, u.profile_picture,
		(SELECT COUNT(*) FROM comment_likes cl WHERE cl.comment_id = c.id) AS likes
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func scanComment(row interface{ Scan(...interface{}) error }) (*model.Comment, error) {
	c := &model.Comment{Author: &model.UserSummary{}}
	err := row.Scan(&c.ID, &c.Content, &c.BlogID, &c.AuthorID, &c.ParentCommentID, &c.Status,
		&c.IsEdited, &c.CreatedAt, &c.UpdatedAt, &c.Author.Name, &c.Author.ProfilePicture, &c.Likes)
	if err != nil {
		return nil, err
	}
	c.Author.ID = c.AuthorID
	return c, nil
}

func (r *CommentRepository) CreateComment(comment *model.Comment) error {
	log := logger.Log.WithField("blog_id", comment.BlogID)
	log.Info("Executing query to create a new comment")

	query := `INSERT INTO comments (content, blog_id, author_id, parent_comment_id, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, comment.Content, comment.BlogID, comment.AuthorID,
		comment.ParentCommentID, comment.Status).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create comment query")
		return err
	}
	return nil
}

func (r *CommentRepository) GetCommentByID(id int) (*model.Comment, error) {
	return scanComment(r.DB.QueryRow(commentSelect+` WHERE c.id = $1`, id))
}

// ListBlogComments returns the approved top-level comments of a blog,
// newest first.
func (r *CommentRepository) ListBlogComments(blogID, limit, offset int) ([]*model.Comment, error) {
	query := commentSelect + `
		WHERE c.blog_id = $1 AND c.parent_comment_id IS NULL AND c.status = 'approved'
		ORDER BY c.created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.DB.Query(query, blogID, limit, offset)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list blog comments query")
		return nil, err
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to scan comment row")
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) CountBlogComments(blogID int) (int, error) {
	var total int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM comments WHERE blog_id = $1 AND parent_comment_id IS NULL AND status = 'approved'`,
		blogID).Scan(&total)
	return total, err
}

// ListReplies returns a comment's approved replies, oldest first.
func (r *CommentRepository) ListReplies(parentID int) ([]*model.Comment, error) {
	query := commentSelect + `
		WHERE c.parent_comment_id = $1 AND c.status = 'approved'
		ORDER BY c.created_at ASC`

	rows, err := r.DB.Query(query, parentID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list replies query")
		return nil, err
	}
	defer rows.Close()

	var replies []*model.Comment
	for rows.Next() {
		reply, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}

func (r *CommentRepository) UpdateComment(comment *model.Comment) error {
	log := logger.Log.WithField("comment_id", comment.ID)
	log.Info("Executing query to update comment")

	query := `UPDATE comments SET content = $1, is_edited = TRUE, updated_at = now()
		WHERE id = $2 RETURNING updated_at`
	err := r.DB.QueryRow(query, comment.Content, comment.ID).Scan(&comment.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute update comment query")
		return err
	}
	comment.IsEdited = true
	return nil
}

// DeleteComment removes the comment row; replies cascade via the parent
// foreign key.
func (r *CommentRepository) DeleteComment(id int) error {
	log := logger.Log.WithField("comment_id", id)
	log.Info("Executing query to delete comment")

	if _, err := r.DB.Exec(`DELETE FROM comments WHERE id = $1`, id); err != nil {
		log.WithError(err).Error("Failed to execute delete comment query")
		return err
	}
	return nil
}

func (r *CommentRepository) HasLike(commentID, userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`SELECT EXISTS (SELECT 1 FROM comment_likes WHERE comment_id = $1 AND user_id = $2)`,
		commentID, userID).Scan(&exists)
	return exists, err
}

func (r *CommentRepository) AddLike(commentID, userID int) error {
	_, err := r.DB.Exec(`INSERT INTO comment_likes (comment_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		commentID, userID)
	return err
}

func (r *CommentRepository) RemoveLike(commentID, userID int) error {
	_, err := r.DB.Exec(`DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`, commentID, userID)
	return err
}

func (r *CommentRepository) CountLikes(commentID int) (int, error) {
	var total int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM comment_likes WHERE comment_id = $1`, commentID).Scan(&total)
	return total, err
}
