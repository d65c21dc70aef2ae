package comment

import (
	"context"
	"database/sql"

	"github.com/codefanw/mall-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CommentRepository interface {
	ListByProduct(ctx context.Context, productID uint64) ([]model.Comment, error)
	GetByID(ctx context.Context, id uint64) (*model.Comment, error)
	Insert(ctx context.Context, c *model.Comment) (uint64, error)
	Delete(ctx context.Context, id uint64) error
}

func NewCommentRepository(conn *sqlx.DB) CommentRepository {
	return &SQL{conn: conn}
}

const (
	listCommentsByProduct = `SELECT comment_id, user_id, product_id, score, content, create_time FROM product_comment WHERE product_id = ? ORDER BY create_time DESC`

	getCommentByID = `SELECT comment_id, user_id, product_id, score, content, create_time FROM product_comment WHERE comment_id = ?`

	insertCommentQuery = `INSERT INTO product_comment (user_id, product_id, score, content, create_time) VALUES (?, ?, ?, ?, NOW())`
)

func (s *SQL) ListByProduct(ctx context.Context, productID uint64) ([]model.Comment, error) {
	rows, err := s.conn.QueryxContext(ctx, listCommentsByProduct, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var c model.Comment
	if err := s.conn.QueryRowxContext(ctx, getCommentByID, id).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) Insert(ctx context.Context, c *model.Comment) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, insertCommentQuery, c.UserID, c.ProductID, c.Score, c.Content)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM product_comment WHERE comment_id = ?", id)
	return err
}
