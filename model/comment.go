package model

import "time"

type Comment struct {
	ID         uint64    `db:"comment_id" json:"comment_id"`
	UserID     uint64    `db:"user_id" json:"user_id"`
	ProductID  uint64    `db:"product_id" json:"product_id"`
	Score      int       `db:"score" json:"score"`
	Content    *string   `db:"content" json:"content,omitempty"`
	CreateTime time.Time `db:"create_time" json:"create_time"`
}

type CommentCreateRequest struct {
	UserID    uint64  `json:"user_id" validate:"required"`
	ProductID uint64  `json:"product_id" validate:"required"`
	Score     int     `json:"score" validate:"required,gte=1,lte=5"`
	Content   *string `json:"content"`
}

type CommentListResponse struct {
	Items      []Comment `json:"items"`
	TotalCount int64     `json:"total_count"`
	ProductID  uint64    `json:"product_id"`
}
