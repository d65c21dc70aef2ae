package model

import (
	"time"

	"github.com/codefanw/mall-backend/constant"
)

// OrderEntity is the persisted order record. TotalAmount is the post-discount
// final price and is never recomputed after creation. ProductList is the flat
// comma-separated product id encoding (quantity encoded by repetition).
type OrderEntity struct {
	ID          uint64               `db:"order_id" json:"order_id"`
	UserID      uint64               `db:"user_id" json:"user_id"`
	TotalAmount float64              `db:"total_amount" json:"total_amount"`
	ProductList string               `db:"product_list" json:"product_list"`
	Status      constant.OrderStatus `db:"order_status" json:"order_status"`
	CreatedAt   time.Time            `db:"created_at" json:"created_at"`
}

type OrderListResponse struct {
	Items      []OrderEntity `json:"items"`
	TotalCount int64         `json:"total_count"`
}
