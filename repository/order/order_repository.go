package order

import (
	"context"

	"github.com/codefanw/mall-backend/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderEntity) (uint64, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.OrderEntity, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = "INSERT INTO `order` (user_id, total_amount, product_list, order_status, created_at) VALUES (?, ?, ?, ?, NOW())"

	listOrdersByUser = "SELECT order_id, user_id, total_amount, product_list, order_status, created_at FROM `order` WHERE user_id = ? ORDER BY created_at DESC"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.OrderEntity) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery, req.UserID, req.TotalAmount, req.ProductList, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.OrderEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, listOrdersByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.OrderEntity, 0)
	for rows.Next() {
		var o model.OrderEntity
		if err := rows.StructScan(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
