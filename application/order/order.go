package order

import (
	"context"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	orderrepo "github.com/codefanw/mall-backend/repository/order"
	userrepo "github.com/codefanw/mall-backend/repository/user"
	"github.com/codefanw/mall-backend/utils/errors"
	"github.com/codefanw/mall-backend/utils/logger"
	"go.uber.org/zap"
)

type OrderApp interface {
	ListUserOrders(ctx context.Context, userID uint64) (*model.OrderListResponse, error)
}

type orderAppImpl struct {
	orderRepo orderrepo.OrderRepository
	userRepo  userrepo.UserRepository
}

func NewOrderApp(orderRepo orderrepo.OrderRepository, userRepo userrepo.UserRepository) OrderApp {
	return &orderAppImpl{orderRepo: orderRepo, userRepo: userRepo}
}

// ListUserOrders returns the user's order history, newest first.
func (s *orderAppImpl) ListUserOrders(ctx context.Context, userID uint64) (*model.OrderListResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[ListUserOrders] error userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListUserOrders] error orderRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.OrderListResponse{
		Items:      orders,
		TotalCount: int64(len(orders)),
	}, nil
}
