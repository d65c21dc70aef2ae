package checkout

import (
	"context"
	"strconv"
	"strings"

	"github.com/codefanw/mall-backend/application/promotion"
	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	orderrepo "github.com/codefanw/mall-backend/repository/order"
	txrepo "github.com/codefanw/mall-backend/repository/tx"
	"github.com/codefanw/mall-backend/thirdparty/rabbitmq"
	"github.com/codefanw/mall-backend/utils/errors"
	"github.com/codefanw/mall-backend/utils/logger"
	"go.uber.org/zap"
)

// EncodeProductList flattens the cart into the stored product_list string: one
// id occurrence per unit of quantity, comma separated, cart line order kept.
// Two units of product 7 and one of product 9 encode as "7,7,9".
func EncodeProductList(cart []model.CartLine) string {
	ids := make([]string, 0, len(cart))
	for _, line := range cart {
		id := strconv.FormatUint(line.ProductID, 10)
		for i := 0; i < line.Quantity; i++ {
			ids = append(ids, id)
		}
	}
	return strings.Join(ids, ",")
}

// Finalize prices the cart against an optional chosen campaign. Shipping is
// always zero in this domain. An empty cart never produces a summary.
func Finalize(cart []model.CartLine, campaign *model.Campaign) (*model.CheckoutSummary, error) {
	if len(cart) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	subtotal := promotion.Subtotal(cart)
	var discount float64
	if campaign != nil {
		discount = promotion.Aggregate(campaign, cart).Discount
	}

	return &model.CheckoutSummary{
		Subtotal:    subtotal,
		Discount:    discount,
		Shipping:    0,
		Total:       subtotal - discount,
		ProductList: EncodeProductList(cart),
	}, nil
}

type CheckoutApp interface {
	Preview(ctx context.Context, req *model.CheckoutPreviewRequest) (*model.CheckoutPreviewResponse, error)
	CreateOrder(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error)
}

type checkoutAppImpl struct {
	promotionApp promotion.PromotionApp
	txRepo       txrepo.TxRepository
	orderRepo    orderrepo.OrderRepository
	publisher    *rabbitmq.Publisher
}

func NewCheckoutApp(promotionApp promotion.PromotionApp, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, publisher *rabbitmq.Publisher) CheckoutApp {
	return &checkoutAppImpl{promotionApp: promotionApp, txRepo: txRepo, orderRepo: orderRepo, publisher: publisher}
}

// Preview returns the subtotal and a per-campaign discount map over the
// currently available campaigns, without writing anything.
func (s *checkoutAppImpl) Preview(ctx context.Context, req *model.CheckoutPreviewRequest) (*model.CheckoutPreviewResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	campaigns, err := s.promotionApp.AvailableCampaigns(ctx)
	if err != nil {
		return nil, err
	}

	return &model.CheckoutPreviewResponse{
		Subtotal:  promotion.Subtotal(req.Items),
		Discounts: promotion.PreviewDiscounts(campaigns, req.Items),
	}, nil
}

func (s *checkoutAppImpl) CreateOrder(ctx context.Context, userID uint64, req *model.CheckoutRequest) (*model.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}

	// resolve the chosen campaign against the eligible set
	var chosen *model.Campaign
	if req.CampaignID != nil {
		campaigns, err := s.promotionApp.AvailableCampaigns(ctx)
		if err != nil {
			return nil, err
		}
		for i := range campaigns {
			if campaigns[i].ID == *req.CampaignID {
				chosen = &campaigns[i]
				break
			}
		}
		if chosen == nil {
			return nil, errors.SetCustomError(constant.ErrInvalidPromotion)
		}
	}

	summary, err := Finalize(req.Items, chosen)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	orderID, err := s.orderRepo.InsertOrderTx(ctx, tx, &model.OrderEntity{
		UserID:      userID,
		TotalAmount: summary.Total,
		ProductList: summary.ProductList,
		Status:      constant.OrderStatusPendingDelivery,
	})
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.OrderCreatedMessage{
			OrderID:     orderID,
			UserID:      userID,
			TotalAmount: summary.Total,
			Discount:    summary.Discount,
		}
		if chosen != nil {
			msg.CampaignID = &chosen.ID
		}
		if err := s.publisher.PublishOrderCreated(msg); err != nil {
			logger.Error("[CreateOrder] publish order created", zap.String("error", err.Error()))
		}
	}

	return &model.CheckoutResponse{
		OrderID: orderID,
		Summary: *summary,
	}, nil
}
