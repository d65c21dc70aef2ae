package transport

import (
	"encoding/json"
	"net/http"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	utilsContext "github.com/codefanw/mall-backend/utils/context"
	"github.com/codefanw/mall-backend/utils/errors"
	validatorx "github.com/codefanw/mall-backend/utils/validator"
)

// PreviewCheckout handler
// @Summary Preview per-campaign discounts for a cart
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutPreviewRequest true "Cart"
// @Success 200 {object} model.CheckoutPreviewResponse
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /checkout/preview [post]
func (s *RestHandler) PreviewCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CheckoutPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.Preview(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateOrder handler
// @Summary Checkout the cart into an order
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body model.CheckoutRequest true "Checkout Request"
// @Success 200 {object} model.CheckoutResponse
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /checkout [post]
func (s *RestHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CheckoutApp.CreateOrder(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
