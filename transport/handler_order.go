package transport

import (
	"net/http"
	"strconv"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/utils/errors"
	"github.com/gorilla/mux"
)

// ListUserOrders handler
// @Summary List a user's orders, newest first
// @Tags Order
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} model.OrderListResponse
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /orders/user/{user_id} [get]
func (s *RestHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := strconv.ParseUint(mux.Vars(r)["user_id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.OrderApp.ListUserOrders(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
