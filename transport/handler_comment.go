package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	utilsContext "github.com/codefanw/mall-backend/utils/context"
	"github.com/codefanw/mall-backend/utils/errors"
	validatorx "github.com/codefanw/mall-backend/utils/validator"
	"github.com/gorilla/mux"
)

// ListProductComments handler
// @Summary List comments for a product, newest first
// @Tags Comment
// @Produce json
// @Param product_id path int true "Product ID"
// @Success 200 {object} model.CommentListResponse
// @Failure 400 {object} errors.CustomError
// @Router /comments/product/{product_id} [get]
func (s *RestHandler) ListProductComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseUint(mux.Vars(r)["product_id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CommentApp.ListProductComments(ctx, productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateComment handler
// @Summary Create a comment on a product
// @Tags Comment
// @Accept json
// @Produce json
// @Param request body model.CommentCreateRequest true "Comment Request"
// @Success 200 {object} model.Comment
// @Failure 400 {object} errors.CustomError
// @Security BearerAuth
// @Router /comments [post]
func (s *RestHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.CommentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	// comments are always written as the session user
	req.UserID = userID

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.CommentApp.CreateComment(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteComment handler
// @Summary Delete own comment
// @Tags Comment
// @Produce json
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} nil
// @Failure 403 {object} errors.CustomError
// @Security BearerAuth
// @Router /comments/{comment_id} [delete]
func (s *RestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	commentID, err := strconv.ParseUint(mux.Vars(r)["comment_id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CommentApp.DeleteComment(ctx, commentID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
