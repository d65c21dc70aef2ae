package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	"github.com/codefanw/mall-backend/utils/errors"
	validatorx "github.com/codefanw/mall-backend/utils/validator"
	"github.com/gorilla/mux"
)

// AvailablePromotions handler
// @Summary List currently available promotions
// @Tags Promotion
// @Produce json
// @Success 200 {array} model.Campaign
// @Router /promotions/available [get]
func (s *RestHandler) AvailablePromotions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.PromotionApp.AvailableCampaigns(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListPromotions handler
// @Summary List promotions with filters
// @Tags Promotion
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Param status query int false "Status filter"
// @Param type query int false "Type filter"
// @Success 200 {object} model.CampaignListResponse
// @Router /internal/promotions [get]
func (s *RestHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := &model.CampaignFilter{}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	if v := q.Get("status"); v != "" {
		if status, err := strconv.Atoi(v); err == nil {
			filter.Status = &status
		}
	}
	if v := q.Get("type"); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			filter.Type = &t
		}
	}

	res, err := s.PromotionApp.ListCampaigns(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetPromotion handler
// @Summary Get promotion detail
// @Tags Promotion
// @Produce json
// @Param id path int true "Promotion ID"
// @Success 200 {object} model.Campaign
// @Failure 400 {object} errors.CustomError
// @Router /internal/promotions/{id} [get]
func (s *RestHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PromotionApp.GetCampaign(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreatePromotion handler
// @Summary Create a promotion with its rules
// @Tags Promotion
// @Accept json
// @Produce json
// @Param request body model.CampaignCreateRequest true "Create Request"
// @Success 200 {object} model.Campaign
// @Failure 400 {object} errors.CustomError
// @Router /internal/promotions [post]
func (s *RestHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CampaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PromotionApp.CreateCampaign(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdatePromotion handler
// @Summary Update a promotion; a rules array replaces the full rule set
// @Tags Promotion
// @Accept json
// @Produce json
// @Param id path int true "Promotion ID"
// @Param request body model.CampaignUpdateRequest true "Update Request"
// @Success 200 {object} model.Campaign
// @Failure 400 {object} errors.CustomError
// @Router /internal/promotions/{id} [put]
func (s *RestHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CampaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PromotionApp.UpdateCampaign(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeletePromotion handler
// @Summary Delete a promotion and its rules
// @Tags Promotion
// @Produce json
// @Param id path int true "Promotion ID"
// @Success 200 {object} nil
// @Failure 400 {object} errors.CustomError
// @Router /internal/promotions/{id} [delete]
func (s *RestHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PromotionApp.DeleteCampaign(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// UpdatePromotionStatus handler
// @Summary Update promotion status
// @Tags Promotion
// @Accept json
// @Produce json
// @Param id path int true "Promotion ID"
// @Success 200 {object} nil
// @Failure 400 {object} errors.CustomError
// @Router /internal/promotions/{id}/status [patch]
func (s *RestHandler) UpdatePromotionStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req struct {
		Status int `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PromotionApp.UpdateCampaignStatus(ctx, id, req.Status); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
