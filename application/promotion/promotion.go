package promotion

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/codefanw/mall-backend/cmd/config"
	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
	campaignrepo "github.com/codefanw/mall-backend/repository/campaign"
	redisrepo "github.com/codefanw/mall-backend/repository/redis"
	txrepo "github.com/codefanw/mall-backend/repository/tx"
	"github.com/codefanw/mall-backend/utils/errors"
	"github.com/codefanw/mall-backend/utils/logger"
	"go.uber.org/zap"
)

type PromotionApp interface {
	ListCampaigns(ctx context.Context, filter *model.CampaignFilter) (*model.CampaignListResponse, error)
	GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error)
	AvailableCampaigns(ctx context.Context) ([]model.Campaign, error)
	CreateCampaign(ctx context.Context, req *model.CampaignCreateRequest) (*model.Campaign, error)
	UpdateCampaign(ctx context.Context, id uint64, req *model.CampaignUpdateRequest) (*model.Campaign, error)
	DeleteCampaign(ctx context.Context, id uint64) error
	UpdateCampaignStatus(ctx context.Context, id uint64, status int) error
}

type promotionAppImpl struct {
	config       *config.Config
	txRepo       txrepo.TxRepository
	campaignRepo campaignrepo.CampaignRepository
	redisRepo    redisrepo.Repository
}

func NewPromotionApp(config *config.Config, txRepo txrepo.TxRepository, campaignRepo campaignrepo.CampaignRepository, redisRepo redisrepo.Repository) PromotionApp {
	return &promotionAppImpl{
		config:       config,
		txRepo:       txRepo,
		campaignRepo: campaignRepo,
		redisRepo:    redisRepo,
	}
}

func (s *promotionAppImpl) ListCampaigns(ctx context.Context, filter *model.CampaignFilter) (*model.CampaignListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 10
	}

	items, total, err := s.campaignRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListCampaigns] error campaignRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.CampaignListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *promotionAppImpl) GetCampaign(ctx context.Context, id uint64) (*model.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCampaign] error campaignRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if campaign == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return campaign, nil
}

// AvailableCampaigns returns the campaigns whose activity window covers now,
// served from the Redis cache when possible.
func (s *promotionAppImpl) AvailableCampaigns(ctx context.Context) ([]model.Campaign, error) {
	if cached, err := s.redisRepo.GetActiveCampaigns(ctx); err == nil && cached != "" {
		var campaigns []model.Campaign
		if err := json.Unmarshal([]byte(cached), &campaigns); err == nil {
			// a cached entry can outlive a campaign window within its TTL
			return FilterActive(campaigns, time.Now()), nil
		}
		logger.Warn("[AvailableCampaigns] bad cache payload, falling back to db")
	}

	campaigns, err := s.campaignRepo.ListActive(ctx, time.Now())
	if err != nil {
		logger.Error("[AvailableCampaigns] error campaignRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if payload, err := json.Marshal(campaigns); err == nil {
		if err := s.redisRepo.SetActiveCampaigns(ctx, string(payload), s.config.Promotion.CacheTTL); err != nil {
			logger.Warn("[AvailableCampaigns] set cache failed", zap.String("error", err.Error()))
		}
	}

	return campaigns, nil
}

func (s *promotionAppImpl) CreateCampaign(ctx context.Context, req *model.CampaignCreateRequest) (*model.Campaign, error) {
	if !constant.CampaignType(req.Type).Known() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	rules, err := buildRules(req.Rules)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateCampaign] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	campaign := &model.Campaign{
		Title:       req.Title,
		Description: req.Description,
		Type:        constant.CampaignType(req.Type),
		Status:      constant.CampaignStatusPending,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatedBy:   req.CreatedBy,
	}

	id, err := s.campaignRepo.InsertCampaignTx(ctx, tx, campaign)
	if err != nil {
		logger.Error("[CreateCampaign] insert campaign", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.campaignRepo.InsertRulesTx(ctx, tx, id, rules); err != nil {
		logger.Error("[CreateCampaign] insert rules", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateCampaign] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.dropCache(ctx)

	campaign.ID = id
	for i := range rules {
		rules[i].CampaignID = id
	}
	campaign.Rules = rules
	return campaign, nil
}

// UpdateCampaign updates campaign fields and, when the request carries rules,
// replaces the whole rule set.
func (s *promotionAppImpl) UpdateCampaign(ctx context.Context, id uint64, req *model.CampaignUpdateRequest) (*model.Campaign, error) {
	if req.Type != nil && !constant.CampaignType(*req.Type).Known() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Status != nil && !constant.CampaignStatus(*req.Status).Known() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var rules []model.CampaignRule
	if req.Rules != nil {
		var err error
		rules, err = buildRules(req.Rules)
		if err != nil {
			return nil, err
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateCampaign] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.campaignRepo.UpdateCampaignTx(ctx, tx, id, req); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateCampaign] update campaign", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if req.Rules != nil {
		if err := s.campaignRepo.DeleteRulesTx(ctx, tx, id); err != nil {
			logger.Error("[UpdateCampaign] delete rules", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.campaignRepo.InsertRulesTx(ctx, tx, id, rules); err != nil {
			logger.Error("[UpdateCampaign] insert rules", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateCampaign] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.dropCache(ctx)

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateCampaign] reload campaign", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if campaign == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return campaign, nil
}

func (s *promotionAppImpl) DeleteCampaign(ctx context.Context, id uint64) error {
	if err := s.campaignRepo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteCampaign] error campaignRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	s.dropCache(ctx)
	return nil
}

func (s *promotionAppImpl) UpdateCampaignStatus(ctx context.Context, id uint64, status int) error {
	if !constant.CampaignStatus(status).Known() {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := s.campaignRepo.UpdateStatus(ctx, id, constant.CampaignStatus(status)); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateCampaignStatus] error campaignRepo.UpdateStatus", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	s.dropCache(ctx)
	return nil
}

func (s *promotionAppImpl) dropCache(ctx context.Context) {
	if err := s.redisRepo.InvalidateActiveCampaigns(ctx); err != nil {
		logger.Warn("[PromotionApp] invalidate campaign cache failed", zap.String("error", err.Error()))
	}
}

// buildRules converts rule requests into entities, rejecting unknown codes at
// construction time instead of letting them reach the engine.
func buildRules(reqs []model.CampaignRuleRequest) ([]model.CampaignRule, error) {
	rules := make([]model.CampaignRule, 0, len(reqs))
	for _, r := range reqs {
		conditionType := constant.ConditionType(r.ConditionType)
		discountType := constant.DiscountType(r.DiscountType)
		if !conditionType.Known() || !discountType.Known() {
			return nil, errors.SetCustomError(constant.ErrMalformedRule)
		}
		rules = append(rules, model.CampaignRule{
			ProductID:      r.ProductID,
			ConditionType:  conditionType,
			ConditionValue: r.ConditionValue,
			DiscountType:   discountType,
			DiscountValue:  r.DiscountValue,
			GiftProductID:  r.GiftProductID,
		})
	}
	return rules, nil
}
