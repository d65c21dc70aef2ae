package promotion_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/codefanw/mall-backend/application/promotion"
	"github.com/codefanw/mall-backend/cmd/config"
	"github.com/codefanw/mall-backend/constant"
	mockCampaignRepo "github.com/codefanw/mall-backend/mocks/repository/campaign"
	mockRedisRepo "github.com/codefanw/mall-backend/mocks/repository/redis"
	mockTxRepo "github.com/codefanw/mall-backend/mocks/repository/tx"
	"github.com/codefanw/mall-backend/model"
	"github.com/codefanw/mall-backend/utils/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Promotion.CacheTTL = 5 * time.Minute
	return cfg
}

func TestPromotionApp_AvailableCampaigns(t *testing.T) {
	ctx := context.Background()
	campaigns := []model.Campaign{
		{
			ID:        3,
			Title:     "summer sale",
			Status:    constant.CampaignStatusActive,
			StartTime: time.Now().Add(-time.Hour),
			EndTime:   time.Now().Add(time.Hour),
		},
	}

	t.Run("cache hit", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		payload, _ := json.Marshal(campaigns)
		redisRepo.On("GetActiveCampaigns", ctx).Return(string(payload), nil)

		app := promotion.NewPromotionApp(testConfig(), nil, nil, redisRepo)
		got, err := app.AvailableCampaigns(ctx)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, uint64(3), got[0].ID)
	})

	t.Run("cache hit drops entries whose window ended", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		stale := []model.Campaign{
			{
				ID:        4,
				Status:    constant.CampaignStatusActive,
				StartTime: time.Now().Add(-2 * time.Hour),
				EndTime:   time.Now().Add(-time.Hour),
			},
		}
		payload, _ := json.Marshal(stale)
		redisRepo.On("GetActiveCampaigns", ctx).Return(string(payload), nil)

		app := promotion.NewPromotionApp(testConfig(), nil, nil, redisRepo)
		got, err := app.AvailableCampaigns(ctx)

		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cache miss falls back to db and repopulates", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)

		redisRepo.On("GetActiveCampaigns", ctx).Return("", assert.AnError)
		campaignRepo.On("ListActive", ctx, mock.Anything).Return(campaigns, nil)
		redisRepo.On("SetActiveCampaigns", ctx, mock.Anything, 5*time.Minute).Return(nil)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, redisRepo)
		got, err := app.AvailableCampaigns(ctx)

		assert.NoError(t, err)
		assert.Equal(t, campaigns, got)
	})

	t.Run("corrupt cache payload falls back to db", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)

		redisRepo.On("GetActiveCampaigns", ctx).Return("{not json", nil)
		campaignRepo.On("ListActive", ctx, mock.Anything).Return(campaigns, nil)
		redisRepo.On("SetActiveCampaigns", ctx, mock.Anything, 5*time.Minute).Return(nil)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, redisRepo)
		got, err := app.AvailableCampaigns(ctx)

		assert.NoError(t, err)
		assert.Equal(t, campaigns, got)
	})

	t.Run("db failure", func(t *testing.T) {
		redisRepo := mockRedisRepo.NewRepository(t)
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)

		redisRepo.On("GetActiveCampaigns", ctx).Return("", assert.AnError)
		campaignRepo.On("ListActive", ctx, mock.Anything).Return(nil, assert.AnError)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, redisRepo)
		got, err := app.AvailableCampaigns(ctx)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrInternal), err)
	})
}

func TestPromotionApp_CreateCampaign(t *testing.T) {
	ctx := context.Background()
	req := &model.CampaignCreateRequest{
		Title:     "618 mega sale",
		Type:      int(constant.CampaignTypeAmountOff),
		StartTime: time.Now(),
		EndTime:   time.Now().Add(24 * time.Hour),
		CreatedBy: 1,
		Rules: []model.CampaignRuleRequest{
			{ConditionType: int(constant.ConditionMinAmount), ConditionValue: 100, DiscountType: int(constant.DiscountAmountOff), DiscountValue: 10},
		},
	}

	t.Run("success", func(t *testing.T) {
		txRepo := mockTxRepo.NewTxRepository(t)
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		redisRepo := mockRedisRepo.NewRepository(t)

		txRepo.On("BeginTx", ctx).Return(nil, nil)
		campaignRepo.On("InsertCampaignTx", ctx, mock.Anything, mock.MatchedBy(func(c *model.Campaign) bool {
			return c.Title == req.Title && c.Status == constant.CampaignStatusPending
		})).Return(uint64(7), nil)
		campaignRepo.On("InsertRulesTx", ctx, mock.Anything, uint64(7), mock.Anything).Return(nil)
		txRepo.On("CommitTx", mock.Anything).Return(nil)
		redisRepo.On("InvalidateActiveCampaigns", ctx).Return(nil)

		app := promotion.NewPromotionApp(testConfig(), txRepo, campaignRepo, redisRepo)
		got, err := app.CreateCampaign(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint64(7), got.ID)
		assert.Len(t, got.Rules, 1)
		assert.Equal(t, uint64(7), got.Rules[0].CampaignID)
	})

	t.Run("unknown campaign type", func(t *testing.T) {
		bad := *req
		bad.Type = 99

		app := promotion.NewPromotionApp(testConfig(), nil, nil, nil)
		got, err := app.CreateCampaign(ctx, &bad)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrInvalidRequest), err)
	})

	t.Run("malformed rule codes", func(t *testing.T) {
		bad := *req
		bad.Rules = []model.CampaignRuleRequest{
			{ConditionType: 99, DiscountType: int(constant.DiscountAmountOff)},
		}

		app := promotion.NewPromotionApp(testConfig(), nil, nil, nil)
		got, err := app.CreateCampaign(ctx, &bad)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrMalformedRule), err)
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		txRepo := mockTxRepo.NewTxRepository(t)
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)

		txRepo.On("BeginTx", ctx).Return(nil, nil)
		campaignRepo.On("InsertCampaignTx", ctx, mock.Anything, mock.Anything).Return(uint64(0), assert.AnError)
		txRepo.On("RollbackTx", mock.Anything).Return(nil)

		app := promotion.NewPromotionApp(testConfig(), txRepo, campaignRepo, nil)
		got, err := app.CreateCampaign(ctx, req)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrInternal), err)
	})
}

func TestPromotionApp_UpdateCampaign(t *testing.T) {
	ctx := context.Background()
	id := uint64(4)

	t.Run("replaces rule set when rules are given", func(t *testing.T) {
		txRepo := mockTxRepo.NewTxRepository(t)
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		redisRepo := mockRedisRepo.NewRepository(t)

		req := &model.CampaignUpdateRequest{
			Title: "renamed",
			Rules: []model.CampaignRuleRequest{
				{ConditionType: int(constant.ConditionMinQuantity), ConditionValue: 2, DiscountType: int(constant.DiscountPercentOff), DiscountValue: 9},
			},
		}
		updated := &model.Campaign{ID: id, Title: "renamed"}

		txRepo.On("BeginTx", ctx).Return(nil, nil)
		campaignRepo.On("UpdateCampaignTx", ctx, mock.Anything, id, req).Return(nil)
		campaignRepo.On("DeleteRulesTx", ctx, mock.Anything, id).Return(nil)
		campaignRepo.On("InsertRulesTx", ctx, mock.Anything, id, mock.Anything).Return(nil)
		txRepo.On("CommitTx", mock.Anything).Return(nil)
		redisRepo.On("InvalidateActiveCampaigns", ctx).Return(nil)
		campaignRepo.On("GetByID", ctx, id).Return(updated, nil)

		app := promotion.NewPromotionApp(testConfig(), txRepo, campaignRepo, redisRepo)
		got, err := app.UpdateCampaign(ctx, id, req)

		assert.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("not found", func(t *testing.T) {
		txRepo := mockTxRepo.NewTxRepository(t)
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)

		req := &model.CampaignUpdateRequest{Title: "renamed"}
		txRepo.On("BeginTx", ctx).Return(nil, nil)
		campaignRepo.On("UpdateCampaignTx", ctx, mock.Anything, id, req).Return(sql.ErrNoRows)
		txRepo.On("RollbackTx", mock.Anything).Return(nil)

		app := promotion.NewPromotionApp(testConfig(), txRepo, campaignRepo, nil)
		got, err := app.UpdateCampaign(ctx, id, req)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})

	t.Run("unknown status code", func(t *testing.T) {
		status := 9
		app := promotion.NewPromotionApp(testConfig(), nil, nil, nil)
		got, err := app.UpdateCampaign(ctx, id, &model.CampaignUpdateRequest{Status: &status})

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrInvalidRequest), err)
	})
}

func TestPromotionApp_DeleteCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		redisRepo := mockRedisRepo.NewRepository(t)

		campaignRepo.On("Delete", ctx, uint64(2)).Return(nil)
		redisRepo.On("InvalidateActiveCampaigns", ctx).Return(nil)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, redisRepo)
		assert.NoError(t, app.DeleteCampaign(ctx, 2))
	})

	t.Run("not found", func(t *testing.T) {
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		campaignRepo.On("Delete", ctx, uint64(2)).Return(sql.ErrNoRows)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, nil)
		err := app.DeleteCampaign(ctx, 2)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})
}

func TestPromotionApp_UpdateCampaignStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		redisRepo := mockRedisRepo.NewRepository(t)

		campaignRepo.On("UpdateStatus", ctx, uint64(6), constant.CampaignStatusActive).Return(nil)
		redisRepo.On("InvalidateActiveCampaigns", ctx).Return(nil)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, redisRepo)
		assert.NoError(t, app.UpdateCampaignStatus(ctx, 6, int(constant.CampaignStatusActive)))
	})

	t.Run("unknown status", func(t *testing.T) {
		app := promotion.NewPromotionApp(testConfig(), nil, nil, nil)
		err := app.UpdateCampaignStatus(ctx, 6, 42)
		assert.Equal(t, errors.SetCustomError(constant.ErrInvalidRequest), err)
	})

	t.Run("not found", func(t *testing.T) {
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		campaignRepo.On("UpdateStatus", ctx, uint64(6), constant.CampaignStatusEnded).Return(sql.ErrNoRows)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, nil)
		err := app.UpdateCampaignStatus(ctx, 6, int(constant.CampaignStatusEnded))
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})
}

func TestPromotionApp_ListCampaigns(t *testing.T) {
	ctx := context.Background()
	campaignRepo := mockCampaignRepo.NewCampaignRepository(t)

	campaignRepo.On("List", ctx, mock.MatchedBy(func(f *model.CampaignFilter) bool {
		return f.Page == 1 && f.Limit == 10
	})).Return([]model.Campaign{{ID: 1}}, int64(1), nil)

	app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, nil)
	got, err := app.ListCampaigns(ctx, &model.CampaignFilter{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalCount)
	assert.Len(t, got.Items, 1)
}

func TestPromotionApp_GetCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		want := &model.Campaign{ID: 8, Title: "clearance"}
		campaignRepo.On("GetByID", ctx, uint64(8)).Return(want, nil)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, nil)
		got, err := app.GetCampaign(ctx, 8)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		campaignRepo := mockCampaignRepo.NewCampaignRepository(t)
		campaignRepo.On("GetByID", ctx, uint64(8)).Return(nil, nil)

		app := promotion.NewPromotionApp(testConfig(), nil, campaignRepo, nil)
		got, err := app.GetCampaign(ctx, 8)

		assert.Nil(t, got)
		assert.Equal(t, errors.SetCustomError(constant.ErrNotFound), err)
	})
}
