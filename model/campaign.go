package model

import (
	"time"

	"github.com/codefanw/mall-backend/constant"
)

// Campaign is a time-boxed promotional offer. Type is informational metadata;
// the discount behavior is driven per rule by CampaignRule.DiscountType.
type Campaign struct {
	ID          uint64                  `db:"promotion_id" json:"promotion_id"`
	Title       string                  `db:"title" json:"title"`
	Description string                  `db:"description" json:"description,omitempty"`
	Type        constant.CampaignType   `db:"type" json:"type"`
	Status      constant.CampaignStatus `db:"status" json:"status"`
	StartTime   time.Time               `db:"start_time" json:"start_time"`
	EndTime     time.Time               `db:"end_time" json:"end_time"`
	CreatedBy   uint64                  `db:"created_by" json:"created_by"`
	CreatedAt   time.Time               `db:"created_at" json:"created_at"`
	Rules       []CampaignRule          `json:"rules"`
}

// CampaignRule is one stacking condition->discount pair. Rules belong to
// exactly one campaign and are evaluated in insertion order.
type CampaignRule struct {
	ID             uint64                 `db:"rule_id" json:"rule_id"`
	CampaignID     uint64                 `db:"promotion_id" json:"promotion_id"`
	ProductID      *uint64                `db:"product_id" json:"product_id,omitempty"`
	ConditionType  constant.ConditionType `db:"condition_type" json:"condition_type"`
	ConditionValue float64                `db:"condition_value" json:"condition_value"`
	DiscountType   constant.DiscountType  `db:"discount_type" json:"discount_type"`
	DiscountValue  float64                `db:"discount_value" json:"discount_value"`
	GiftProductID  *uint64                `db:"gift_product_id" json:"gift_product_id,omitempty"`
}

type CampaignRuleRequest struct {
	ProductID      *uint64 `json:"product_id"`
	ConditionType  int     `json:"condition_type" validate:"required"`
	ConditionValue float64 `json:"condition_value" validate:"gte=0"`
	DiscountType   int     `json:"discount_type" validate:"required"`
	DiscountValue  float64 `json:"discount_value" validate:"gte=0"`
	GiftProductID  *uint64 `json:"gift_product_id"`
}

type CampaignCreateRequest struct {
	Title       string                `json:"title" validate:"required"`
	Description string                `json:"description"`
	Type        int                   `json:"type" validate:"required"`
	StartTime   time.Time             `json:"start_time" validate:"required"`
	EndTime     time.Time             `json:"end_time" validate:"required"`
	CreatedBy   uint64                `json:"created_by" validate:"required"`
	Rules       []CampaignRuleRequest `json:"rules" validate:"required,dive,required"`
}

// CampaignUpdateRequest replaces the campaign fields it carries. A non-nil
// Rules slice replaces the full rule set.
type CampaignUpdateRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Type        *int                  `json:"type"`
	StartTime   *time.Time            `json:"start_time"`
	EndTime     *time.Time            `json:"end_time"`
	Status      *int                  `json:"status"`
	Rules       []CampaignRuleRequest `json:"rules"`
}

type CampaignFilter struct {
	Status *int
	Type   *int
	Page   int
	Limit  int
}

type CampaignListResponse struct {
	Items      []Campaign `json:"items"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
