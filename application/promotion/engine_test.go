package promotion_test

import (
	"math"
	"testing"
	"time"

	"github.com/codefanw/mall-backend/application/promotion"
	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func cartOf(lines ...model.CartLine) []model.CartLine {
	return lines
}

func TestSubtotal(t *testing.T) {
	cart := cartOf(
		model.CartLine{ProductID: 7, UnitPrice: 25.5, Quantity: 2},
		model.CartLine{ProductID: 9, UnitPrice: 49, Quantity: 1},
	)
	if got := promotion.Subtotal(cart); !almostEqual(got, 100) {
		t.Errorf("Subtotal() = %v, want 100", got)
	}
	if got := promotion.Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %v, want 0", got)
	}
}

func TestEvaluateRule(t *testing.T) {
	giftID := uint64(42)

	tests := []struct {
		name     string
		rule     model.CampaignRule
		cart     []model.CartLine
		want     float64
		wantGift *uint64
		wantBad  bool
	}{
		{
			name: "min amount met at exact boundary",
			rule: model.CampaignRule{
				ConditionType:  constant.ConditionMinAmount,
				ConditionValue: 100,
				DiscountType:   constant.DiscountAmountOff,
				DiscountValue:  10,
			},
			cart: cartOf(model.CartLine{ProductID: 1, UnitPrice: 50, Quantity: 2}),
			want: 10,
		},
		{
			name: "min amount unmet",
			rule: model.CampaignRule{
				ConditionType:  constant.ConditionMinAmount,
				ConditionValue: 100,
				DiscountType:   constant.DiscountAmountOff,
				DiscountValue:  10,
			},
			cart: cartOf(model.CartLine{ProductID: 1, UnitPrice: 40, Quantity: 1}),
			want: 0,
		},
		{
			name: "min quantity met",
			rule: model.CampaignRule{
				ConditionType:  constant.ConditionMinQuantity,
				ConditionValue: 3,
				DiscountType:   constant.DiscountAmountOff,
				DiscountValue:  5,
			},
			cart: cartOf(
				model.CartLine{ProductID: 1, UnitPrice: 10, Quantity: 2},
				model.CartLine{ProductID: 2, UnitPrice: 10, Quantity: 1},
			),
			want: 5,
		},
		{
			name: "percent off uses tenths of value",
			rule: model.CampaignRule{
				ConditionType:  constant.ConditionMinAmount,
				ConditionValue: 0,
				DiscountType:   constant.DiscountPercentOff,
				DiscountValue:  8,
			},
			cart: cartOf(model.CartLine{ProductID: 1, UnitPrice: 100, Quantity: 2}),
			want: 160,
		},
		{
			name: "gift rule contributes zero but exposes gift product",
			rule: model.CampaignRule{
				ConditionType:  constant.ConditionMinQuantity,
				ConditionValue: 1,
				DiscountType:   constant.DiscountGift,
				DiscountValue:  0,
				GiftProductID:  &giftID,
			},
			cart:     cartOf(model.CartLine{ProductID: 1, UnitPrice: 10, Quantity: 1}),
			want:     0,
			wantGift: &giftID,
		},
		{
			name: "unknown condition type fails closed",
			rule: model.CampaignRule{
				ConditionType:  constant.ConditionType(99),
				ConditionValue: 0,
				DiscountType:   constant.DiscountAmountOff,
				DiscountValue:  10,
			},
			cart:    cartOf(model.CartLine{ProductID: 1, UnitPrice: 100, Quantity: 1}),
			want:    0,
			wantBad: true,
		},
		{
			name: "unknown discount type fails closed",
			rule: model.CampaignRule{
				ConditionType:  constant.ConditionMinAmount,
				ConditionValue: 0,
				DiscountType:   constant.DiscountType(7),
				DiscountValue:  10,
			},
			cart:    cartOf(model.CartLine{ProductID: 1, UnitPrice: 100, Quantity: 1}),
			want:    0,
			wantBad: true,
		},
		{
			name: "product scoped rule still counts the whole cart",
			rule: model.CampaignRule{
				ProductID:      &giftID,
				ConditionType:  constant.ConditionMinAmount,
				ConditionValue: 100,
				DiscountType:   constant.DiscountAmountOff,
				DiscountValue:  20,
			},
			cart: cartOf(
				model.CartLine{ProductID: 1, UnitPrice: 60, Quantity: 1},
				model.CartLine{ProductID: 2, UnitPrice: 40, Quantity: 1},
			),
			want: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := promotion.EvaluateRule(&tt.rule, tt.cart)
			if !almostEqual(got.Contribution, tt.want) {
				t.Errorf("EvaluateRule() contribution = %v, want %v", got.Contribution, tt.want)
			}
			if got.Malformed != tt.wantBad {
				t.Errorf("EvaluateRule() malformed = %v, want %v", got.Malformed, tt.wantBad)
			}
			if (got.GiftProductID == nil) != (tt.wantGift == nil) {
				t.Errorf("EvaluateRule() gift = %v, want %v", got.GiftProductID, tt.wantGift)
			}
			if got.GiftProductID != nil && tt.wantGift != nil && *got.GiftProductID != *tt.wantGift {
				t.Errorf("EvaluateRule() gift = %v, want %v", *got.GiftProductID, *tt.wantGift)
			}
		})
	}
}

func TestAggregate_StackingRules(t *testing.T) {
	campaign := model.Campaign{
		ID: 1,
		Rules: []model.CampaignRule{
			{ID: 1, ConditionType: constant.ConditionMinAmount, ConditionValue: 100, DiscountType: constant.DiscountAmountOff, DiscountValue: 10},
			{ID: 2, ConditionType: constant.ConditionMinQuantity, ConditionValue: 2, DiscountType: constant.DiscountAmountOff, DiscountValue: 15},
		},
	}
	cart := cartOf(model.CartLine{ProductID: 1, UnitPrice: 100, Quantity: 2})

	got := promotion.Aggregate(&campaign, cart)
	if !almostEqual(got.Discount, 25) {
		t.Errorf("Aggregate() discount = %v, want 25", got.Discount)
	}
	if len(got.MalformedRuleIDs) != 0 {
		t.Errorf("Aggregate() malformed rules = %v, want none", got.MalformedRuleIDs)
	}
}

func TestAggregate_ClampToSubtotal(t *testing.T) {
	campaign := model.Campaign{
		ID: 1,
		Rules: []model.CampaignRule{
			{ID: 1, ConditionType: constant.ConditionMinAmount, ConditionValue: 0, DiscountType: constant.DiscountAmountOff, DiscountValue: 80},
		},
	}
	cart := cartOf(model.CartLine{ProductID: 1, UnitPrice: 50, Quantity: 1})

	got := promotion.Aggregate(&campaign, cart)
	if !almostEqual(got.Discount, 50) {
		t.Errorf("Aggregate() discount = %v, want clamp to 50", got.Discount)
	}
}

func TestAggregate_UnmetConditionYieldsZero(t *testing.T) {
	campaign := model.Campaign{
		ID: 1,
		Rules: []model.CampaignRule{
			{ID: 1, ConditionType: constant.ConditionMinAmount, ConditionValue: 100, DiscountType: constant.DiscountAmountOff, DiscountValue: 10},
		},
	}
	cart := cartOf(model.CartLine{ProductID: 1, UnitPrice: 40, Quantity: 1})

	got := promotion.Aggregate(&campaign, cart)
	if got.Discount != 0 {
		t.Errorf("Aggregate() discount = %v, want 0", got.Discount)
	}
}

func TestAggregate_SkipsMalformedRules(t *testing.T) {
	campaign := model.Campaign{
		ID: 1,
		Rules: []model.CampaignRule{
			{ID: 7, ConditionType: constant.ConditionType(99), DiscountType: constant.DiscountAmountOff, DiscountValue: 10},
			{ID: 8, ConditionType: constant.ConditionMinAmount, ConditionValue: 0, DiscountType: constant.DiscountAmountOff, DiscountValue: 5},
		},
	}
	cart := cartOf(model.CartLine{ProductID: 1, UnitPrice: 50, Quantity: 1})

	got := promotion.Aggregate(&campaign, cart)
	if !almostEqual(got.Discount, 5) {
		t.Errorf("Aggregate() discount = %v, want 5", got.Discount)
	}
	if len(got.MalformedRuleIDs) != 1 || got.MalformedRuleIDs[0] != 7 {
		t.Errorf("Aggregate() malformed rules = %v, want [7]", got.MalformedRuleIDs)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	campaign := model.Campaign{
		ID: 1,
		Rules: []model.CampaignRule{
			{ID: 1, ConditionType: constant.ConditionMinAmount, ConditionValue: 0, DiscountType: constant.DiscountPercentOff, DiscountValue: 2},
		},
	}
	cart := cartOf(model.CartLine{ProductID: 1, UnitPrice: 30, Quantity: 3})

	first := promotion.Aggregate(&campaign, cart)
	second := promotion.Aggregate(&campaign, cart)
	if first.Discount != second.Discount {
		t.Errorf("Aggregate() not idempotent: %v vs %v", first.Discount, second.Discount)
	}
}

func TestPreviewDiscounts(t *testing.T) {
	campaigns := []model.Campaign{
		{
			ID: 1,
			Rules: []model.CampaignRule{
				{ConditionType: constant.ConditionMinAmount, ConditionValue: 0, DiscountType: constant.DiscountAmountOff, DiscountValue: 10},
			},
		},
		{
			ID: 2,
			Rules: []model.CampaignRule{
				{ConditionType: constant.ConditionMinAmount, ConditionValue: 500, DiscountType: constant.DiscountAmountOff, DiscountValue: 50},
			},
		},
	}
	cart := cartOf(model.CartLine{ProductID: 1, UnitPrice: 100, Quantity: 1})

	got := promotion.PreviewDiscounts(campaigns, cart)
	if len(got) != 2 {
		t.Fatalf("PreviewDiscounts() returned %d entries, want 2", len(got))
	}
	if !almostEqual(got[1], 10) {
		t.Errorf("PreviewDiscounts()[1] = %v, want 10", got[1])
	}
	if got[2] != 0 {
		t.Errorf("PreviewDiscounts()[2] = %v, want 0", got[2])
	}
}

func TestFilterActive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	campaigns := []model.Campaign{
		{ID: 1, Status: constant.CampaignStatusActive, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: 2, Status: constant.CampaignStatusPending, StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)},
		{ID: 3, Status: constant.CampaignStatusActive, StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour)},
		{ID: 4, Status: constant.CampaignStatusActive, StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour)},
		{ID: 5, Status: constant.CampaignStatusActive, StartTime: now, EndTime: now},
	}

	got := promotion.FilterActive(campaigns, now)
	if len(got) != 2 {
		t.Fatalf("FilterActive() returned %d campaigns, want 2", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 5 {
		t.Errorf("FilterActive() kept ids %d,%d, want 1,5", got[0].ID, got[1].ID)
	}
}
