package promotion

import (
	"time"

	"github.com/codefanw/mall-backend/constant"
	"github.com/codefanw/mall-backend/model"
)

// The discount engine is a pure computation over the cart and campaign
// snapshots it is handed. It holds no state and is safe to call from any
// number of requests at once.

// Subtotal sums unit price * quantity across all cart lines.
func Subtotal(cart []model.CartLine) float64 {
	var sum float64
	for _, line := range cart {
		sum += line.UnitPrice * float64(line.Quantity)
	}
	return sum
}

func totalQuantity(cart []model.CartLine) int {
	var sum int
	for _, line := range cart {
		sum += line.Quantity
	}
	return sum
}

// RuleResult is the outcome of evaluating one rule against a cart.
type RuleResult struct {
	// Contribution is the monetary discount this rule adds. Zero when the
	// condition is unmet, the rule is a gift rule, or the rule is malformed.
	Contribution float64
	// GiftProductID is set when a met gift rule names a product. Gift
	// fulfillment is not implemented; nothing attaches this to the order yet.
	GiftProductID *uint64
	// Malformed marks a rule whose condition or discount code is outside the
	// known sets. Such rules never apply.
	Malformed bool
}

// EvaluateRule tests one rule against the cart and returns its discount
// contribution. Condition metrics are cart-wide: a product-scoped rule still
// counts every line toward its threshold.
func EvaluateRule(rule *model.CampaignRule, cart []model.CartLine) RuleResult {
	if !rule.ConditionType.Known() || !rule.DiscountType.Known() {
		return RuleResult{Malformed: true}
	}

	var metric float64
	switch rule.ConditionType {
	case constant.ConditionMinAmount:
		metric = Subtotal(cart)
	case constant.ConditionMinQuantity:
		metric = float64(totalQuantity(cart))
	}

	if metric < rule.ConditionValue {
		return RuleResult{}
	}

	switch rule.DiscountType {
	case constant.DiscountAmountOff:
		return RuleResult{Contribution: rule.DiscountValue}
	case constant.DiscountPercentOff:
		// discount_value is stored in tenths: value 8 multiplies the
		// subtotal by 0.8.
		return RuleResult{Contribution: Subtotal(cart) * (rule.DiscountValue / 10)}
	case constant.DiscountGift:
		return RuleResult{GiftProductID: rule.GiftProductID}
	}
	return RuleResult{}
}

// CampaignDiscount aggregates every rule of one campaign.
type CampaignDiscount struct {
	Discount float64
	// MalformedRuleIDs lists rules skipped because of unknown codes. They
	// contribute nothing; callers may surface a warning.
	MalformedRuleIDs []uint64
}

// Aggregate sums the contributions of the campaign's rules in stored order and
// clamps the result to [0, subtotal]. Rules stack additively; there is no
// early exit after the first match.
func Aggregate(campaign *model.Campaign, cart []model.CartLine) CampaignDiscount {
	var result CampaignDiscount
	for i := range campaign.Rules {
		rule := &campaign.Rules[i]
		out := EvaluateRule(rule, cart)
		if out.Malformed {
			result.MalformedRuleIDs = append(result.MalformedRuleIDs, rule.ID)
			continue
		}
		result.Discount += out.Contribution
	}

	subtotal := Subtotal(cart)
	if result.Discount > subtotal {
		result.Discount = subtotal
	}
	if result.Discount < 0 {
		result.Discount = 0
	}
	return result
}

// PreviewDiscounts maps each candidate campaign to the discount it would
// yield, so a caller can compare offers before picking one.
func PreviewDiscounts(campaigns []model.Campaign, cart []model.CartLine) map[uint64]float64 {
	discounts := make(map[uint64]float64, len(campaigns))
	for i := range campaigns {
		discounts[campaigns[i].ID] = Aggregate(&campaigns[i], cart).Discount
	}
	return discounts
}

// FilterActive keeps campaigns whose status is active and whose window covers
// now. Used when the caller holds an unfiltered campaign set.
func FilterActive(campaigns []model.Campaign, now time.Time) []model.Campaign {
	active := make([]model.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c.Status != constant.CampaignStatusActive {
			continue
		}
		if c.StartTime.After(now) || c.EndTime.Before(now) {
			continue
		}
		active = append(active, c)
	}
	return active
}
