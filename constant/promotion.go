package constant

// Campaign and rule codes follow the values stored in the database. They are
// closed sets: anything outside them is treated as "does not apply" by the
// discount engine, never as a default behavior.

type CampaignType int

const (
	CampaignTypeAmountOff    CampaignType = 1
	CampaignTypePercentOff   CampaignType = 2
	CampaignTypeGift         CampaignType = 3
	CampaignTypeTimedPercent CampaignType = 4
)

func (t CampaignType) Known() bool {
	return t >= CampaignTypeAmountOff && t <= CampaignTypeTimedPercent
}

type CampaignStatus int

const (
	CampaignStatusPending CampaignStatus = 0
	CampaignStatusActive  CampaignStatus = 1
	CampaignStatusEnded   CampaignStatus = 2
)

func (s CampaignStatus) Known() bool {
	return s >= CampaignStatusPending && s <= CampaignStatusEnded
}

type ConditionType int

const (
	ConditionMinAmount   ConditionType = 1
	ConditionMinQuantity ConditionType = 2
)

func (c ConditionType) Known() bool {
	return c == ConditionMinAmount || c == ConditionMinQuantity
}

type DiscountType int

const (
	DiscountAmountOff  DiscountType = 1
	DiscountPercentOff DiscountType = 2
	DiscountGift       DiscountType = 3
)

func (d DiscountType) Known() bool {
	return d >= DiscountAmountOff && d <= DiscountGift
}
