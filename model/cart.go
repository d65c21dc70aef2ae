package model

// CartLine is one distinct product entry in a cart. Carts live only for the
// duration of a checkout request; they are never persisted as such.
type CartLine struct {
	ProductID   uint64  `json:"product_id" validate:"required"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
}

type CheckoutRequest struct {
	UserID     uint64
	Items      []CartLine `json:"items" validate:"required,dive,required"`
	CampaignID *uint64    `json:"campaign_id,omitempty"`
}

type CheckoutPreviewRequest struct {
	Items []CartLine `json:"items" validate:"required,dive,required"`
}

// CheckoutSummary is the priced result of a cart before the order is written.
type CheckoutSummary struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	Shipping    float64 `json:"shipping"`
	Total       float64 `json:"total"`
	ProductList string  `json:"product_list"`
}

type CheckoutResponse struct {
	OrderID uint64          `json:"order_id"`
	Summary CheckoutSummary `json:"summary"`
}

// CheckoutPreviewResponse maps every eligible campaign to the discount it
// would yield on the given cart, so a client can offer "choose your best offer".
type CheckoutPreviewResponse struct {
	Subtotal  float64            `json:"subtotal"`
	Discounts map[uint64]float64 `json:"discounts"`
}
