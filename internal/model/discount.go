package model

const (
	DiscountPercent = "percent"
	DiscountAmount  = "amount"
)

// Discount is a promotion code. Codes are the unique key.
type Discount struct {
	Code       string             `json:"code"`
	Type       string             `json:"type"`
	Value      float64            `json:"value"`
	Active     bool               `json:"active"`
	AppliesTo  DiscountScope      `json:"appliesTo,omitempty"`
	Conditions DiscountConditions `json:"conditions,omitempty"`
	Applies    []string           `json:"applies,omitempty"`
	Start      string             `json:"start,omitempty"`
	End        string             `json:"end,omitempty"`
	Limit      int                `json:"limit,omitempty"`
	Note       string             `json:"note,omitempty"`
}

// DiscountScope restricts which products a code can apply to.
type DiscountScope struct {
	ProductIDs []int64  `json:"productIds,omitempty"`
	Brands     []string `json:"brands,omitempty"`
	SaleOnly   bool     `json:"saleOnly,omitempty"`
}

// DiscountConditions restricts which customers a code applies to.
type DiscountConditions struct {
	Segment          string  `json:"segment,omitempty"`
	MinLifetimeSpend float64 `json:"minLifetimeSpend,omitempty"`
}

// DisplayType infers percent-vs-amount for feeds that omit the type:
// fractional values are treated as percentages.
func (d Discount) DisplayType() string {
	if d.Type != "" {
		return d.Type
	}
	if d.Value > 0 && d.Value < 1 {
		return DiscountPercent
	}
	return DiscountAmount
}
