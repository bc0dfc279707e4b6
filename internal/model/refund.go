package model

// RefundRequest is a refund awaiting review.
type RefundRequest struct {
	ID         string `json:"id"`
	Order      string `json:"order,omitempty"`
	OrderID    string `json:"orderId,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status,omitempty"`
	ResolvedAt string `json:"resolvedAt,omitempty"`
}

// DisplayOrder resolves the order reference across feed shapes.
func (r RefundRequest) DisplayOrder() string {
	if r.Order != "" {
		return r.Order
	}
	return r.OrderID
}

// RefundOverride is a locally persisted review decision.
type RefundOverride struct {
	Status     string `json:"status,omitempty"`
	ResolvedAt string `json:"resolvedAt,omitempty"`
}

// DiscountOverride is a locally persisted active-flag flip for a code.
type DiscountOverride struct {
	Active *bool `json:"active,omitempty"`
}
