package models

import (
	"fmt"
	"time"
)

type CompletedPayment struct {
	CorrelationID string
	Amount        float64
	Method        PaymentMethod
	// AdjustmentPercent is positive for a commission and negative for a discount.
	AdjustmentPercent int
	Total             float64
	ProcessedAt       time.Time
}

func NewCompletedPayment(pending PendingPayment, adjustmentPercent int, total float64, processedAt time.Time) *CompletedPayment {
	return &CompletedPayment{
		CorrelationID:     pending.CorrelationID,
		Amount:            pending.Amount,
		Method:            pending.Method,
		AdjustmentPercent: adjustmentPercent,
		Total:             total,
		ProcessedAt:       processedAt.UTC(),
	}
}

func (c *CompletedPayment) IsDiscount() bool {
	return c.AdjustmentPercent < 0
}

// AdjustmentLabel renders the fee rule as shown to the payer, e.g. "2% commission".
func (c *CompletedPayment) AdjustmentLabel() string {
	if c.IsDiscount() {
		return fmt.Sprintf("%d%% discount", -c.AdjustmentPercent)
	}
	return fmt.Sprintf("%d%% commission", c.AdjustmentPercent)
}
