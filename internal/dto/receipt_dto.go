package dto

import (
	"time"

	"github.com/diogomassis/payment-flow/internal/models"
)

type ReceiptResponse struct {
	CorrelationID     string    `json:"correlationId"`
	Method            string    `json:"method"`
	Amount            float64   `json:"amount"`
	AdjustmentPercent int       `json:"adjustmentPercent"`
	Total             float64   `json:"total"`
	ProcessedAt       time.Time `json:"processedAt"`
}

func NewReceiptResponse(payment *models.CompletedPayment) ReceiptResponse {
	return ReceiptResponse{
		CorrelationID:     payment.CorrelationID,
		Method:            payment.Method.Code(),
		Amount:            payment.Amount,
		AdjustmentPercent: payment.AdjustmentPercent,
		Total:             payment.Total,
		ProcessedAt:       payment.ProcessedAt,
	}
}
