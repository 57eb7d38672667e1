package models

import "github.com/google/uuid"

type PendingPayment struct {
	CorrelationID string        `validate:"required,uuid4"`
	Amount        float64       `validate:"gt=0"`
	Method        PaymentMethod `validate:"min=1,max=3"`
}

func NewPendingPayment(amount float64, method PaymentMethod) *PendingPayment {
	return &PendingPayment{
		CorrelationID: uuid.NewString(),
		Amount:        amount,
		Method:        method,
	}
}
