package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/diogomassis/payment-flow/internal/models"
	"github.com/diogomassis/payment-flow/internal/services/processor"
)

type AmountAcquirer interface {
	AcquireAmount(ctx context.Context, override string) (float64, error)
}

type MethodSelector interface {
	SelectMethod(ctx context.Context, override string) (models.PaymentMethod, error)
}

type Reporter interface {
	ReportPayment(payment *models.CompletedPayment) error
	ReportRejection(err error) error
}

// Overrides carries the raw PAYMENT_AMOUNT and PAYMENT_METHOD values. Empty
// strings mean the value is not overridden.
type Overrides struct {
	Amount string
	Method string
}

// PaymentFlow runs one payment end to end: amount, method, fee, report.
type PaymentFlow struct {
	amounts   AmountAcquirer
	methods   MethodSelector
	processor processor.PaymentProcessor
	reporter  Reporter
	overrides Overrides
	logger    zerolog.Logger
}

func (f *PaymentFlow) Execute(ctx context.Context) (*models.CompletedPayment, error) {
	amount, err := f.amounts.AcquireAmount(ctx, f.overrides.Amount)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire amount: %w", err)
	}
	method, err := f.methods.SelectMethod(ctx, f.overrides.Method)
	if err != nil {
		return nil, fmt.Errorf("failed to select payment method: %w", err)
	}

	pending := models.NewPendingPayment(amount, method)
	f.logger.Debug().
		Str("correlationId", pending.CorrelationID).
		Str("method", method.Code()).
		Float64("amount", amount).
		Msg("executing payment")

	completed, err := f.processor.ProcessPayment(ctx, pending)
	if err != nil {
		if errors.Is(err, processor.ErrInvalidAmount) {
			if rerr := f.reporter.ReportRejection(err); rerr != nil {
				return nil, rerr
			}
		}
		return nil, err
	}
	if err := f.reporter.ReportPayment(completed); err != nil {
		return nil, err
	}
	return completed, nil
}
