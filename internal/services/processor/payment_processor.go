package processor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/diogomassis/payment-flow/internal/models"
)

type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, payment *models.PendingPayment) (*models.CompletedPayment, error)
}

type FeeProcessor struct {
	rules    map[models.PaymentMethod]FeeRule
	validate *validator.Validate
	now      func() time.Time
	logger   zerolog.Logger
}

func NewFeeProcessor(rules map[models.PaymentMethod]FeeRule, logger zerolog.Logger) *FeeProcessor {
	if rules == nil {
		rules = DefaultRules()
	}
	return &FeeProcessor{
		rules:    rules,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		logger:   logger.With().Str("component", "processor").Logger(),
	}
}

func (p *FeeProcessor) ProcessPayment(ctx context.Context, payment *models.PendingPayment) (*models.CompletedPayment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := p.check(payment); err != nil {
		p.logger.Warn().Err(err).Str("correlationId", payment.CorrelationID).Msg("payment rejected")
		return nil, err
	}

	rule, ok := p.rules[payment.Method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, payment.Method.Code())
	}
	total := rule.Apply(payment.Amount)
	if math.IsInf(total, 0) || math.IsNaN(total) {
		err := fmt.Errorf("%w: total overflows for %v", ErrInvalidAmount, payment.Amount)
		p.logger.Warn().Err(err).Str("correlationId", payment.CorrelationID).Msg("payment rejected")
		return nil, err
	}
	completed := models.NewCompletedPayment(*payment, rule.Percent(), total, p.now())

	p.logger.Info().
		Str("correlationId", completed.CorrelationID).
		Str("method", completed.Method.Code()).
		Float64("amount", completed.Amount).
		Float64("total", completed.Total).
		Msg("payment processed")
	return completed, nil
}

func (p *FeeProcessor) check(payment *models.PendingPayment) error {
	if math.IsInf(payment.Amount, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidAmount, payment.Amount)
	}
	err := p.validate.Struct(payment)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate payment: %w", err)
	}
	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "Amount":
			return fmt.Errorf("%w: got %v", ErrInvalidAmount, payment.Amount)
		case "Method":
			return fmt.Errorf("%w: %d", ErrUnknownMethod, int(payment.Method))
		}
	}
	return fmt.Errorf("invalid payment: %w", err)
}
