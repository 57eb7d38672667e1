package processor

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogomassis/payment-flow/internal/models"
)

func newTestProcessor() *FeeProcessor {
	p := NewFeeProcessor(nil, zerolog.Nop())
	p.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return p
}

func TestFeeRuleApply(t *testing.T) {
	tests := []struct {
		name   string
		method models.PaymentMethod
		amount float64
		want   string
	}{
		{"credit card on round amount", models.MethodCreditCard, 100, "102.00"},
		{"paypal on round amount", models.MethodPayPal, 100, "103.00"},
		{"crypto on round amount", models.MethodCrypto, 100, "95.00"},
		{"credit card on cents", models.MethodCreditCard, 12.34, "12.59"},
		{"paypal on cents", models.MethodPayPal, 12.34, "12.71"},
		{"crypto on cents", models.MethodCrypto, 12.34, "11.72"},
		{"crypto on half", models.MethodCrypto, 50, "47.50"},
		{"paypal on half cent below", models.MethodPayPal, 1.5, "1.54"},
		{"crypto on half cent below", models.MethodCrypto, 0.5, "0.47"},
		{"credit card on small amount", models.MethodCreditCard, 7, "7.14"},
	}

	rules := DefaultRules()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf("%.2f", rules[tt.method].Apply(tt.amount)))
		})
	}
}

func TestFeeRulePercent(t *testing.T) {
	rules := DefaultRules()

	assert.Equal(t, 2, rules[models.MethodCreditCard].Percent())
	assert.Equal(t, 3, rules[models.MethodPayPal].Percent())
	assert.Equal(t, -5, rules[models.MethodCrypto].Percent())
}

func TestProcessPayment(t *testing.T) {
	p := newTestProcessor()
	pending := models.NewPendingPayment(100, models.MethodPayPal)

	completed, err := p.ProcessPayment(context.Background(), pending)
	require.NoError(t, err)

	assert.Equal(t, pending.CorrelationID, completed.CorrelationID)
	assert.Equal(t, models.MethodPayPal, completed.Method)
	assert.Equal(t, 100.0, completed.Amount)
	assert.InDelta(t, 103.0, completed.Total, 1e-9)
	assert.Equal(t, 3, completed.AdjustmentPercent)
	assert.Equal(t, "3% commission", completed.AdjustmentLabel())
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), completed.ProcessedAt)
}

func TestProcessPaymentDiscountLabel(t *testing.T) {
	completed, err := newTestProcessor().ProcessPayment(context.Background(), models.NewPendingPayment(10, models.MethodCrypto))
	require.NoError(t, err)

	assert.True(t, completed.IsDiscount())
	assert.Equal(t, "5% discount", completed.AdjustmentLabel())
	assert.InDelta(t, 9.5, completed.Total, 1e-9)
}

func TestProcessPaymentRejectsInvalidAmounts(t *testing.T) {
	for _, amount := range []float64{0, -1, -0.01, math.NaN(), math.Inf(1)} {
		_, err := newTestProcessor().ProcessPayment(context.Background(), models.NewPendingPayment(amount, models.MethodCreditCard))
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %v", amount)
	}
}

func TestProcessPaymentRejectsOverflowingTotal(t *testing.T) {
	_, err := newTestProcessor().ProcessPayment(context.Background(), models.NewPendingPayment(1.79e308, models.MethodCreditCard))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	completed, err := newTestProcessor().ProcessPayment(context.Background(), models.NewPendingPayment(1.79e308, models.MethodCrypto))
	require.NoError(t, err)
	assert.False(t, math.IsInf(completed.Total, 0))
}

func TestProcessPaymentRejectsUnknownMethod(t *testing.T) {
	for _, method := range []models.PaymentMethod{models.MethodUnknown, models.PaymentMethod(9)} {
		_, err := newTestProcessor().ProcessPayment(context.Background(), models.NewPendingPayment(10, method))
		assert.ErrorIs(t, err, ErrUnknownMethod)
	}
}

func TestProcessPaymentWithCustomRules(t *testing.T) {
	rules := map[models.PaymentMethod]FeeRule{
		models.MethodCreditCard: {Method: models.MethodCreditCard, Multiplier: 1.10},
	}
	p := NewFeeProcessor(rules, zerolog.Nop())

	completed, err := p.ProcessPayment(context.Background(), models.NewPendingPayment(10, models.MethodCreditCard))
	require.NoError(t, err)
	assert.InDelta(t, 11.0, completed.Total, 1e-9)

	_, err = p.ProcessPayment(context.Background(), models.NewPendingPayment(10, models.MethodPayPal))
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestProcessPaymentHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProcessor().ProcessPayment(ctx, models.NewPendingPayment(10, models.MethodPayPal))
	assert.True(t, errors.Is(err, context.Canceled))
}
