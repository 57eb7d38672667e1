package processor

import (
	"math"
	"strconv"

	"github.com/diogomassis/payment-flow/internal/models"
)

// FeeRule scales an amount by a multiplier. Multipliers above 1 are
// commissions, below 1 are discounts.
type FeeRule struct {
	Method     models.PaymentMethod
	Multiplier float64
}

var defaultRules = []FeeRule{
	{Method: models.MethodCreditCard, Multiplier: 1.02},
	{Method: models.MethodPayPal, Multiplier: 1.03},
	{Method: models.MethodCrypto, Multiplier: 0.95},
}

// DefaultRules returns the built-in rule table keyed by method.
func DefaultRules() map[models.PaymentMethod]FeeRule {
	rules := make(map[models.PaymentMethod]FeeRule, len(defaultRules))
	for _, rule := range defaultRules {
		rules[rule.Method] = rule
	}
	return rules
}

// Percent is the whole-percent adjustment shown to the payer: 2 for a 2%
// commission, -5 for a 5% discount.
func (r FeeRule) Percent() int {
	return int(math.Round((r.Multiplier - 1) * 100))
}

// Apply returns amount*multiplier rounded to cents.
func (r FeeRule) Apply(amount float64) float64 {
	return roundCents(amount * r.Multiplier)
}

// roundCents rounds the exact binary value, the same way %.2f does, so the
// stored total and the printed total never disagree.
func roundCents(value float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	if err != nil {
		return value
	}
	return rounded
}
