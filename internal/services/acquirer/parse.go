package acquirer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/diogomassis/payment-flow/internal/models"
	"github.com/diogomassis/payment-flow/internal/services/processor"
)

// errNotANumber marks input that is not numeric at all, as opposed to a
// number that is out of range.
var errNotANumber = fmt.Errorf("%w: not a number", processor.ErrInvalidAmount)

// ParseAmount parses a strictly positive, finite amount.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, errNotANumber
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: got %v", processor.ErrInvalidAmount, amount)
	}
	return amount, nil
}

// ParseMethod maps a "1"/"2"/"3" selector to its payment method.
func ParseMethod(raw string) (models.PaymentMethod, error) {
	selector := strings.TrimSpace(raw)
	method, ok := models.ParsePaymentMethod(selector)
	if !ok {
		return models.MethodUnknown, fmt.Errorf("%w: %q", ErrInvalidMethod, selector)
	}
	return method, nil
}
