package reporter

import (
	"errors"
	"fmt"
	"io"

	json "github.com/json-iterator/go"

	"github.com/diogomassis/payment-flow/internal/dto"
	"github.com/diogomassis/payment-flow/internal/models"
	"github.com/diogomassis/payment-flow/internal/services/processor"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat maps a PAYMENT_OUTPUT value to a Format. Empty means text.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
}

// Reporter writes the human-readable result lines, plus a JSON receipt in
// json format.
type Reporter struct {
	out    io.Writer
	format Format
}

func New(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

func (r *Reporter) Banner() error {
	_, err := fmt.Fprintln(r.out, "=== Payment Processing System ===")
	return err
}

func (r *Reporter) ReportPayment(payment *models.CompletedPayment) error {
	if _, err := fmt.Fprintln(r.out, ConfirmationLine(payment)); err != nil {
		return fmt.Errorf("failed to write confirmation: %w", err)
	}
	if r.format != FormatJSON {
		return nil
	}

	data, err := json.Marshal(dto.NewReceiptResponse(payment))
	if err != nil {
		return fmt.Errorf("failed to marshal receipt: %w", err)
	}
	if _, err := fmt.Fprintln(r.out, string(data)); err != nil {
		return fmt.Errorf("failed to write receipt: %w", err)
	}
	return nil
}

// ReportRejection prints the message for a payment the processor refused.
func (r *Reporter) ReportRejection(err error) error {
	message := "Error: " + err.Error() + "."
	if errors.Is(err, processor.ErrInvalidAmount) {
		message = "Error: The amount must be greater than zero."
	}
	_, werr := fmt.Fprintln(r.out, message)
	return werr
}

func ConfirmationLine(payment *models.CompletedPayment) string {
	return fmt.Sprintf("Paying $%.2f using %s (%s).", payment.Total, payment.Method, payment.AdjustmentLabel())
}
