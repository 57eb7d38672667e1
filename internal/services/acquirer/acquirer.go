package acquirer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/diogomassis/payment-flow/internal/models"
)

const (
	amountPrompt = "Enter the amount to pay: $"
	methodPrompt = "Enter your choice (1/2/3): "
)

// Acquirer obtains the payment amount and method, preferring environment
// overrides and falling back to interactive prompts.
type Acquirer struct {
	reader *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

func New(in io.Reader, out io.Writer, logger zerolog.Logger) *Acquirer {
	return &Acquirer{
		reader: bufio.NewReader(in),
		out:    out,
		logger: logger.With().Str("component", "acquirer").Logger(),
	}
}

// AcquireAmount returns the override when it is a valid positive number and
// otherwise prompts until one is entered.
func (a *Acquirer) AcquireAmount(ctx context.Context, override string) (float64, error) {
	if override != "" {
		amount, err := ParseAmount(override)
		if err == nil {
			a.logger.Debug().Float64("amount", amount).Msg("using PAYMENT_AMOUNT override")
			return amount, nil
		}
		a.logger.Warn().Err(err).Str("override", override).Msg("ignoring PAYMENT_AMOUNT override, falling back to prompt")
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := a.ask(amountPrompt)
		if err != nil {
			return 0, err
		}
		amount, err := ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		if errors.Is(err, errNotANumber) {
			a.println("Error: Invalid input. Please enter a valid number.")
		} else {
			a.println("Error: The amount must be a positive number.")
		}
	}
}

// SelectMethod resolves the override, failing hard when it is not a known
// selector, or loops on the interactive menu until a valid choice is made.
func (a *Acquirer) SelectMethod(ctx context.Context, override string) (models.PaymentMethod, error) {
	if override != "" {
		method, err := ParseMethod(override)
		if err != nil {
			return models.MethodUnknown, &MethodOverrideError{Override: override}
		}
		a.logger.Debug().Str("method", method.Code()).Msg("using PAYMENT_METHOD override")
		return method, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return models.MethodUnknown, err
		}
		a.printMenu()
		line, err := a.ask(methodPrompt)
		if err != nil {
			return models.MethodUnknown, err
		}
		method, err := ParseMethod(line)
		if err == nil {
			return method, nil
		}
		a.logger.Debug().Err(err).Msg("rejected menu choice")
		a.println("Error: Invalid choice. Please try again.")
	}
}

func (a *Acquirer) printMenu() {
	a.println("")
	a.println("Select a payment method:")
	for _, method := range models.PaymentMethods() {
		a.println(fmt.Sprintf("%s. %s", method.Selector(), method))
	}
}

// ask reads one line of any length. A final line without a newline still
// counts; only an empty read at EOF means the input is closed.
func (a *Acquirer) ask(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.reader.ReadString('\n')
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		return strings.TrimRight(line, "\r\n"), nil
	}
	// Keep the next output line off the prompt line.
	a.println("")
	if errors.Is(err, io.EOF) {
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("failed to read input: %w", err)
}

func (a *Acquirer) println(line string) {
	fmt.Fprintln(a.out, line)
}
