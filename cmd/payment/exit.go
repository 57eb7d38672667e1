package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/diogomassis/payment-flow/internal/services/acquirer"
	"github.com/diogomassis/payment-flow/internal/services/processor"
)

// exitCode maps a failed flow to the process status. A rejected amount has
// already been reported to the payer and ends the run normally.
func exitCode(err error, stdout io.Writer, logger zerolog.Logger) int {
	var overrideErr *acquirer.MethodOverrideError
	switch {
	case errors.Is(err, processor.ErrInvalidAmount):
		return 0
	case errors.As(err, &overrideErr):
		fmt.Fprintf(stdout, "Error: %v\n", overrideErr)
	case errors.Is(err, acquirer.ErrInputClosed):
		fmt.Fprintln(stdout, "Error: no input received.")
	default:
		fmt.Fprintf(stdout, "Error: %v\n", err)
	}
	logger.Error().Err(err).Msg("payment flow failed")
	return 1
}
