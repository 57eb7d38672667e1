package main

import (
	"context"
	"io"
	"os"

	"github.com/diogomassis/payment-flow/internal/env"
	"github.com/diogomassis/payment-flow/internal/logging"
	"github.com/diogomassis/payment-flow/internal/services/acquirer"
	"github.com/diogomassis/payment-flow/internal/services/orchestrator"
	"github.com/diogomassis/payment-flow/internal/services/processor"
	"github.com/diogomassis/payment-flow/internal/services/reporter"
)

// loadDotEnv is swapped in tests.
var loadDotEnv = func() error { return env.LoadDotEnv() }

func main() {
	os.Exit(run(context.Background(), os.LookupEnv, os.Stdin, os.Stdout, os.Stderr))
}

// run wires and executes one payment flow and returns the process exit code.
func run(ctx context.Context, lookup env.LookupFunc, stdin io.Reader, stdout, stderr io.Writer) int {
	dotEnvErr := loadDotEnv()
	cfg := env.Load(lookup)

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		logger.Warn().Err(err).Msg("using default log level")
	}
	if dotEnvErr != nil {
		logger.Warn().Err(dotEnvErr).Msg("failed to load .env")
	}

	format, err := reporter.ParseFormat(cfg.OutputFormat)
	if err != nil {
		logger.Warn().Err(err).Msg("falling back to text output")
	}
	report := reporter.New(stdout, format)
	input := acquirer.New(stdin, stdout, logger)

	flow, err := orchestrator.NewPaymentFlowBuilder().
		WithAmountAcquirer(input).
		WithMethodSelector(input).
		WithProcessor(processor.NewFeeProcessor(processor.DefaultRules(), logger)).
		WithReporter(report).
		WithOverrides(orchestrator.Overrides{Amount: cfg.PaymentAmount, Method: cfg.PaymentMethod}).
		WithLogger(logger).
		Build()
	if err != nil {
		logger.Error().Err(err).Msg("failed to build payment flow")
		return 1
	}

	if err := report.Banner(); err != nil {
		logger.Error().Err(err).Msg("failed to write output")
		return 1
	}

	if _, err := flow.Execute(ctx); err != nil {
		return exitCode(err, stdout, logger)
	}
	return 0
}
