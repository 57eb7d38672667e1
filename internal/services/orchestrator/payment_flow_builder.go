package orchestrator

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/diogomassis/payment-flow/internal/services/processor"
)

type PaymentFlowBuilder struct {
	amounts   AmountAcquirer
	methods   MethodSelector
	processor processor.PaymentProcessor
	reporter  Reporter
	overrides Overrides
	logger    zerolog.Logger
}

func NewPaymentFlowBuilder() *PaymentFlowBuilder {
	return &PaymentFlowBuilder{logger: zerolog.Nop()}
}

func (b *PaymentFlowBuilder) WithAmountAcquirer(amounts AmountAcquirer) *PaymentFlowBuilder {
	b.amounts = amounts
	return b
}

func (b *PaymentFlowBuilder) WithMethodSelector(methods MethodSelector) *PaymentFlowBuilder {
	b.methods = methods
	return b
}

func (b *PaymentFlowBuilder) WithProcessor(p processor.PaymentProcessor) *PaymentFlowBuilder {
	b.processor = p
	return b
}

func (b *PaymentFlowBuilder) WithReporter(reporter Reporter) *PaymentFlowBuilder {
	b.reporter = reporter
	return b
}

func (b *PaymentFlowBuilder) WithOverrides(overrides Overrides) *PaymentFlowBuilder {
	b.overrides = overrides
	return b
}

func (b *PaymentFlowBuilder) WithLogger(logger zerolog.Logger) *PaymentFlowBuilder {
	b.logger = logger
	return b
}

func (b *PaymentFlowBuilder) Build() (*PaymentFlow, error) {
	if b.amounts == nil {
		return nil, errors.New("amount acquirer is required")
	}
	if b.methods == nil {
		return nil, errors.New("method selector is required")
	}
	if b.processor == nil {
		return nil, errors.New("payment processor is required")
	}
	if b.reporter == nil {
		return nil, errors.New("reporter is required")
	}

	return &PaymentFlow{
		amounts:   b.amounts,
		methods:   b.methods,
		processor: b.processor,
		reporter:  b.reporter,
		overrides: b.overrides,
		logger:    b.logger.With().Str("component", "orchestrator").Logger(),
	}, nil
}
