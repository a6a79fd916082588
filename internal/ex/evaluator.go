// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ExMode Contributors

package ex

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("exmode/ex")

// Evaluator ties resolution to invocation: it resolves a command token in
// its scope and invokes the resolved implementation. Embedders that only
// need resolution use the registry directly.
type Evaluator struct {
	registry  *Registry
	performer Performer // optional, can be nil
}

// EvaluatorOption configures an Evaluator during construction.
type EvaluatorOption func(*Evaluator)

// WithPerformer binds the host editor's action dispatcher. Without one,
// native-action commands fail at invocation.
func WithPerformer(p Performer) EvaluatorOption {
	return func(e *Evaluator) {
		e.performer = p
	}
}

// NewEvaluator creates an evaluator over the given registry.
func NewEvaluator(registry *Registry, opts ...EvaluatorOption) (*Evaluator, error) {
	if registry == nil {
		return nil, oops.Code(CodeInvalidOperation).Errorf("registry cannot be nil")
	}
	e := &Evaluator{registry: registry}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Evaluate resolves inv.Token against the registry (scoped when inv.Scope
// is set) and invokes the resolved implementation. The invocation's
// Mapping and Performer fields are filled in before Invoke.
func (e *Evaluator) Evaluate(ctx context.Context, inv *Invocation) (err error) {
	if inv == nil {
		return oops.Code(CodeInvalidOperation).Errorf("invocation cannot be nil")
	}

	ctx, span := tracer.Start(ctx, "ex.evaluate",
		trace.WithAttributes(
			attribute.String("command.token", inv.Token),
			attribute.String("command.scope", inv.Scope),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var m *Mapping
	if inv.Scope != "" {
		m, err = e.registry.LookupInScope(inv.Token, inv.Scope)
	} else {
		m, err = e.registry.Lookup(inv.Token)
	}
	if err != nil {
		switch {
		case IsAmbiguous(err):
			recordLookup(OutcomeAmbiguous)
			span.SetAttributes(attribute.StringSlice("command.candidates", Candidates(err)))
		default:
			recordLookup(OutcomeNotFound)
		}
		return err
	}
	recordLookup(OutcomeResolved)
	span.SetAttributes(attribute.String("command.name", m.Name()))

	inv.Mapping = m
	if inv.Performer == nil {
		inv.Performer = e.performer
	}

	err = m.Implementation().Invoke(ctx, inv)
	if err != nil {
		recordEvaluation(m.Name(), m.Implementation().Kind(), StatusError)
		slog.WarnContext(ctx, "command evaluation failed",
			"command", m.Name(),
			"token", inv.Token,
			"error", err,
		)
		return err
	}
	recordEvaluation(m.Name(), m.Implementation().Kind(), StatusSuccess)
	return nil
}
