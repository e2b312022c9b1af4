// Package mocks provides tracing doubles that record nothing.
package mocks

import (
	"context"

	"reservas/infras/otel"
)

type noopOtel struct{}

type noopScope struct{}

// NewOtel returns a tracer whose scopes discard every span operation.
func NewOtel() otel.Otel {
	return noopOtel{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func (noopOtel) Shutdown(context.Context) error { return nil }

func (noopScope) End() {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}
func (noopScope) AddEvent(string) {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}
