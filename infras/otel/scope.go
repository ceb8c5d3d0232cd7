package otel

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope is one span as seen by the layers that open it.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string, attributes map[string]any)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type spanScope struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return &spanScope{span: span}
}

func (s *spanScope) End() {
	s.span.End()
}

func (s *spanScope) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s *spanScope) TraceIfError(err error) {
	if err == nil {
		return
	}

	s.TraceError(err)
}

func (s *spanScope) AddEvent(name string, attributes map[string]any) {
	s.span.AddEvent(name, oteltrace.WithAttributes(toAttributes(attributes)...))
}

func (s *spanScope) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func (s *spanScope) SetAttributes(attributes map[string]any) {
	s.span.SetAttributes(toAttributes(attributes)...)
}

func toAttributes(values map[string]any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(values))
	for key, value := range values {
		attrs = append(attrs, toAttribute(key, value))
	}

	return attrs
}

// toAttribute keeps the native attribute type where one exists; dates are written as YYYY-MM-DD.
func toAttribute(key string, value any) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case bool:
		return attribute.Bool(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	case time.Time:
		return attribute.String(key, val.Format(time.DateOnly))
	case fmt.Stringer:
		return attribute.String(key, val.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", val))
	}
}
