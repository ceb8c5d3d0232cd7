package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"salas/shared/failure"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		msg    string
		reason string
	}{
		{"bad request from string", failure.BadRequestFromString("invalid date"), http.StatusBadRequest, "invalid date", ""},
		{"bad request from error", failure.BadRequest(errors.New("decode failed")), http.StatusBadRequest, "decode failed", ""},
		{"unauthorized", failure.Unauthorized("token expired"), http.StatusUnauthorized, "token expired", ""},
		{"internal", failure.InternalError(errors.New("db down")), http.StatusInternalServerError, "db down", ""},
		{"not found", failure.NotFound("room not found"), http.StatusNotFound, "room not found", failure.ReasonNotFound},
		{"conflict", failure.Conflict("duplicate"), http.StatusConflict, "duplicate", ""},
		{"forbidden", failure.Forbidden("internal room"), http.StatusForbidden, "internal room", failure.ReasonForbidden},
		{
			"rejection",
			failure.Rejection(http.StatusConflict, failure.ReasonAlreadyReserved, "slot taken"),
			http.StatusConflict, "slot taken", failure.ReasonAlreadyReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.msg {
				t.Errorf("expected message %q, got %q", tt.msg, f.Message)
			}

			if f.Reason != tt.reason {
				t.Errorf("expected reason %q, got %q", tt.reason, f.Reason)
			}
		})
	}
}

func TestNilInputs(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for BadRequest(nil)")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for InternalError(nil)")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{"failure error", failure.BadRequestFromString("test"), http.StatusBadRequest},
		{"wrapped failure", fmt.Errorf("outer: %w", failure.NotFound("x")), http.StatusNotFound},
		{"regular error", errors.New("regular error"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.input); got != tt.expected {
				t.Errorf("expected code %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestGetReason(t *testing.T) {
	blocked := failure.Rejection(http.StatusConflict, failure.ReasonBlocked, "blocked")

	if got := failure.GetReason(fmt.Errorf("wrap: %w", blocked)); got != failure.ReasonBlocked {
		t.Errorf("expected reason %q, got %q", failure.ReasonBlocked, got)
	}

	if got := failure.GetReason(errors.New("plain")); got != "" {
		t.Errorf("expected empty reason, got %q", got)
	}

	if !failure.HasReason(blocked, failure.ReasonBlocked) {
		t.Error("expected HasReason to match")
	}

	if failure.HasReason(blocked, failure.ReasonQuotaExceeded) {
		t.Error("expected HasReason not to match a different reason")
	}
}
