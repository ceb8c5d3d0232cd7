package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_Health(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		checkErr error
		wantCode int
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK},
		{name: "dependency down", state: ServerStateReady, checkErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HTTP{}
			h.state.Store(int32(tt.state))
			h.OnHealthCheck("postgres", func(context.Context) error { return tt.checkErr })

			rec := httptest.NewRecorder()
			h.health(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
