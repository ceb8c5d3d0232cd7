package reservation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "salas/infras/otel/mocks"
	"salas/internal/domains/reservation/mocks"
	"salas/internal/domains/reservation/model/dto"
	"salas/internal/handlers/reservation"
	"salas/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	roomID      = "7d1c1a52-1f1c-4a37-9a4e-2a9c1f0f7b11"
	timeBlockID = "0b9a4a1e-5d55-4b53-8f0e-1c2d3e4f5a6b"
)

func newRouter(t *testing.T) (*mocks.MockReservationService, http.Handler) {
	t.Helper()

	service := mocks.NewMockReservationService(gomock.NewController(t))
	handler := reservation.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return service, router
}

func TestHandler_PathIDs(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{name: "get with a room name", method: http.MethodGet, path: "/v1/reservations/lab-a"},
		{name: "get with a number", method: http.MethodGet, path: "/v1/reservations/1"},
		{name: "cancel with a malformed id", method: http.MethodPost, path: "/v1/reservations/1/cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Contains(t, rec.Body.String(), failure.ReasonNotFound)
		})
	}

	t.Run("cancel with a uuid reaches the service", func(t *testing.T) {
		service, router := newRouter(t)
		service.EXPECT().Cancel(gomock.Any(), roomID).Return(dto.CancelResponse{}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations/"+roomID+"/cancel", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_CreateReservation_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "room id is not a uuid",
			body:    `{"room_id":"lab-a","time_block_id":"` + timeBlockID + `","date":"2026-10-19"}`,
			wantMsg: "RoomID must be a valid uuid",
		},
		{
			name:    "time block id is not a uuid",
			body:    `{"room_id":"` + roomID + `","time_block_id":"1","date":"2026-10-19"}`,
			wantMsg: "TimeBlockID must be a valid uuid",
		},
		{
			name:    "material id is not a uuid",
			body:    `{"room_id":"` + roomID + `","time_block_id":"` + timeBlockID + `","date":"2026-10-19","requested_material_ids":["projector"]}`,
			wantMsg: "must be a valid uuid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := newRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/reservations/", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}
