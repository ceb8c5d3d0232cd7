package availability

import (
	"net/http"
	"salas/infras/otel"
	"salas/internal/domains/availability/model/dto"
	"salas/internal/domains/availability/service"
	"salas/shared/constant"
	"salas/shared/validator"
	"salas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGrid)
		routerGroup.Get("/rooms/{room_id}/blocks/{time_block_id}", handler.GetSlotState)
	})
}

// GetGrid returns the availability grid of a date.
// @Summary Get the availability grid
// @Description Rooms by time blocks for a date. The date is clamped into the booking window and defaults to today.
// @Tags Availability
// @Produce json
// @Param date query string false "Date formatted as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GridResponse] "Availability grid"
// @Failure 500 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrid")
	defer scope.End()

	grid, err := handler.service.GetGrid(ctx, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get availability grid")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, grid)
}

// GetSlotState returns the state of one slot.
// @Summary Get a slot state
// @Description AVAILABLE, BOOKED or BLOCKED for a room, time block and date.
// @Tags Availability
// @Produce json
// @Param room_id path string true "Room ID"
// @Param time_block_id path string true "Time block ID"
// @Param date query string true "Date formatted as YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.SlotStateResponse] "Slot state"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/rooms/{room_id}/blocks/{time_block_id} [get]
func (handler *Handler) GetSlotState(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlotState")
	defer scope.End()

	req := dto.SlotStateRequest{
		RoomID:      chi.URLParam(r, constant.RequestParamRoomID),
		TimeBlockID: chi.URLParam(r, constant.RequestParamTimeBlockID),
		Date:        r.URL.Query().Get(constant.RequestParamDate),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetSlotState(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slot state")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
