package reservation

import (
	"net/http"
	"salas/infras/otel"
	"salas/internal/domains/reservation/model/dto"
	"salas/internal/domains/reservation/service"
	"salas/shared/constant"
	"salas/shared/validator"
	"salas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/mine", handler.GetMyReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Post("/{id}/cancel", handler.CancelReservation)
	})
}

// CreateReservation books a slot for the caller.
// @Summary Reserve a room
// @Description Reserve a room for one time block on a date. The request is checked against the reservation rules before it is stored.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error "past_date, too_far_in_advance or invalid_material"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error "not_found or inactive"
// @Failure 409 {object} response.Error "already_reserved or blocked"
// @Failure 422 {object} response.Error "quota_exceeded or max_active_exceeded"
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Str("date", req.Date).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("reservation.id", res.ID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetMyReservations lists the caller's reservations.
// @Summary List my reservations
// @Description Upcoming active reservations and the most recent past ones.
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.MyReservationsResponse] "My reservations"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/mine [get]
// @Security BearerAuth
func (handler *Handler) GetMyReservations(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyReservations")
	defer scope.End()

	res, err := handler.service.Mine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my reservations")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetReservationByID returns one of the caller's reservations.
// @Summary Get reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := validator.ValidateID(id, "reservation"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelReservation cancels one of the caller's reservations.
// @Summary Cancel a reservation
// @Description Cancel an upcoming reservation. Cancelling an already cancelled reservation succeeds with already_cancelled set.
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.CancelResponse] "Cancellation result"
// @Failure 400 {object} response.Error "cannot_cancel_past"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "invariant_violation"
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelReservation")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := validator.ValidateID(id, "reservation"); err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to cancel reservation")

		response.WithError(writer, err)

		return
	}

	if res.AlreadyCancelled {
		log.Warn().Str("id", id).Msg("reservation was already cancelled")
	}

	response.WithJSON(writer, http.StatusOK, res)
}
