package room

import (
	"net/http"
	"salas/infras/otel"
	"salas/internal/domains/room/model"
	"salas/internal/domains/room/service"
	"salas/shared/constant"
	gDto "salas/shared/dto"
	"salas/shared/validator"
	"salas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

var sortColumns = gDto.SortColumns{
	model.FieldName:     model.TableName + "." + model.FieldName,
	model.FieldLocation: model.TableName + "." + model.FieldLocation,
	model.FieldCapacity: model.TableName + "." + model.FieldCapacity,
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
	})
}

// GetRooms lists the public, active rooms.
// @Summary Get public rooms
// @Description Retrieve the bookable rooms with optional name and location search and pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "List of rooms"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, sortColumns)

	search := gDto.And()

	for _, field := range []string{model.FieldName, model.FieldLocation} {
		if value := r.URL.Query().Get(field); value != "" {
			search.Filters = append(search.Filters, gDto.Like(model.TableName, field, value))
		}
	}

	rooms, err := handler.service.GetAll(ctx, queryParams, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.SetAttribute("rooms.count", len(rooms.Rooms))

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID returns an active room with the materials it offers.
// @Summary Get a room by ID
// @Description Retrieve an active room and its active materials.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomDetailResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id, "room"); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.GetDetail(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}
