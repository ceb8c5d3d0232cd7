package timeblock

import (
	"net/http"
	"salas/infras/otel"
	"salas/internal/domains/timeblock/model/dto"
	"salas/internal/domains/timeblock/service"
	"salas/shared/constant"
	"salas/shared/validator"
	"salas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.TimeBlock
	otel    otel.Otel
}

func New(service service.TimeBlock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/time-blocks", handler.GetTimeBlocks)
}

// GetTimeBlocks lists the active time blocks of a weekday.
// @Summary Get time blocks of a day
// @Description Retrieve the active time blocks of a weekday ordered by start time.
// @Tags TimeBlock
// @Accept json
// @Produce json
// @Param day query string true "Day of the week, e.g. monday"
// @Success 200 {object} response.Data[dto.TimeBlocksResponse] "Time blocks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/time-blocks [get]
func (handler *Handler) GetTimeBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimeBlocks")
	defer scope.End()

	req := dto.ListTimeBlocksRequest{Day: r.URL.Query().Get(constant.RequestParamDay)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListForDay(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get time blocks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
