package profile

import (
	"net/http"
	"salas/infras/otel"
	"salas/internal/domains/profile/model/dto"
	"salas/internal/domains/profile/service"
	"salas/shared/constant"
	"salas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Profile
	otel    otel.Otel
}

func New(service service.Profile, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/me", handler.GetMe)
}

// GetMe returns what the caller is allowed to reserve.
// @Summary Get my capabilities
// @Description Resolve the caller's role and reservation capabilities.
// @Tags Profile
// @Produce json
// @Success 200 {object} response.Data[dto.CapabilityResponse] "Capabilities"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	capability, err := handler.service.Resolve(ctx, user, role)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("user_id", user).Msg("failed to resolve capabilities")

		response.WithError(w, err)

		return
	}

	res := dto.CapabilityResponse{}
	res.FromModel(capability)

	response.WithJSON(w, http.StatusOK, res)
}
