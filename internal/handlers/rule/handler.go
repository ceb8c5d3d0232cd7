package rule

import (
	"net/http"
	"salas/infras/otel"
	"salas/internal/domains/rule/model/dto"
	"salas/internal/domains/rule/service"
	"salas/shared/constant"
	"salas/shared/validator"
	"salas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rules
	otel    otel.Otel
}

func New(service service.Rules, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rules", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRules)
		routerGroup.Post("/", handler.CreateRules)
		routerGroup.Patch("/", handler.UpdateRules)
	})
}

// GetRules returns the reservation rules in force.
// @Summary Get reservation rules
// @Description Retrieve the global reservation limits, or the defaults when none are stored.
// @Tags Rules
// @Produce json
// @Success 200 {object} response.Data[dto.RulesResponse] "Reservation rules"
// @Failure 500 {object} response.Error
// @Router /v1/rules [get]
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	res, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rules")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRules stores the reservation rules.
// @Summary Create reservation rules
// @Description Store the global reservation limits. Only one set of rules can exist.
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.CreateRulesRequest true "Create Rules Request"
// @Success 201 {object} response.Data[dto.RulesResponse] "Reservation rules"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rules [post]
// @Security BearerAuth
func (handler *Handler) CreateRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRules")
	defer scope.End()

	req := dto.CreateRulesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rules")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("rules.created", map[string]any{"user.id": user})

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateRules changes the reservation rules.
// @Summary Update reservation rules
// @Description Change any of the global reservation limits.
// @Tags Rules
// @Accept json
// @Produce json
// @Param request body dto.UpdateRulesRequest true "Update Rules Request"
// @Success 200 {object} response.Data[dto.RulesResponse] "Reservation rules"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rules [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRules")
	defer scope.End()

	req := dto.UpdateRulesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rules")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("rules.updated", map[string]any{"user.id": user})

	response.WithJSON(w, http.StatusOK, res)
}
