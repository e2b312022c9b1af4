package state

import (
	"net/http"
	"reservas/infras/otel"
	"reservas/internal/domains/state/service"
	"reservas/shared/constant"
	"reservas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.State
	otel    otel.Otel
}

func New(service service.State, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/estados", handler.GetStates)
}

// GetStates lists every reservation state.
// @Summary List states
// @Description Retrieve every reservation state ordered by id.
// @Tags Estados
// @Produce json
// @Success 200 {array} dto.StateResponse "List of states"
// @Failure 500 {object} response.Error
// @Router /estados [get]
func (handler *Handler) GetStates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStates")
	defer scope.End()

	states, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to get states")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("States retrieved successfully")

	response.WithJSON(w, http.StatusOK, states)
}
