package room

import (
	"net/http"
	"reservas/infras/otel"
	"reservas/internal/domains/room/service"
	"reservas/shared/constant"
	"reservas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/casas", handler.GetRooms)
}

// GetRooms lists every room.
// @Summary List rooms
// @Description Retrieve every room ordered by id.
// @Tags Casas
// @Produce json
// @Success 200 {array} dto.RoomResponse "List of rooms"
// @Failure 500 {object} response.Error
// @Router /casas [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}
