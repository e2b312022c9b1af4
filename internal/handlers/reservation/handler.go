package reservation

import (
	"net/http"
	"reservas/infras/otel"
	"reservas/internal/domains/reservation/model/dto"
	"reservas/internal/domains/reservation/service"
	"reservas/shared"
	"reservas/shared/constant"
	"reservas/shared/validator"
	"reservas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const (
	msgCreated = "Reserva creada"
	msgUpdated = "Reserva actualizada"
	msgDeleted = "Reserva eliminada"
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
	router.Route("/reservas", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
	})
}

// GetReservations lists every reservation with its room, state and annotations.
// @Summary List reservations
// @Description Retrieve every reservation ordered by id, with resolved room and state names and its annotations.
// @Tags Reservas
// @Produce json
// @Success 200 {array} dto.ReservationView "List of reservations"
// @Failure 500 {object} response.Error
// @Router /reservas [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	views, err := handler.service.ListViews(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, views)
}

// GetReservationByID retrieves one reservation view.
// @Summary Get a reservation by ID
// @Tags Reservas
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} dto.ReservationView "Reservation details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservas/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	view, err := handler.service.GetView(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// CreateReservation handles the creation of a new reservation.
// @Summary Create a reservation
// @Description Create a reservation. Deposit and commission default to 0.00 and commissionStatus to "pendiente".
// @Tags Reservas
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} response.Created "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservas [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	var req dto.CreateReservationRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Warn().Err(err).Msg("invalid reservation request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithCreated(w, msgCreated, id)
}

// UpdateReservation applies a partial update. Only the supplied fields are written.
// @Summary Update a reservation
// @Tags Reservas
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Fields to change"
// @Success 200 {object} response.Message "Reservation updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservas/{id} [put]
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateReservationRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Warn().Err(err).Msg("invalid reservation update")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation updated successfully")

	response.WithMessage(w, http.StatusOK, msgUpdated)
}

// DeleteReservation deletes a reservation and its annotations.
// @Summary Delete a reservation
// @Tags Reservas
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /reservas/{id} [delete]
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation deleted successfully")

	response.WithMessage(w, http.StatusOK, msgDeleted)
}
