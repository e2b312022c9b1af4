package annotation

import (
	"net/http"
	"reservas/infras/otel"
	"reservas/internal/domains/annotation/model/dto"
	"reservas/internal/domains/annotation/service"
	"reservas/shared"
	"reservas/shared/constant"
	"reservas/shared/validator"
	"reservas/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Annotation
	otel    otel.Otel
}

func New(service service.Annotation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/anotaciones", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAnnotation)
		routerGroup.Delete("/{id}", handler.DeleteAnnotation)
	})
}

// CreateAnnotation attaches a note to a reservation.
// @Summary Create an annotation
// @Tags Anotaciones
// @Accept json
// @Produce json
// @Param request body dto.CreateAnnotationRequest true "Annotation"
// @Success 201 {object} response.Created "Annotation created"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /anotaciones [post]
func (handler *Handler) CreateAnnotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAnnotation")
	defer scope.End()

	var req dto.CreateAnnotationRequest

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Warn().Err(err).Msg("invalid annotation request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Msg("failed to create annotation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Annotation created successfully")

	response.WithCreated(w, "Anotación creada", id)
}

// DeleteAnnotation removes one annotation.
// @Summary Delete an annotation
// @Tags Anotaciones
// @Produce json
// @Param id path int true "Annotation ID"
// @Success 200 {object} response.Message "Annotation deleted"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /anotaciones/{id} [delete]
func (handler *Handler) DeleteAnnotation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAnnotation")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete annotation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Annotation deleted successfully")

	response.WithMessage(w, http.StatusOK, "Anotación eliminada")
}
