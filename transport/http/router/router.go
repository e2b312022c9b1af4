package router

import (
	"reservas/internal/handlers/annotation"
	"reservas/internal/handlers/reservation"
	"reservas/internal/handlers/room"
	"reservas/internal/handlers/state"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room        room.Handler
	State       state.Handler
	Reservation reservation.Handler
	Annotation  annotation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.State.Router(router)
	r.DomainHandlers.Reservation.Router(router)
	r.DomainHandlers.Annotation.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
