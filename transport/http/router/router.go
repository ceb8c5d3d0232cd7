package router

import (
	"salas/internal/handlers/availability"
	"salas/internal/handlers/profile"
	"salas/internal/handlers/reservation"
	"salas/internal/handlers/room"
	"salas/internal/handlers/rule"
	"salas/internal/handlers/timeblock"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Availability availability.Handler
	Room         room.Handler
	TimeBlock    timeblock.Handler
	Rule         rule.Handler
	Reservation  reservation.Handler
	Profile      profile.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.TimeBlock.Router(routerGroup)
		r.DomainHandlers.Rule.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Profile.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
