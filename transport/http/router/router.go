package router

import (
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/handlers/reservation"
	"github.com/kadynthorpe/starter-restaurant-reservation/internal/handlers/table"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Reservation reservation.Handler
	Table       table.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the domain routers at the root: the dashboard
// client addresses /reservations and /tables without a version prefix.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Reservation.Router(router)
	r.DomainHandlers.Table.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
