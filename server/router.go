package server

import (
	"astrocal-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	almanacHandler *handlers.AlmanacHandler
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	almanacHandler *handlers.AlmanacHandler,
	router *mux.Router) *Router {
	return &Router{
		almanacHandler: almanacHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?year={year}&month={month}&day={clicked day}&date={deep link}
	r.router.HandleFunc("/v1/almanac", r.almanacHandler.GetAlmanac).Methods("GET")

	// expects ?year={year}&month={month}
	r.router.HandleFunc("/v1/calendar/grid", r.almanacHandler.GetCalendarGrid).Methods("GET")
	r.router.HandleFunc("/v1/charts/moon-illumination", r.almanacHandler.GetMoonIlluminationChart).Methods("GET")

	r.router.HandleFunc("/ping", r.almanacHandler.Ping).Methods("GET")
}
