package routers

import (
	"etkinlikHub/internal/transport/httpServer/handlers"
	myMiddleware "etkinlikHub/internal/transport/httpServer/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	eventHandler    *handlers.EventHandler
	waitlistHandler *handlers.WaitlistHandler
	secret          string
}

func NewRouter(eventHandler *handlers.EventHandler, waitlistHandler *handlers.WaitlistHandler, secret string) *Router {
	return &Router{
		eventHandler:    eventHandler,
		waitlistHandler: waitlistHandler,
		secret:          secret,
	}
}

func (r *Router) Mount(mux *chi.Mux) {

	mux.Use(cors.AllowAll().Handler)
	mux.Use(myMiddleware.LoggerMiddleware)
	mux.Use(middleware.Heartbeat("/ping"))

	// Легаси-маршрут первого поколения лендинга
	mux.Get("/api/events", r.eventHandler.GetDiscovery)

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/v1", func(mux chi.Router) {
			mux.Get("/events", r.eventHandler.GetEvents)
			mux.Post("/waitlist", r.waitlistHandler.Subscribe)

			mux.Route("/admin", func(mux chi.Router) {
				mux.Use(myMiddleware.JWTAuth(r.secret))
				mux.Post("/cache/purge", r.eventHandler.PurgeCache)
			})
		})
	})
}
