package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"franchise-dispatch/internal/http/handlers"
	mw "franchise-dispatch/internal/http/middleware"
	"franchise-dispatch/internal/http/middleware/ratelimit"
	"franchise-dispatch/internal/logx"
	"franchise-dispatch/internal/ws"
)

// Deps holds everything the HTTP surface needs.
type Deps struct {
	Logger logx.Logger

	Base   *handlers.Handlers
	Orders *handlers.OrderHandler
	View   *handlers.ViewHandler
	Riders *handlers.RiderHandler

	Hub       *ws.Hub
	RateLimit *ratelimit.Middleware

	Franchise      string
	JWTSecret      string
	AllowedOrigins []string
}

// New constructs a chi-based http.Handler with base middleware and routes.
// The rate limiter sits behind Authenticate so throttling keys on the user,
// not the shared office IP.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.Observability(d.Logger))

	if len(d.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.AllowedOrigins,
			AllowedMethods:   []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWS(d.Hub, d.Logger, d.JWTSecret, w, req)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(d.JWTSecret))
		if d.RateLimit != nil {
			r.Use(d.RateLimit.Handler())
		}
		r.Use(mw.RequireFranchise(d.Franchise))

		r.Get("/orders", d.Orders.List)
		r.Patch("/orders/{id}/status", d.Orders.UpdateStatus)
		r.Get("/orders/{id}/audit", d.Orders.Audit)
		r.Post("/orders/verify", d.View.Verify)
		r.Post("/orders/assign", d.View.Assign)

		r.Put("/filters", d.View.UpdateFilters)
		r.Get("/selection", d.View.GetSelection)
		r.Delete("/selection", d.View.ClearSelection)
		r.Post("/selection/toggle", d.View.ToggleSelection)
		r.Post("/selection/toggle-all", d.View.ToggleAllSelection)

		r.Get("/riders", d.Riders.List)
	})

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}
