package app

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/dig"

	"franchise-dispatch/internal/config"
	ordersgw "franchise-dispatch/internal/gateway/orders"
	ridersgw "franchise-dispatch/internal/gateway/riders"
	"franchise-dispatch/internal/http/handlers"
	"franchise-dispatch/internal/http/middleware/ratelimit"
	"franchise-dispatch/internal/http/pprofserver"
	"franchise-dispatch/internal/http/router"
	"franchise-dispatch/internal/logx"
	"franchise-dispatch/internal/repository"
	"franchise-dispatch/internal/service/status"
	"franchise-dispatch/internal/service/workspace"
	"franchise-dispatch/internal/ws"
)

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		newOrderHandler,
		newViewHandler,
		newRiderHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newServer,
		providePprofServer,
	)
}

func newOrderHandler(
	logger logx.Logger,
	gw *ordersgw.RetryingGateway,
	engine *status.Engine,
	trail *repository.AuditRepo,
	feed *ws.OrderFeed,
	workspaces *workspace.Registry,
) *handlers.OrderHandler {
	return handlers.NewOrderHandler(logger, gw, engine, trail, feed, workspaces)
}

func newViewHandler(logger logx.Logger, workspaces *workspace.Registry) *handlers.ViewHandler {
	return handlers.NewViewHandler(logger, workspaces)
}

func newRiderHandler(logger logx.Logger, riders *ridersgw.Client) *handlers.RiderHandler {
	return handlers.NewRiderHandler(logger, riders)
}

type routerIn struct {
	dig.In

	Logger logx.Logger
	Cfg    *config.Config

	Base   *handlers.Handlers
	Orders *handlers.OrderHandler
	View   *handlers.ViewHandler
	Riders *handlers.RiderHandler

	Hub       *ws.Hub
	RateLimit *ratelimit.Middleware
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:         in.Logger,
		Base:           in.Base,
		Orders:         in.Orders,
		View:           in.View,
		Riders:         in.Riders,
		Hub:            in.Hub,
		RateLimit:      in.RateLimit,
		Franchise:      in.Cfg.Franchise,
		JWTSecret:      in.Cfg.JWTSecret,
		AllowedOrigins: in.Cfg.CORS.AllowedOrigins,
	})
}

func newServer(cfg *config.Config, mux http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

func providePprofServer(cfg *config.Config) pprofOut {
	if cfg.Pprof.Port == 0 {
		return pprofOut{}
	}
	return pprofOut{Server: &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Pprof.Port),
		Handler: pprofserver.Handler(pprofserver.Config{
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}}
}
