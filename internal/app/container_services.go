package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"franchise-dispatch/internal/config"
	ordersgw "franchise-dispatch/internal/gateway/orders"
	ridersgw "franchise-dispatch/internal/gateway/riders"
	"franchise-dispatch/internal/logx"
	"franchise-dispatch/internal/repository"
	"franchise-dispatch/internal/service/assign"
	"franchise-dispatch/internal/service/filters"
	"franchise-dispatch/internal/service/selection"
	"franchise-dispatch/internal/service/status"
	"franchise-dispatch/internal/service/workspace"
	"franchise-dispatch/internal/session"
	"franchise-dispatch/internal/ws"
)

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *session.Session {
			return session.New(cfg.Orders.Token)
		},
		func(cfg *config.Config, sess *session.Session) *ordersgw.Client {
			return ordersgw.NewClient(cfg.Orders.BaseURL, cfg.Orders.Timeout, sess)
		},
		newOrdersGateway,
		func(cfg *config.Config, sess *session.Session) *ridersgw.Client {
			return ridersgw.NewClient(cfg.Riders.BaseURL, cfg.Riders.Timeout, sess)
		},
	)
}

type ordersGatewayIn struct {
	dig.In

	Client  *ordersgw.Client
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
	Cfg     *config.Config
}

func newOrdersGateway(in ordersGatewayIn) *ordersgw.RetryingGateway {
	return ordersgw.NewRetryingGateway(in.Client, in.Logger, in.Retries, ordersgw.RetryConfig{
		MaxAttempts: in.Cfg.Orders.MaxAttempts,
		BaseDelay:   in.Cfg.Orders.BaseDelay,
		MaxDelay:    in.Cfg.Orders.MaxDelay,
	})
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewAuditRepo,
		assign.NewCache,
		newStatusEngine,
		newAssignCoordinator,
		ws.NewHub,
		func(hub *ws.Hub, cfg *config.Config) *ws.OrderFeed {
			return ws.NewOrderFeed(hub, cfg.Franchise)
		},
		newWorkspaceRegistry,
	)
}

type statusEngineIn struct {
	dig.In

	Gateway  *ordersgw.RetryingGateway
	Audit    *repository.AuditRepo
	Logger   logx.Logger
	Failures prometheus.Counter `name:"status_update_failures_total"`
}

func newStatusEngine(in statusEngineIn) *status.Engine {
	return status.NewEngine(in.Gateway, in.Audit, in.Logger, in.Failures)
}

func newAssignCoordinator(
	gw *ordersgw.RetryingGateway,
	riders *ridersgw.Client,
	cache *assign.Cache,
	audit *repository.AuditRepo,
	logger logx.Logger,
	assignments *prometheus.CounterVec,
) *assign.Coordinator {
	return assign.NewCoordinator(
		gw, riders, cache, audit, logger,
		assignments.WithLabelValues("assign"),
		assignments.WithLabelValues("reassign"),
		nil,
	)
}

// newWorkspaceRegistry builds per-user dashboard state. Listeners are nil:
// the facade pulls query snapshots on each listing request instead of pushing.
func newWorkspaceRegistry(
	cfg *config.Config,
	engine *status.Engine,
	coord *assign.Coordinator,
	logger logx.Logger,
) *workspace.Registry {
	return workspace.NewRegistry(func(string) *workspace.Workspace {
		return &workspace.Workspace{
			Filters:   filters.NewController(cfg.Franchise, cfg.Filters.PageSize, cfg.Filters.SearchDebounce, nil),
			Selection: selection.NewManager(engine, coord, logger),
		}
	})
}
