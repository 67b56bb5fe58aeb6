package app

import (
	"context"
	"time"

	"go.uber.org/dig"

	"franchise-dispatch/internal/config"
	ordersgw "franchise-dispatch/internal/gateway/orders"
	"franchise-dispatch/internal/logx"
	"franchise-dispatch/internal/repository"
	"franchise-dispatch/internal/service/assign"
	"franchise-dispatch/internal/service/orders"
	"franchise-dispatch/internal/transport/kafka"
	"franchise-dispatch/internal/ws"
)

func registerKafka(container *dig.Container) error {
	return provideAll(container,
		func(cache *assign.Cache, feed *ws.OrderFeed, audit *repository.AuditRepo) *orders.Processor {
			return orders.NewProcessor(cache, feed, audit)
		},
		makeOrderEventsHandler,
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, h)
		},
	)
}

// makeOrderEventsHandler backfills thin events from the order store before
// handing them to the processor. Some producers publish only the order id.
func makeOrderEventsHandler(p *orders.Processor, gw *ordersgw.RetryingGateway) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		if event.Status == "" && gw != nil {
			gwCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()

			ord, err := gw.Get(gwCtx, event.OrderID)
			if err != nil {
				return err
			}
			if ord == nil {
				return nil
			}
			event.Status = string(ord.Status)
			event.RiderID = ord.RiderID
			event.CreatedAt = ord.CreatedAt
		}
		return p.Handle(ctx, event)
	}
}
