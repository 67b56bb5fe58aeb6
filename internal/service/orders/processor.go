package orders

import (
	"context"

	"github.com/google/uuid"

	"franchise-dispatch/internal/domain"
)

// eventActor marks audit rows written on behalf of the external sales
// subsystem rather than a dashboard user.
const eventActor = "ydm"

// Processor applies order events to the local caches, the audit trail and the
// live feed.
type Processor struct {
	cache   AssignmentCache
	feed    Broadcaster
	audit   Auditor
	factory *actionFactory
}

// NewProcessor creates a new orders.Processor.
func NewProcessor(cache AssignmentCache, feed Broadcaster, audit Auditor) *Processor {
	p := &Processor{
		cache: cache,
		feed:  feed,
		audit: audit,
	}
	p.factory = newActionFactory(p.onProgress, p.onDelivered, p.onReleased)
	return p
}

// Handle processes a single orders.Event. Events with a status this subsystem
// does not track are acknowledged without side effects.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onProgress(ctx context.Context, e Event) error {
	if e.RiderID != "" {
		p.cache.Set(e.OrderID, e.RiderID)
	}
	return p.publish(ctx, e)
}

func (p *Processor) onDelivered(ctx context.Context, e Event) error {
	p.cache.Delete(e.OrderID)
	return p.publish(ctx, e)
}

func (p *Processor) onReleased(ctx context.Context, e Event) error {
	p.cache.Delete(e.OrderID)
	return p.publish(ctx, e)
}

// publish writes the audit row and then broadcasts. Returning the audit error
// makes the consumer redeliver the event.
func (p *Processor) publish(ctx context.Context, e Event) error {
	rec := domain.AuditRecord{
		ID:         uuid.New(),
		OrderID:    e.OrderID,
		RiderID:    e.RiderID,
		Action:     domain.AuditStatusChange,
		Status:     domain.OrderStatus(e.Status),
		Actor:      eventActor,
		OccurredAt: e.CreatedAt,
	}
	if err := p.audit.Record(ctx, []domain.AuditRecord{rec}); err != nil {
		return err
	}
	p.feed.Broadcast(e)
	return nil
}
