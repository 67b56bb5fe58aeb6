package assign

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"franchise-dispatch/internal/apperr"
	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/logx"
)

// flashTTL is how long the transient success indicator stays visible.
const flashTTL = 2 * time.Second

type counter interface {
	Inc()
}

// Coordinator partitions a batch of orders into assign and reassign buckets
// based on freshly fetched server state and dispatches both buckets
// concurrently. Partial failure is not rolled back: the succeeded bucket
// stands, the failed one stays unchanged upstream.
type Coordinator struct {
	orders     OrderSource
	riders     RiderGateway
	cache      *Cache
	audit      Auditor
	logger     logx.Logger
	assigned   counter
	reassigned counter
	clock      Clock

	mu        sync.Mutex
	successAt time.Time
}

// NewCoordinator creates an assignment Coordinator.
func NewCoordinator(
	orders OrderSource,
	riders RiderGateway,
	cache *Cache,
	audit Auditor,
	logger logx.Logger,
	assigned, reassigned counter,
	clock Clock,
) *Coordinator {
	if clock == nil {
		clock = RealClock{}
	}
	return &Coordinator{
		orders:     orders,
		riders:     riders,
		cache:      cache,
		audit:      audit,
		logger:     logger,
		assigned:   assigned,
		reassigned: reassigned,
		clock:      clock,
	}
}

// Assign gives the orders to the rider. Orders without a current rider go
// through the assign endpoint, orders with one through reassign; a mixed
// batch issues exactly one request of each kind.
func (c *Coordinator) Assign(ctx context.Context, orderIDs []string, riderID string) (domain.AssignResult, error) {
	riderID = strings.TrimSpace(riderID)
	if riderID == "" || len(orderIDs) == 0 {
		return domain.AssignResult{}, apperr.Invalid
	}

	var firstTime, repeat []string
	for _, id := range dedupe(orderIDs) {
		ord, err := c.orders.Get(ctx, id)
		if err != nil {
			return domain.AssignResult{}, err
		}
		if !ord.Status.AssignmentEligible() {
			return domain.AssignResult{}, apperr.Conflict
		}
		if ord.Assigned() {
			repeat = append(repeat, id)
		} else {
			firstTime = append(firstTime, id)
		}
	}

	result := domain.AssignResult{RiderID: riderID}
	var mu sync.Mutex

	// Both buckets run concurrently and to completion: a failure in one must
	// not cancel the other, so no shared group context.
	var g errgroup.Group
	if len(firstTime) > 0 {
		g.Go(func() error {
			if err := c.riders.Assign(ctx, firstTime, riderID); err != nil {
				c.logger.Error("assign bucket failed",
					logx.Strings("order_ids", firstTime),
					logx.Any("err", err),
				)
				return err
			}
			c.confirmBucket(ctx, firstTime, riderID, domain.AuditAssign)
			c.assigned.Inc()
			mu.Lock()
			result.Assigned = firstTime
			mu.Unlock()
			return nil
		})
	}
	if len(repeat) > 0 {
		g.Go(func() error {
			if err := c.riders.Reassign(ctx, repeat, riderID); err != nil {
				c.logger.Error("reassign bucket failed",
					logx.Strings("order_ids", repeat),
					logx.Any("err", err),
				)
				return err
			}
			c.confirmBucket(ctx, repeat, riderID, domain.AuditReassign)
			c.reassigned.Inc()
			mu.Lock()
			result.Reassigned = repeat
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		c.mu.Lock()
		c.successAt = c.clock.Now()
		c.mu.Unlock()
		c.logger.Info("rider assigned",
			logx.String("rider_id", riderID),
			logx.Int("assigned", len(result.Assigned)),
			logx.Int("reassigned", len(result.Reassigned)),
		)
	}
	return result, err
}

// RecentSuccess reports whether a fully successful assignment happened within
// the flash window.
func (c *Coordinator) RecentSuccess() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.successAt.IsZero() && c.clock.Now().Sub(c.successAt) < flashTTL
}

// confirmBucket mutates the local cache and audit trail for one confirmed
// bucket. Only confirmed buckets touch the cache.
func (c *Coordinator) confirmBucket(ctx context.Context, orderIDs []string, riderID string, action domain.AuditAction) {
	c.cache.SetAll(orderIDs, riderID)

	if c.audit == nil {
		return
	}
	now := c.clock.Now().UTC()
	recs := make([]domain.AuditRecord, 0, len(orderIDs))
	for _, id := range orderIDs {
		recs = append(recs, domain.AuditRecord{
			ID:         uuid.New(),
			OrderID:    id,
			RiderID:    riderID,
			Action:     action,
			Actor:      string(domain.ActorFranchise),
			OccurredAt: now,
		})
	}
	if err := c.audit.Record(ctx, recs); err != nil {
		c.logger.Warn("audit record failed", logx.Any("err", err))
	}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
