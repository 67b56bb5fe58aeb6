package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"franchise-dispatch/internal/domain"
)

// AuditRepo persists the assignment/status audit trail.
type AuditRepo struct {
	db *pgxpool.Pool
}

// NewAuditRepo creates a new AuditRepo.
func NewAuditRepo(db *pgxpool.Pool) *AuditRepo {
	return &AuditRepo{db: db}
}

// Record inserts all rows in one transaction so a batch audit is all or
// nothing. Duplicate record ids are ignored: redelivered events must not grow
// the trail.
func (r *AuditRepo) Record(ctx context.Context, recs []domain.AuditRecord) (err error) {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			err = tx.Rollback(ctx)
			if err != nil {
				panic(err)
			}
			panic(p)
		}
	}()

	for _, rec := range recs {
		_, err := tx.Exec(ctx, `
            INSERT INTO audit_trail (id, order_id, rider_id, action, status, actor, comment, occurred_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            ON CONFLICT (id) DO NOTHING
        `, rec.ID, rec.OrderID, rec.RiderID, string(rec.Action),
			string(rec.Status), rec.Actor, rec.Comment, rec.OccurredAt)
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
			}
			return fmt.Errorf("insert audit row for order %q: %w", rec.OrderID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListByOrder returns the trail for one order, oldest first.
func (r *AuditRepo) ListByOrder(ctx context.Context, orderID string) ([]domain.AuditRecord, error) {
	rows, err := r.db.Query(ctx, `
        SELECT id, order_id, rider_id, action, status, actor, comment, occurred_at
        FROM audit_trail
        WHERE order_id = $1
        ORDER BY occurred_at ASC, id ASC
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("list audit trail for order %q: %w", orderID, err)
	}
	defer rows.Close()

	var out []domain.AuditRecord
	for rows.Next() {
		var rec domain.AuditRecord
		var action, status string
		if err := rows.Scan(&rec.ID, &rec.OrderID, &rec.RiderID, &action,
			&status, &rec.Actor, &rec.Comment, &rec.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan audit row: %w", err)
		}
		rec.Action = domain.AuditAction(action)
		rec.Status = domain.OrderStatus(status)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit rows: %w", err)
	}
	return out, nil
}

// CountByAction returns how many trail rows each action holds for one order.
func (r *AuditRepo) CountByAction(ctx context.Context, orderID string) (map[domain.AuditAction]int, error) {
	rows, err := r.db.Query(ctx, `
        SELECT action, COUNT(*)
        FROM audit_trail
        WHERE order_id = $1
        GROUP BY action
    `, orderID)
	if err != nil {
		return nil, fmt.Errorf("count audit trail for order %q: %w", orderID, err)
	}
	defer rows.Close()

	out := make(map[domain.AuditAction]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scan audit count: %w", err)
		}
		out[domain.AuditAction(action)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit counts: %w", err)
	}
	return out, nil
}
