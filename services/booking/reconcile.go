// File: services/booking/reconcile.go
package booking

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const defaultPendingTTLMin = 30

// ReleaseStalePending sweeps bookings stuck in pending/pending past the TTL:
// each is cancelled and its slot returned to the open pool. A charge that
// never came back (network partition to the gateway) otherwise strands the
// slot forever.
func (wf *DefaultWorkflow) ReleaseStalePending(ctx context.Context) (int, error) {
	ttl := wf.PendingTTL
	if ttl <= 0 {
		ttl = defaultPendingTTLMin
	}
	cutoff := time.Now().Add(-time.Duration(ttl) * time.Minute)

	stale, err := wf.Ledger.ListStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	released := 0
	for _, record := range stale {
		cancelled, err := wf.Ledger.CancelIfPending(ctx, record.ID, record.UserID)
		if err != nil {
			wf.Logger.Warn("reconcile: skipping booking",
				zap.String("booking", record.ID), zap.Error(err))
			continue
		}
		if !cancelled {
			// Raced with a confirmation or another sweep; leave it alone.
			continue
		}
		if err := wf.Offerings.ReleaseSlot(ctx, record.Offering, record.Slot); err != nil {
			wf.Logger.Error("reconcile: failed to release slot",
				zap.String("booking", record.ID), zap.Time("slot", record.Slot), zap.Error(err))
			continue
		}
		released++
	}

	if released > 0 {
		wf.Logger.Info("Reconciliation sweep released stale bookings", zap.Int("count", released))
	}
	return released, nil
}
