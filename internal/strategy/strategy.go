// Package strategy implements the multi-order sequences: the grid ladder,
// TWAP slicing and the OCO pair. Each run validates its raw inputs, then
// submits a sequence of independent, non-atomic exchange calls; consistency
// across steps is best-effort.
package strategy

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"futures-orders/internal/exchange"
	"futures-orders/internal/orderlog"
)

// Deps bundles the collaborators of every strategy run. Sleep and Printf are
// injectable for tests and default to a context-aware wait and stdout.
type Deps struct {
	Exchange exchange.Exchange
	Log      *orderlog.Logger
	Sleep    func(ctx context.Context, d time.Duration) error
	Printf   func(format string, args ...interface{})
}

func (d Deps) sleep(ctx context.Context, dur time.Duration) error {
	if d.Sleep != nil {
		return d.Sleep(ctx, dur)
	}
	return waitFor(ctx, dur)
}

func (d Deps) printf(format string, args ...interface{}) {
	if d.Printf != nil {
		d.Printf(format, args...)
		return
	}
	fmt.Printf(format, args...)
}

func (d Deps) connect(ctx context.Context) error {
	if err := d.Exchange.Ping(ctx); err != nil {
		d.Log.Error("connectivity check failed", zap.Error(err))
		return fmt.Errorf("connectivity check failed: %w", err)
	}
	return nil
}

func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
