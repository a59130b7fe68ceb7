package store

import (
	"context"
	"time"

	perr "lostfound/internal/platform/errors"
)

// txAttempts bounds RunTx retries on serialization failures and deadlocks
const txAttempts = 3

// RunTx runs fn inside a transaction and retries the whole transaction when
// postgres reports transient contention. fn must be safe to run more than once
func RunTx(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	var err error
	for i := 0; i < txAttempts; i++ {
		err = tx.Tx(ctx, func(q RowQuerier) error {
			return fn(ctx, q)
		})
		if err == nil || !perr.IsRetryable(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(i+1) * 25 * time.Millisecond):
		}
	}
	return err
}
