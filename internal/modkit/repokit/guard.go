package repokit

import (
	"context"
	"fmt"
	"time"
)

// DefaultGuardTimeout bounds the readiness check when the caller set no deadline
const DefaultGuardTimeout = 5 * time.Second

// Guarder reports whether every backing seam answers
type Guarder interface {
	Guard(context.Context) error
}

// MustGuard panics unless st answers within timeout. A ctx deadline wins over timeout
func MustGuard(ctx context.Context, st Guarder, timeout time.Duration) {
	if st == nil {
		panic("repokit: nil Guarder")
	}
	if timeout <= 0 {
		timeout = DefaultGuardTimeout
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("storage not ready: %w", err))
	}
}
