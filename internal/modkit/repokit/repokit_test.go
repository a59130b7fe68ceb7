package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"lostfound/internal/platform/store"
	"lostfound/internal/platform/testkit"
)

type fakeQ struct{ execs int }

func (f *fakeQ) Exec(context.Context, string, ...any) (store.CommandTag, error) {
	f.execs++
	return nil, nil
}
func (f *fakeQ) Query(context.Context, string, ...any) (store.Rows, error) { return nil, nil }
func (f *fakeQ) QueryRow(context.Context, string, ...any) store.Row        { return nil }

type fakeTx struct {
	fakeQ
	calls int
}

func (f *fakeTx) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	f.calls++
	return fn(&f.fakeQ)
}

func TestBinder(t *testing.T) {
	t.Parallel()

	b := BindFunc[*fakeQ](func(q Queryer) *fakeQ { return q.(*fakeQ) })
	q := &fakeQ{}
	if got := MustBind[*fakeQ](b, q); got != q {
		t.Fatalf("MustBind did not pass the queryer through")
	}
	testkit.MustPanic(t, func() { _ = MustBind[*fakeQ](b, nil) })
}

func TestWithTx(t *testing.T) {
	t.Parallel()

	tx := &fakeTx{}
	err := WithTx(context.Background(), tx, func(ctx context.Context, q Queryer) error {
		_, err := q.Exec(ctx, "insert")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if tx.calls != 1 || tx.execs != 1 {
		t.Fatalf("calls=%d execs=%d", tx.calls, tx.execs)
	}

	boom := errors.New("boom")
	if err := WithTx(context.Background(), tx, func(context.Context, Queryer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}

type fakeGuard struct {
	ctx context.Context
	err error
}

func (f *fakeGuard) Guard(ctx context.Context) error {
	f.ctx = ctx
	return f.err
}

func panicMsg(fn func()) (msg string) {
	defer func() {
		switch x := recover().(type) {
		case string:
			msg = x
		case error:
			msg = x.Error()
		}
	}()
	fn()
	return ""
}

func TestMustGuard(t *testing.T) {
	t.Parallel()

	if msg := panicMsg(func() { MustGuard(context.Background(), nil, 0) }); msg != "repokit: nil Guarder" {
		t.Fatalf("nil guard panic = %q", msg)
	}

	fg := &fakeGuard{}
	start := time.Now()
	MustGuard(context.Background(), fg, 0)
	dl, ok := fg.ctx.Deadline()
	if !ok || dl.Sub(start) < 4*time.Second || dl.Sub(start) > 6*time.Second {
		t.Fatalf("default deadline not about 5s: %v %v", dl.Sub(start), ok)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	MustGuard(ctx, fg, time.Second)
	if dl, _ := fg.ctx.Deadline(); dl.Sub(start) < 30*time.Second {
		t.Fatalf("caller deadline replaced: %v", dl.Sub(start))
	}

	fg.err = errors.New("pg down")
	msg := panicMsg(func() { MustGuard(context.Background(), fg, time.Second) })
	if !strings.Contains(msg, "storage not ready: pg down") {
		t.Fatalf("guard panic = %q", msg)
	}
}
