package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"lostfound/internal/platform/store"
	"lostfound/internal/services/matching/domain"

	"github.com/google/uuid"
)

type fakeCH struct {
	table string
	rows  [][]any
	err   error
}

func (f *fakeCH) Insert(_ context.Context, table string, rows [][]any) error {
	f.table, f.rows = table, rows
	return f.err
}

func (f *fakeCH) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, errors.New("not used")
}

func (f *fakeCH) Close() error { return nil }

func TestCHRecord(t *testing.T) {
	t.Parallel()

	f := &fakeCH{}
	sink := NewCH(f)
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	rec := domain.RunRecord{
		RunID:     uuid.New(),
		ItemID:    uuid.New(),
		Scanned:   40,
		Matched:   3,
		Notified:  2,
		Failed:    1,
		Threshold: 60,
		Duration:  1500 * time.Millisecond,
		CreatedAt: at,
	}
	if err := sink.Record(context.Background(), rec); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if f.table != Table || len(f.rows) != 1 {
		t.Fatalf("insert %q rows %d", f.table, len(f.rows))
	}
	row := f.rows[0]
	if len(row) != 9 {
		t.Fatalf("row has %d columns", len(row))
	}
	if row[0] != rec.RunID || row[2] != uint32(40) || row[6] != uint8(60) || row[7] != uint64(1500) || row[8] != at {
		t.Fatalf("row = %#v", row)
	}

	f.err = errors.New("ch down")
	if err := sink.Record(context.Background(), rec); err == nil {
		t.Fatalf("expected insert error")
	}
}

func TestNewCHNil(t *testing.T) {
	t.Parallel()
	if _, ok := NewCH(nil).(Nop); !ok {
		t.Fatalf("nil clickhouse should give the nop sink")
	}
	if err := (Nop{}).Record(context.Background(), domain.RunRecord{}); err != nil {
		t.Fatalf("nop: %v", err)
	}
}
