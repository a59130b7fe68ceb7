// Package repo stores match run telemetry in clickhouse
package repo

import (
	"context"

	"lostfound/internal/platform/store"
	"lostfound/internal/services/matching/domain"
)

// Table is the clickhouse table the sink appends to:
//
//	CREATE TABLE match_runs (
//	  run_id UUID, item_id UUID,
//	  scanned UInt32, matched UInt32, notified UInt32, failed UInt32,
//	  threshold UInt8, duration_ms UInt64, created_at DateTime64(3, 'UTC')
//	) ENGINE = MergeTree ORDER BY (created_at, item_id)
const Table = "match_runs"

// CH is a domain.RunSink on the clickhouse seam
type CH struct {
	ch store.Clickhouse
}

// NewCH returns a sink writing to ch; nil ch yields a sink that drops rows
func NewCH(ch store.Clickhouse) domain.RunSink {
	if ch == nil {
		return Nop{}
	}
	return &CH{ch: ch}
}

// Record implements domain.RunSink
func (r *CH) Record(ctx context.Context, rec domain.RunRecord) error {
	return r.ch.Insert(ctx, Table, [][]any{Row(rec)})
}

// Row orders rec the way match_runs declares its columns
func Row(rec domain.RunRecord) []any {
	return []any{
		rec.RunID,
		rec.ItemID,
		uint32(rec.Scanned),
		uint32(rec.Matched),
		uint32(rec.Notified),
		uint32(rec.Failed),
		uint8(rec.Threshold),
		uint64(rec.Duration.Milliseconds()),
		rec.CreatedAt,
	}
}

// Nop drops telemetry
type Nop struct{}

// Record implements domain.RunSink
func (Nop) Record(context.Context, domain.RunRecord) error { return nil }
