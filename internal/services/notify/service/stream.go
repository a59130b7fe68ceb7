package service

import (
	"context"
	"encoding/json"

	perr "lostfound/internal/platform/errors"
	"lostfound/internal/services/notify/domain"

	"github.com/redis/go-redis/v9"
)

// DefaultStreamKey is the outbox stream notices are appended to
const DefaultStreamKey = "lostfound:notices"

// Streamer is the go-redis subset the stream driver needs
type Streamer interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Stream appends notices to a redis stream for an out of process mailer
type Stream struct {
	rdb    Streamer
	key    string
	maxLen int64
}

// NewStream returns a Stream driver writing to key, trimmed to about maxLen entries (0 = no trim)
func NewStream(rdb Streamer, key string, maxLen int64) *Stream {
	if rdb == nil {
		panic("notify.Stream requires a redis client")
	}
	if key == "" {
		key = DefaultStreamKey
	}
	return &Stream{rdb: rdb, key: key, maxLen: maxLen}
}

// Dispatch implements domain.Dispatcher
func (d *Stream) Dispatch(ctx context.Context, n domain.Notice) error {
	if err := requireRecipient(n); err != nil {
		return err
	}
	body, err := json.Marshal(n)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeJSON, "encode notice")
	}
	args := &redis.XAddArgs{
		Stream: d.key,
		Values: map[string]any{
			"recipient":  n.RecipientAddress,
			"request_id": n.RequestID.String(),
			"item_id":    n.ItemID.String(),
			"data":       string(body),
		},
	}
	if d.maxLen > 0 {
		args.MaxLen = d.maxLen
		args.Approx = true
	}
	if _, err := d.rdb.XAdd(ctx, args).Result(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDelivery, "xadd %s", d.key)
	}
	return nil
}
