package service

import (
	"context"

	"lostfound/internal/platform/logger"
	"lostfound/internal/services/notify/domain"
)

// Log writes one info line per notice
type Log struct {
	log *logger.Logger
}

// NewLog returns a Log driver; nil l uses the notify component logger
func NewLog(l *logger.Logger) *Log {
	if l == nil {
		l = logger.Named("notify")
	}
	return &Log{log: l}
}

// Dispatch implements domain.Dispatcher
func (d *Log) Dispatch(_ context.Context, n domain.Notice) error {
	if err := requireRecipient(n); err != nil {
		return err
	}
	d.log.Info().
		Str("recipient", n.RecipientAddress).
		Str("item_name", n.ItemName).
		Int("score", n.Score).
		Str("request_id", n.RequestID.String()).
		Str("item_id", n.ItemID.String()).
		Msg("match notice")
	return nil
}
