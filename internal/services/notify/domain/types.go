// Package domain holds the notice contract between the matching engine and delivery drivers
package domain

import (
	"context"

	"github.com/google/uuid"
)

// Notice tells one requester that a found item may be theirs
type Notice struct {
	RecipientAddress string    `json:"recipient_address"`
	ItemName         string    `json:"item_name"`
	Score            int       `json:"score"`
	LocationLabel    string    `json:"location_label,omitempty"`
	ImageRef         string    `json:"image_ref,omitempty"`
	RequestID        uuid.UUID `json:"request_id"`
	ItemID           uuid.UUID `json:"item_id"`
}

// Dispatcher delivers a notice. Implementations must be safe for concurrent use
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notice) error
}

// DispatcherFunc adapts a function to Dispatcher
type DispatcherFunc func(ctx context.Context, n Notice) error

// Dispatch implements Dispatcher
func (f DispatcherFunc) Dispatch(ctx context.Context, n Notice) error { return f(ctx, n) }
