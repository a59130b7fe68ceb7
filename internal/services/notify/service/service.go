// Package service holds the notice delivery drivers
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	perr "lostfound/internal/platform/errors"
	"lostfound/internal/services/notify/domain"
)

// Driver names accepted by NOTIFY_DRIVER
const (
	DriverLog     = "log"
	DriverStream  = "stream"
	DriverSlack   = "slack"
	DriverDiscord = "discord"
)

// Multi delivers to every dispatcher in order and joins their errors
type Multi []domain.Dispatcher

// Dispatch implements domain.Dispatcher
func (m Multi) Dispatch(ctx context.Context, n domain.Notice) error {
	var errs []error
	for _, d := range m {
		if err := d.Dispatch(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Text renders the human readable body shared by the chat drivers
func Text(n domain.Notice) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A found item may be yours: %s (match %d%%)", n.ItemName, n.Score)
	if n.LocationLabel != "" {
		fmt.Fprintf(&sb, "\nFound at: %s", n.LocationLabel)
	}
	if n.ImageRef != "" {
		fmt.Fprintf(&sb, "\nPhoto: %s", n.ImageRef)
	}
	fmt.Fprintf(&sb, "\nRequest %s, item %s", n.RequestID, n.ItemID)
	return sb.String()
}

func requireRecipient(n domain.Notice) error {
	if strings.TrimSpace(n.RecipientAddress) == "" {
		return perr.WithField(perr.InvalidArgf("notice for request %s has no recipient address", n.RequestID), "recipient_address")
	}
	return nil
}
