package service

import (
	"context"

	perr "lostfound/internal/platform/errors"
	"lostfound/internal/services/notify/domain"

	"github.com/slack-go/slack"
)

// SlackAPI is the slack-go subset the slack driver needs; *slack.Client satisfies it
type SlackAPI interface {
	GetUserByEmailContext(ctx context.Context, email string) (*slack.User, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Slack direct messages the workspace user whose email is the recipient address
type Slack struct {
	api SlackAPI
}

// NewSlack returns a Slack driver
func NewSlack(api SlackAPI) *Slack {
	if api == nil {
		panic("notify.Slack requires a slack client")
	}
	return &Slack{api: api}
}

// Dispatch implements domain.Dispatcher
func (d *Slack) Dispatch(ctx context.Context, n domain.Notice) error {
	if err := requireRecipient(n); err != nil {
		return err
	}
	u, err := d.api.GetUserByEmailContext(ctx, n.RecipientAddress)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDelivery, "slack lookup %s", n.RecipientAddress)
	}
	if _, _, err := d.api.PostMessageContext(ctx, u.ID, slack.MsgOptionText(Text(n), false)); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDelivery, "slack post to %s", u.ID)
	}
	return nil
}
