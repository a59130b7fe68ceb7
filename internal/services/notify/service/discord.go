package service

import (
	"context"

	perr "lostfound/internal/platform/errors"
	"lostfound/internal/services/notify/domain"

	"github.com/bwmarrin/discordgo"
)

// DiscordAPI is the discordgo subset the discord driver needs; *discordgo.Session satisfies it
type DiscordAPI interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Discord posts notices to the lost and found desk channel
type Discord struct {
	api     DiscordAPI
	channel string
}

// NewDiscord returns a Discord driver posting to channel
func NewDiscord(api DiscordAPI, channel string) *Discord {
	if api == nil {
		panic("notify.Discord requires a discord session")
	}
	if channel == "" {
		panic("notify.Discord requires a channel id")
	}
	return &Discord{api: api, channel: channel}
}

// Dispatch implements domain.Dispatcher. The desk channel is shared so the recipient goes in the text
func (d *Discord) Dispatch(ctx context.Context, n domain.Notice) error {
	content := Text(n)
	if n.RecipientAddress != "" {
		content = "For " + n.RecipientAddress + ": " + content
	}
	if _, err := d.api.ChannelMessageSend(d.channel, content, discordgo.WithContext(ctx)); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeDelivery, "discord post to %s", d.channel)
	}
	return nil
}
