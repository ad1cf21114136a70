package notifications

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type discordNotifier struct {
	send func(content string) error
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) Notifier {
	return &discordNotifier{
		send: func(content string) error {
			_, err := session.ChannelMessageSend(channelID, content)
			return err
		},
	}
}

func (n *discordNotifier) Notify(text string) error {
	if err := n.send(text); err != nil {
		return fmt.Errorf("failed to send discord message: %w", err)
	}
	return nil
}
