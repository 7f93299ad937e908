// Package notify delivers report text to the Slack channel.
package notify

import (
	"context"
	"fmt"

	"github.com/slack-go/slack"
)

// MaxMessageLen is the longest body posted as a single message. Anything
// longer is split into sequential "Part i/N" messages.
const MaxMessageLen = 4000

// Notifier is the delivery sink consumed by the orchestrator.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type SlackNotifier struct {
	client    *slack.Client
	channelID string
}

func NewSlackNotifier(botToken, channelID string) *SlackNotifier {
	return &SlackNotifier{client: slack.New(botToken), channelID: channelID}
}

func (n *SlackNotifier) Send(ctx context.Context, text string) error {
	for i, msg := range messages(text) {
		_, _, err := n.client.PostMessageContext(ctx, n.channelID, slack.MsgOptionText(msg, false))
		if err != nil {
			return fmt.Errorf("post message %d: %w", i+1, err)
		}
	}
	return nil
}

// messages returns the bodies to post, in order. Short texts go out
// as-is; long texts are chunked and each chunk gets a part header.
func messages(text string) []string {
	parts := Split(text, MaxMessageLen)
	if len(parts) == 1 {
		return parts
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = fmt.Sprintf("Part %d/%d:\n\n%s", i+1, len(parts), p)
	}
	return out
}

// Split cuts text into rune-wise chunks of at most limit.
func Split(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}
	var parts []string
	for len(runes) > 0 {
		n := limit
		if n > len(runes) {
			n = len(runes)
		}
		parts = append(parts, string(runes[:n]))
		runes = runes[n:]
	}
	return parts
}
