package chat

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FallbackText is shown in place of a reply when the outbound call fails.
const FallbackText = "Sorry, something went wrong. Please try again."

type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	ImageURL  string    `json:"image_url,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Reply is the decoded result of one outbound call.
type Reply struct {
	Text     string
	ImageURL string
}

func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		IsUser:    true,
		Timestamp: time.Now(),
	}
}

func NewReplyMessage(reply Reply) Message {
	return Message{
		ID:        uuid.NewString(),
		Text:      reply.Text,
		ImageURL:  strings.TrimSpace(reply.ImageURL),
		Timestamp: time.Now(),
	}
}

func NewFallbackMessage() Message {
	return NewReplyMessage(Reply{Text: FallbackText})
}

func (m Message) HasImage() bool {
	return m.ImageURL != ""
}

func (m Message) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}
