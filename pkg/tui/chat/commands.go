package chat

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/killallgit/storychat/pkg/images"
	"github.com/killallgit/storychat/pkg/storyapi"
)

// sendCmd performs the outbound call for one submitted message
func sendCmd(ctx context.Context, sender storyapi.Sender, text string) tea.Cmd {
	return func() tea.Msg {
		if sender == nil {
			return replyMsg{err: fmt.Errorf("%w: no sender configured", storyapi.ErrRequestFailed)}
		}
		reply, err := sender.Send(ctx, text)
		return replyMsg{reply: reply, err: err}
	}
}

// loadImageCmd fetches the image of message id. Without a fetcher the image
// settles straight away.
func loadImageCmd(ctx context.Context, fetcher images.Fetcher, id, url string) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return imageLoadedMsg{id: id}
		}
		result, err := fetcher.Load(ctx, url)
		return imageLoadedMsg{id: id, result: result, err: err}
	}
}
