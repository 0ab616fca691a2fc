package headless

import (
	"context"
	"fmt"

	"github.com/killallgit/storychat/pkg/chat"
	"github.com/killallgit/storychat/pkg/images"
	"github.com/killallgit/storychat/pkg/logger"
	"github.com/killallgit/storychat/pkg/storyapi"
)

// runner drives one turn through the same transitions as the chat view
type runner struct {
	sender  storyapi.Sender
	fetcher images.Fetcher
	output  *Output
	state   chat.State
}

func newRunner(sender storyapi.Sender, fetcher images.Fetcher, output *Output) *runner {
	return &runner{
		sender:  sender,
		fetcher: fetcher,
		output:  output,
		state:   chat.NewState(),
	}
}

// run executes a single prompt in headless mode
func (r *runner) run(ctx context.Context, prompt string) error {
	if r.sender == nil {
		return fmt.Errorf("no sender configured")
	}

	state, text, ok := chat.BeginSubmit(chat.SetDraft(r.state, prompt))
	if !ok {
		return fmt.Errorf("prompt cannot be empty in headless mode")
	}
	logger.Debug("User prompt: %s", text)

	reply, err := r.sender.Send(ctx, text)
	if err != nil {
		r.output.Error(fmt.Sprintf("Chat request failed: %v", err))
	}
	r.state = chat.Settle(state, reply, err)

	last, _ := chat.GetLastMessage(r.state)
	r.output.Reply(last.Text)

	if chat.ImagePending(r.state, last.ID) {
		r.output.Image(last.ImageURL)
		r.loadImage(ctx, last)
		r.state = chat.SettleImage(r.state, last.ID)
	}

	logger.Debug("Turn complete (messages: %d, pending images: %d)",
		chat.GetMessageCount(r.state), len(chat.PendingImages(r.state)))
	return nil
}

func (r *runner) loadImage(ctx context.Context, msg chat.Message) {
	if r.fetcher == nil {
		return
	}

	result, err := r.fetcher.Load(ctx, msg.ImageURL)
	if err != nil {
		logger.Warn("Image for message %s failed to load: %v", msg.ID, err)
		r.output.ImageFailed()
		return
	}
	r.output.ImageLoaded(result.Caption())
}
