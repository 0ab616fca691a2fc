package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/killallgit/storychat/pkg/chat"
	"github.com/killallgit/storychat/pkg/storyapi"
)

// FakeSender implements storyapi.Sender with scripted replies
type FakeSender struct {
	mu           sync.Mutex
	replies      []chat.Reply
	currentIndex int
	callCount    int
	lastMessage  string
	errorOnCall  int // If > 0, fail this call number
	delay        time.Duration
}

// NewFakeSender creates a sender that cycles through replies
func NewFakeSender(replies ...chat.Reply) *FakeSender {
	return &FakeSender{replies: replies}
}

// Send implements storyapi.Sender
func (f *FakeSender) Send(ctx context.Context, message string) (chat.Reply, error) {
	f.mu.Lock()
	f.callCount++
	f.lastMessage = message
	call := f.callCount
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return chat.Reply{}, fmt.Errorf("%w: %v", storyapi.ErrRequestFailed, ctx.Err())
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errorOnCall > 0 && call == f.errorOnCall {
		return chat.Reply{}, fmt.Errorf("%w: fake error on call %d", storyapi.ErrRequestFailed, call)
	}
	if len(f.replies) == 0 {
		return chat.Reply{}, fmt.Errorf("%w: no replies configured", storyapi.ErrRequestFailed)
	}

	reply := f.replies[f.currentIndex]
	f.currentIndex = (f.currentIndex + 1) % len(f.replies)
	return reply, nil
}

// SetErrorOnCall makes call number n fail
func (f *FakeSender) SetErrorOnCall(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorOnCall = n
}

// SetDelay simulates a slow backend
func (f *FakeSender) SetDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *FakeSender) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

func (f *FakeSender) LastMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastMessage
}

// Reset clears the call history
func (f *FakeSender) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.currentIndex = 0
	f.callCount = 0
	f.lastMessage = ""
	f.errorOnCall = 0
}
