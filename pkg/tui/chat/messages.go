package chat

import (
	"github.com/killallgit/storychat/pkg/chat"
	"github.com/killallgit/storychat/pkg/images"
)

// replyMsg settles the in-flight outbound call
type replyMsg struct {
	reply chat.Reply
	err   error
}

// imageLoadedMsg settles the image of one message. result is nil when the
// load failed or image fetching is disabled.
type imageLoadedMsg struct {
	id     string
	result *images.Result
	err    error
}
