package chat

import "strings"

// State is the whole chat view state: transcript, composer and image tracker.
// Transitions never mutate their input; each returns a new State.
type State struct {
	Transcript []Message
	Draft      string
	Busy       bool
	ImageLoads map[string]bool // message ID -> pending
}

func NewState() State {
	return State{
		Transcript: make([]Message, 0),
		ImageLoads: make(map[string]bool),
	}
}

// SetDraft replaces the composer draft.
func SetDraft(s State, draft string) State {
	next := clone(s)
	next.Draft = draft
	return next
}

// BeginSubmit starts a turn from the current draft. It returns the trimmed
// text to send and true, or the unchanged state and false when the draft is
// blank or a call is already in flight.
func BeginSubmit(s State) (State, string, bool) {
	text := strings.TrimSpace(s.Draft)
	if text == "" || s.Busy {
		return s, "", false
	}

	next := clone(s)
	next.Draft = ""
	next.Transcript = appendMessage(s.Transcript, NewUserMessage(text))
	next.Busy = true
	return next, text, true
}

// CompleteSubmit settles the in-flight call with a reply. The reply message
// gets its tracker entry in the same transition that appends it.
func CompleteSubmit(s State, reply Reply) State {
	if !s.Busy {
		return s
	}

	msg := NewReplyMessage(reply)
	next := clone(s)
	next.Transcript = appendMessage(s.Transcript, msg)
	if msg.HasImage() {
		next.ImageLoads[msg.ID] = true
	}
	next.Busy = false
	return next
}

// FailSubmit settles the in-flight call with the fallback message.
func FailSubmit(s State) State {
	if !s.Busy {
		return s
	}

	next := clone(s)
	next.Transcript = appendMessage(s.Transcript, NewFallbackMessage())
	next.Busy = false
	return next
}

// Settle applies the outcome of the in-flight call: the reply on success, the
// fallback message on any error.
func Settle(s State, reply Reply, err error) State {
	if err != nil {
		return FailSubmit(s)
	}
	return CompleteSubmit(s, reply)
}

// SettleImage marks the image of message id as no longer loading. Load
// success and load failure both end here.
func SettleImage(s State, id string) State {
	if pending, ok := s.ImageLoads[id]; !ok || !pending {
		return s
	}

	next := clone(s)
	next.ImageLoads[id] = false
	return next
}

func appendMessage(messages []Message, msg Message) []Message {
	result := make([]Message, len(messages)+1)
	copy(result, messages)
	result[len(messages)] = msg
	return result
}

func clone(s State) State {
	loads := make(map[string]bool, len(s.ImageLoads))
	for id, pending := range s.ImageLoads {
		loads[id] = pending
	}
	return State{
		Transcript: s.Transcript,
		Draft:      s.Draft,
		Busy:       s.Busy,
		ImageLoads: loads,
	}
}
