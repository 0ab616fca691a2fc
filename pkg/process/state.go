package process

// State represents what the chat view is currently waiting on
type State string

const (
	// StateIdle indicates nothing is in flight
	StateIdle State = ""

	// StateSending indicates a message has been posted and the reply is awaited
	StateSending State = "sending"

	// StateIllustrating indicates the reply arrived and images are still loading
	StateIllustrating State = "illustrating"
)

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}

// GetIcon returns the appropriate icon for a given process state
func (s State) GetIcon() string {
	switch s {
	case StateSending:
		return "↑"
	case StateIllustrating:
		return "🖼"
	default:
		return ""
	}
}

// GetDisplayName returns a human-readable name for the state
func (s State) GetDisplayName() string {
	switch s {
	case StateSending:
		return "Waiting for reply"
	case StateIllustrating:
		return "Generating image"
	case StateIdle:
		return "Idle"
	default:
		return ""
	}
}

// For derives the state from the busy flag and the number of images still
// loading. A pending reply outranks pending images.
func For(busy bool, pendingImages int) State {
	switch {
	case busy:
		return StateSending
	case pendingImages > 0:
		return StateIllustrating
	default:
		return StateIdle
	}
}
