package status

import (
	"time"

	"github.com/killallgit/storychat/pkg/process"
)

// StartMsg activates the status bar in the given state
type StartMsg struct {
	State         process.State
	PendingImages int
}

// SetProcessStateMsg updates the state of an active status bar
type SetProcessStateMsg struct {
	State         process.State
	PendingImages int
}

// StopMsg hides the status bar
type StopMsg struct{}

// TickMsg updates the timer. Ticks from an earlier Start are dropped.
type TickMsg struct {
	Time       time.Time
	generation int
}
