package status

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/storychat/pkg/process"
	"github.com/killallgit/storychat/pkg/tui/theme"
)

// StatusModel represents the status bar component
type StatusModel struct {
	spinner       spinner.Model
	status        string        // "Waiting for reply", "Generating image"
	timer         time.Duration // Elapsed time
	icon          string
	pendingImages int
	processState  process.State
	startTime     time.Time
	isActive      bool
	generation    int // bumped on every Start, tags the timer ticks
	width         int
}

// NewStatusModel creates a new status bar model
func NewStatusModel() StatusModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.ColorViolet)

	return StatusModel{
		spinner:  s,
		isActive: false,
	}
}

// Active reports whether the bar is currently shown
func (m StatusModel) Active() bool {
	return m.isActive
}

// State returns the process state being displayed
func (m StatusModel) State() process.State {
	return m.processState
}
