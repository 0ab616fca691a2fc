package status

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m StatusModel) Init() tea.Cmd {
	return nil
}

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if !m.isActive {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StartMsg:
		wasActive := m.isActive
		m.isActive = true
		m.processState = msg.State
		m.icon = msg.State.GetIcon()
		m.status = msg.State.GetDisplayName()
		m.pendingImages = msg.PendingImages
		if wasActive {
			return m, nil
		}
		m.startTime = time.Now()
		m.timer = 0
		m.generation++
		return m, tea.Batch(
			m.spinner.Tick,
			tickEvery(m.generation),
		)

	case SetProcessStateMsg:
		m.processState = msg.State
		m.icon = msg.State.GetIcon()
		m.status = msg.State.GetDisplayName()
		m.pendingImages = msg.PendingImages
		return m, nil

	case StopMsg:
		m.isActive = false
		m.status = ""
		m.icon = ""
		m.timer = 0
		m.pendingImages = 0
		m.processState = ""
		return m, nil

	case TickMsg:
		if !m.isActive || msg.generation != m.generation {
			return m, nil
		}
		m.timer = time.Since(m.startTime)
		return m, tickEvery(m.generation)
	}

	return m, nil
}

// tickEvery returns a command that sends a tick message every second
func tickEvery(generation int) tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, generation: generation}
	})
}
