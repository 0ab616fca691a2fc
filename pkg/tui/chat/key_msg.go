package chat

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/killallgit/storychat/pkg/chat"
)

func handleKeyMsg(m chatModel, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.numEscPress++
		if m.numEscPress == 2 {
			m.textarea.Reset()
			m.state = chat.SetDraft(m.state, "")
			m.numEscPress = 0
			m.resizeComposer()
		}
		return m, nil
	case tea.KeyEnter:
		if !msg.Alt {
			m.numEscPress = 0
			return m.submit()
		}
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.numEscPress = 0

	// The composer is read-only while a reply is awaited
	if m.state.Busy {
		return m, nil
	}

	// Let the textarea handle the key
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.state = chat.SetDraft(m.state, m.textarea.Value())
	m.resizeComposer()

	return m, cmd
}

// submit sends the draft if it is non-blank and nothing is in flight
func (m chatModel) submit() (tea.Model, tea.Cmd) {
	next, text, ok := chat.BeginSubmit(m.state)
	if !ok {
		return m, nil
	}
	m.state = next

	m.textarea.Reset()
	m.textarea.Blur()
	m.resizeComposer()
	m.updateViewportContent(true)

	statusCmd := m.syncStatus()
	return m, tea.Batch(
		sendCmd(m.ctx, m.sender, text),
		m.spinner.Tick,
		statusCmd,
	)
}
