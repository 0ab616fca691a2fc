package chat

import (
	"fmt"
)

func (m chatModel) View() string {
	inputStyle := m.styles.InputBlurred
	if m.textarea.Focused() {
		inputStyle = m.styles.InputFocused
	}

	view := fmt.Sprintf(
		"%s%s%s",
		m.viewport.View(),
		"\n",
		inputStyle.Render(m.textarea.View()),
	)

	if statusView := m.statusBar.View(); statusView != "" {
		view += "\n" + statusView
	}
	return view
}
