package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/storychat/pkg/tui/theme"
)

func (m StatusModel) View() string {
	// Hide the entire status bar when not active
	if !m.isActive || m.width == 0 {
		return ""
	}

	var components []string

	components = append(components, m.spinner.View())

	if m.status != "" {
		statusStyle := lipgloss.NewStyle().Foreground(theme.ColorBase05)
		components = append(components, statusStyle.Render(m.status))
	}

	if m.timer > 0 {
		minutes := int(m.timer.Minutes())
		seconds := int(m.timer.Seconds()) % 60
		timerText := fmt.Sprintf("%02d:%02d", minutes, seconds)
		timerStyle := lipgloss.NewStyle().Foreground(theme.ColorBase04)
		components = append(components, timerStyle.Render(timerText))
	}

	if m.icon != "" {
		iconStyle := lipgloss.NewStyle().Foreground(theme.ColorOrange)
		components = append(components, iconStyle.Render(m.icon))
	}

	if m.pendingImages > 0 {
		label := "image"
		if m.pendingImages > 1 {
			label = "images"
		}
		imageText := fmt.Sprintf("%d %s loading", m.pendingImages, label)
		components = append(components, lipgloss.NewStyle().Foreground(theme.ColorBase04).Render(imageText))
	}

	separator := lipgloss.NewStyle().Foreground(theme.ColorBase03).Render(" | ")
	statusLine := ""
	for i, component := range components {
		if i > 0 {
			statusLine += separator
		}
		statusLine += component
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Background(theme.ColorBase01).
		Padding(0, 1).
		Render(statusLine)
}
