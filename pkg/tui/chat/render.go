package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/storychat/pkg/chat"
)

const (
	generatingImageText  = "Generating image..."
	imageUnavailableText = "[image unavailable]"
)

func (m chatModel) renderTranscript() string {
	var rendered []string

	// Calculate available width for wrapping
	availableWidth := m.viewport.Width
	if availableWidth <= 0 {
		availableWidth = 80 // Default fallback
	}
	bubbleWidth := availableWidth * 7 / 10
	if bubbleWidth < 10 {
		bubbleWidth = availableWidth
	}

	for _, msg := range chat.GetMessages(m.state) {
		rendered = append(rendered, m.renderMessage(msg, availableWidth, bubbleWidth))
	}

	if m.state.Busy {
		rendered = append(rendered, m.spinner.View())
	}

	return strings.Join(rendered, "\n\n")
}

func (m chatModel) renderMessage(msg chat.Message, availableWidth, bubbleWidth int) string {
	if msg.IsUser {
		bubble := renderBubble(m.styles.UserMessage, msg.Text, bubbleWidth)
		return lipgloss.PlaceHorizontal(availableWidth, lipgloss.Right, bubble)
	}

	style := m.styles.AssistantMessage
	text := msg.Text
	switch {
	case text == chat.FallbackText && !msg.HasImage():
		style = m.styles.FallbackMessage
	case m.formatter != nil && !msg.IsEmpty():
		text = m.formatter.Format(text, bubbleWidth-style.GetHorizontalFrameSize())
	}

	parts := []string{renderBubble(style, text, bubbleWidth)}
	if msg.HasImage() {
		parts = append(parts, m.renderImage(msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderImage draws the image slot under a reply
func (m chatModel) renderImage(msg chat.Message) string {
	if chat.ImagePending(m.state, msg.ID) {
		return m.spinner.View() + " " + m.styles.ImagePlaceholder.Render(generatingImageText)
	}

	preview, ok := m.previews[msg.ID]
	switch {
	case ok && preview.failed:
		return m.styles.ImageMissing.Render(imageUnavailableText)
	case ok:
		return preview.art + "\n" + m.styles.ImageCaption.Render(preview.caption)
	default:
		// Settled without fetching
		return m.styles.ImageCaption.Render("[image] " + msg.ImageURL)
	}
}

// renderBubble sizes a message to its content, capped at maxWidth
func renderBubble(style lipgloss.Style, text string, maxWidth int) string {
	width := lipgloss.Width(text) + style.GetHorizontalFrameSize()
	if width > maxWidth {
		width = maxWidth
	}
	return style.Width(width).Render(text)
}

// updateViewportContent re-renders the transcript. scroll follows the newest
// message.
func (m *chatModel) updateViewportContent(scroll bool) {
	m.viewport.SetContent(m.renderTranscript())
	if scroll {
		m.viewport.GotoBottom()
	}
}
