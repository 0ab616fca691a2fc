package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/killallgit/storychat/pkg/logger"
)

// replyFormatter renders reply text as markdown using glamour. Renderers are
// cached per wrap width since the viewport width changes on resize.
type replyFormatter struct {
	renderers map[int]*glamour.TermRenderer
}

func newReplyFormatter() *replyFormatter {
	return &replyFormatter{renderers: make(map[int]*glamour.TermRenderer)}
}

// Format returns content rendered for width, or content unchanged when
// glamour fails.
func (f *replyFormatter) Format(content string, width int) string {
	log := logger.WithComponent("markdown")

	renderer, err := f.renderer(width)
	if err != nil {
		log.Warn("Failed to create markdown renderer: %v", err)
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		log.Warn("Failed to render markdown: %v", err)
		return content
	}

	lines := strings.Split(strings.Trim(rendered, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func (f *replyFormatter) renderer(width int) (*glamour.TermRenderer, error) {
	if width < 10 {
		width = 10
	}
	if r, ok := f.renderers[width]; ok {
		return r, nil
	}

	// Plain style; lipgloss does the colouring
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	f.renderers[width] = r
	return r, nil
}
