package chat

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/storychat/pkg/chat"
	"github.com/killallgit/storychat/pkg/images"
	"github.com/killallgit/storychat/pkg/storyapi"
	"github.com/killallgit/storychat/pkg/tui/chat/status"
	"github.com/killallgit/storychat/pkg/tui/theme"
)

// Options configures optional behaviour of the chat view
type Options struct {
	// Fetcher loads reply images. nil settles images without fetching.
	Fetcher      images.Fetcher
	PreviewWidth int
	Markdown     bool
}

// imagePreview is what the view shows for a settled image
type imagePreview struct {
	art     string
	caption string
	failed  bool
}

type chatModel struct {
	ctx          context.Context
	state        chat.State
	sender       storyapi.Sender
	fetcher      images.Fetcher
	previews     map[string]imagePreview
	formatter    *replyFormatter
	previewWidth int
	viewport     viewport.Model
	textarea     textarea.Model
	spinner      spinner.Model
	statusBar    status.StatusModel
	numEscPress  int
	width        int
	height       int
	styles       *theme.Styles
}

func NewChatModel(ctx context.Context, sender storyapi.Sender, opts Options) chatModel {
	ta := textarea.New()
	ta.Focus()
	ta.Placeholder = "Ask me about the stories..."
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	// Plain Enter submits, so newlines need the modifier
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"))

	styles := theme.DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	previewWidth := opts.PreviewWidth
	if previewWidth <= 0 {
		previewWidth = 32
	}

	var formatter *replyFormatter
	if opts.Markdown {
		formatter = newReplyFormatter()
	}

	return chatModel{
		ctx:          ctx,
		state:        chat.NewState(),
		sender:       sender,
		fetcher:      opts.Fetcher,
		previews:     make(map[string]imagePreview),
		formatter:    formatter,
		previewWidth: previewWidth,
		viewport:     viewport.New(80, 20),
		textarea:     ta,
		spinner:      sp,
		statusBar:    status.NewStatusModel(),
		styles:       styles,
	}
}

// State returns the current chat state
func (m chatModel) State() chat.State {
	return m.state
}
