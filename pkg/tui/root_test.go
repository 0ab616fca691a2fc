package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/killallgit/storychat/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingView remembers the messages it was given
type recordingView struct {
	received []tea.Msg
}

func (v *recordingView) Init() tea.Cmd { return nil }

func (v *recordingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.received = append(v.received, msg)
	return v, nil
}

func (v *recordingView) View() string { return "recording" }

func TestRootQuitsOnControlKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyCtrlD},
	} {
		view := &recordingView{}
		root := NewRootModel(context.Background(), view)

		_, cmd := root.Update(msg)

		require.NotNil(t, cmd, msg.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, view.received)
	}
}

func TestRootForwardsTypingToView(t *testing.T) {
	view := &recordingView{}
	root := NewRootModel(context.Background(), view)

	key := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}
	_, cmd := root.Update(key)

	// "q" is text, not a quit key
	assert.Nil(t, cmd)
	require.Len(t, view.received, 1)
	assert.Equal(t, key, view.received[0])
	assert.Equal(t, "recording", root.View())
}

func TestRootTracksWindowSize(t *testing.T) {
	view := &recordingView{}
	root := NewRootModel(context.Background(), view)

	updated, _ := root.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model := updated.(rootModel)

	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
	assert.Len(t, view.received, 1)
}

func TestRootWithoutViews(t *testing.T) {
	root := NewRootModel(context.Background())

	assert.Empty(t, root.View())
	assert.Nil(t, root.Init())
}

func TestChatOptions(t *testing.T) {
	cfg := &config.Config{
		Chat:   config.ChatConfig{Timeout: 5 * time.Second},
		Images: config.ImagesConfig{Enabled: true, MaxBytes: 1024, PreviewWidth: 16},
		Render: config.RenderConfig{Markdown: true},
	}

	opts := chatOptions(cfg)
	assert.NotNil(t, opts.Fetcher)
	assert.Equal(t, 16, opts.PreviewWidth)
	assert.True(t, opts.Markdown)

	cfg.Images.Enabled = false
	assert.Nil(t, chatOptions(cfg).Fetcher)
}
