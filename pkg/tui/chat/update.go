package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/killallgit/storychat/pkg/chat"
	"github.com/killallgit/storychat/pkg/images"
	"github.com/killallgit/storychat/pkg/logger"
	"github.com/killallgit/storychat/pkg/process"
	"github.com/killallgit/storychat/pkg/tui/chat/status"
)

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.handleWindowResize(msg.Width, msg.Height)
		// Update status bar width
		statusModel, _ := m.statusBar.Update(msg)
		m.statusBar = statusModel.(status.StatusModel)

	case tea.KeyMsg:
		// All key handling happens in handleKeyMsg
		return handleKeyMsg(m, msg)

	case replyMsg:
		return m.handleReply(msg)

	case imageLoadedMsg:
		return m.handleImageLoaded(msg)

	case spinner.TickMsg:
		statusModel, statusCmd := m.statusBar.Update(msg)
		m.statusBar = statusModel.(status.StatusModel)
		cmds = append(cmds, statusCmd)

		// Each spinner ignores ticks carrying another spinner's id
		if m.isWaiting() {
			var spCmd tea.Cmd
			m.spinner, spCmd = m.spinner.Update(msg)
			cmds = append(cmds, spCmd)
			m.updateViewportContent(false)
		}

	default:
		// Update status bar
		statusModel, statusCmd := m.statusBar.Update(msg)
		m.statusBar = statusModel.(status.StatusModel)
		cmds = append(cmds, statusCmd)

		// Update textarea for other messages (like blink cursor)
		var tiCmd tea.Cmd
		m.textarea, tiCmd = m.textarea.Update(msg)
		cmds = append(cmds, tiCmd)

		// Update viewport for other messages
		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		cmds = append(cmds, vpCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m chatModel) handleReply(msg replyMsg) (tea.Model, tea.Cmd) {
	log := logger.WithComponent("chat")
	if !m.state.Busy {
		log.Warn("Dropping reply with no call in flight")
		return m, nil
	}
	if msg.err != nil {
		log.Error("Chat request failed: %v", msg.err)
	}

	m.state = chat.Settle(m.state, msg.reply, msg.err)
	cmds := []tea.Cmd{m.textarea.Focus()}

	last, _ := chat.GetLastMessage(m.state)
	if chat.ImagePending(m.state, last.ID) {
		log.Debug("Loading image %s for message %s", last.ImageURL, last.ID)
		cmds = append(cmds, loadImageCmd(m.ctx, m.fetcher, last.ID, last.ImageURL), m.spinner.Tick)
	}

	cmds = append(cmds, m.syncStatus())
	m.updateViewportContent(true)
	return m, tea.Batch(cmds...)
}

func (m chatModel) handleImageLoaded(msg imageLoadedMsg) (tea.Model, tea.Cmd) {
	if !chat.ImagePending(m.state, msg.id) {
		return m, nil
	}

	switch {
	case msg.err != nil:
		logger.WithComponent("chat").Warn("Image for message %d failed to load: %v", chat.IndexOf(m.state, msg.id), msg.err)
		m.previews[msg.id] = imagePreview{failed: true}
	case msg.result != nil:
		m.previews[msg.id] = imagePreview{
			art:     images.Preview(msg.result.Image, m.previewWidth),
			caption: msg.result.Caption(),
		}
	}

	m.state = chat.SettleImage(m.state, msg.id)
	cmd := m.syncStatus()
	m.updateViewportContent(false)
	return m, cmd
}

// isWaiting reports whether a reply or any image is still outstanding
func (m chatModel) isWaiting() bool {
	return m.state.Busy || len(chat.PendingImages(m.state)) > 0
}

// syncStatus brings the status bar in line with the chat state
func (m *chatModel) syncStatus() tea.Cmd {
	pending := len(chat.PendingImages(m.state))
	state := process.For(m.state.Busy, pending)

	var msg tea.Msg
	switch {
	case state == process.StateIdle:
		msg = status.StopMsg{}
	case m.statusBar.Active():
		msg = status.SetProcessStateMsg{State: state, PendingImages: pending}
	default:
		msg = status.StartMsg{State: state, PendingImages: pending}
	}

	statusModel, cmd := m.statusBar.Update(msg)
	m.statusBar = statusModel.(status.StatusModel)
	return cmd
}
