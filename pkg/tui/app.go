package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/killallgit/storychat/pkg/config"
	"github.com/killallgit/storychat/pkg/images"
	"github.com/killallgit/storychat/pkg/logger"
	"github.com/killallgit/storychat/pkg/storyapi"
	"github.com/killallgit/storychat/pkg/tui/chat"
)

func StartApp(ctx context.Context, cfg *config.Config) error {
	log := logger.WithComponent("tui")

	client := storyapi.NewClient(cfg.Chat.Endpoint, cfg.Chat.Timeout)
	root := NewRootModel(ctx, chat.NewChatModel(ctx, client, chatOptions(cfg)))
	p := tea.NewProgram(root, tea.WithContext(ctx), tea.WithAltScreen())

	// The program owns the terminal until it exits
	logger.SetConsole(nil)
	defer logger.SetConsole(os.Stderr)

	log.Info("Starting chat against %s", client.Endpoint())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run chat UI: %w", err)
	}
	log.Info("Chat UI exited")
	return nil
}

func chatOptions(cfg *config.Config) chat.Options {
	opts := chat.Options{
		PreviewWidth: cfg.Images.PreviewWidth,
		Markdown:     cfg.Render.Markdown,
	}
	if cfg.Images.Enabled {
		opts.Fetcher = images.NewLoader(cfg.Chat.Timeout, cfg.Images.MaxBytes)
	}
	return opts
}
