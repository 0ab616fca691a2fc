package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/storychat/pkg/config"
	"github.com/killallgit/storychat/pkg/headless"
	"github.com/killallgit/storychat/pkg/images"
	"github.com/killallgit/storychat/pkg/logger"
	"github.com/killallgit/storychat/pkg/storyapi"
	"github.com/killallgit/storychat/pkg/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "storychat",
	Short: "Chat with the story teller",
	Long:  `Terminal chat client for the story backend. Replies arrive with an illustration that is previewed inline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		settings := config.Get()
		prompt := viper.GetString("prompt")

		if headlessRequested(viper.GetBool("headless"), prompt) {
			return runHeadless(ctx, settings, cmd.OutOrStdout(), prompt)
		}
		return tui.StartApp(ctx, settings)
	},
	SilenceUsage: true,
}

// headlessRequested reports whether to skip the TUI. A prompt on its own is
// enough since there is nothing to type it into.
func headlessRequested(headlessFlag bool, prompt string) bool {
	return headlessFlag || prompt != ""
}

func runHeadless(ctx context.Context, settings *config.Config, out io.Writer, prompt string) error {
	client := storyapi.NewClient(settings.Chat.Endpoint, settings.Chat.Timeout)

	var fetcher images.Fetcher
	if settings.Images.Enabled {
		fetcher = images.NewLoader(settings.Chat.Timeout, settings.Images.MaxBytes)
	}

	if err := headless.RunHeadless(ctx, client, fetcher, out, prompt); err != nil {
		return fmt.Errorf("error running headless mode: %w", err)
	}
	return nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is "+config.DefaultConfigFile+")")

	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level")
	viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringP("endpoint", "e", "", "chat endpoint URL")
	viper.BindPFlag("chat.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))

	rootCmd.Flags().StringP("prompt", "p", "", "send a prompt directly without entering TUI")
	viper.BindPFlag("prompt", rootCmd.Flags().Lookup("prompt"))

	rootCmd.Flags().BoolP("headless", "H", false, "run without TUI (requires --prompt)")
	viper.BindPFlag("headless", rootCmd.Flags().Lookup("headless"))
}

func initConfig() {
	if _, err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	if used := config.GetConfigFileUsed(); used != "" {
		logger.Info("Using config file: %s", used)
	}
}
