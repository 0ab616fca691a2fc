package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/killallgit/storychat/pkg/config"
	"github.com/killallgit/storychat/pkg/stub"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a development story backend",
	Long:  `Serve canned stories and generated images on the chat contract, for working on the client without the real backend.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return stub.NewServer().ListenAndServe(ctx, config.Get().Stub.Addr)
	},
}

func init() {
	stubCmd.Flags().String("addr", "", "listen address (default :5000)")
	viper.BindPFlag("stub.addr", stubCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(stubCmd)
}
