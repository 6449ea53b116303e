package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iliyamo/heightconv/internal/queue"
)

func NewConsumeCommand(globalOptions *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "consume",
		Short: "Append published conversion events to the event log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := globalOptions.Conf.Events
			consumer := &queue.Consumer{
				URL:     conf.URL,
				Queue:   conf.Queue,
				LogPath: conf.LogPath,
				Log:     globalOptions.Logger,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err := consumer.Run(ctx)
			if errors.Is(err, context.Canceled) {
				globalOptions.Logger.Info("conversion-consumer stopped")
				return nil
			}
			return err
		},
	}
}
