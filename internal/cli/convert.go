package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iliyamo/heightconv/internal/model"
	q "github.com/iliyamo/heightconv/internal/queue"
	"github.com/iliyamo/heightconv/internal/service"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	Publish bool
}

func NewConvertCommand(globalOptions *GlobalOptions) *cobra.Command {
	convertOptions := &ConvertOptions{}

	convertCmd := &cobra.Command{
		Use:     "convert <cm>",
		Short:   "Convert a height in centimeters to feet and inches",
		Example: "  heightconv convert 183",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var form model.HeightForm
			form.SetHeightCm(args[0])
			if err := form.ComputeFeet(); err != nil {
				return err
			}
			if err := form.ComputeInches(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s cm = %s ft %s in\n", form.HeightCm(), form.HeightFeet(), form.HeightInches())

			if convertOptions.Publish && globalOptions.Conf.Events.Enabled {
				pub := service.NewAMQPPublisher(globalOptions.Conf.Events.URL, globalOptions.Conf.Events.Queue)
				ev := q.NewConversionEvent(form.HeightCm(), form.HeightFeet(), form.HeightInches(), q.SourceCLI)
				if err := pub.PublishConversion(cmd.Context(), ev); err != nil {
					globalOptions.Logger.WithError(err).Warn("conversion event not published")
				}
			}
			return nil
		},
	}
	convertCmd.Flags().BoolVar(&convertOptions.Publish, "publish", false, "Publish a conversion event when events are enabled.")
	return convertCmd
}
