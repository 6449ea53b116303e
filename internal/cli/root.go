package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iliyamo/heightconv/internal/config"
	"github.com/iliyamo/heightconv/internal/logging"
)

// Version is reported by --version.
var Version = "0.1.0"

// GlobalOptions carries the persistent flags and what they resolve to.
type GlobalOptions struct {
	CfgFilePath string
	LogLevel    string

	Conf   config.Config
	Logger *logrus.Logger
}

// NewRootCmd builds the heightconv command tree.  Running the root
// command without a subcommand starts the server.
func NewRootCmd() *cobra.Command {
	globalOptions := &GlobalOptions{}
	serveOptions := &ServeOptions{}

	rootCmd := &cobra.Command{
		Use:           "heightconv",
		Short:         "Height conversion web app",
		Long:          "Serves a centimeter to feet/inches conversion form, a JSON conversion API and health probes.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), globalOptions, serveOptions)
		},
	}

	globalOptions.registerFlags(rootCmd)
	serveOptions.registerFlags(rootCmd)

	rootCmd.AddCommand(NewServeCommand(globalOptions))
	rootCmd.AddCommand(NewConvertCommand(globalOptions))
	rootCmd.AddCommand(NewConsumeCommand(globalOptions))

	return rootCmd
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config", envOr("HEIGHTCONV_CONFIG", "heightconv.toml"), "Path to an optional TOML configuration file. (Env: HEIGHTCONV_CONFIG)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "Logging level (trace, debug, info, warn, error). (Env: LOG_LEVEL)")
}

// load resolves configuration and builds the logger.  Flags win over
// the environment and the config file.
func (options *GlobalOptions) load() error {
	conf, err := config.Load(options.CfgFilePath)
	if err != nil {
		return err
	}
	if options.LogLevel != "" {
		conf.LogLevel = options.LogLevel
	}
	options.Conf = conf
	options.Logger = logging.NewLogger(conf.LogLevel)
	return nil
}

// Execute runs the root command with os.Args.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
