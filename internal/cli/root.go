package cli

import (
	"github.com/arthur-debert/modulify/internal/version"
	"github.com/arthur-debert/modulify/pkg/config"
	"github.com/arthur-debert/modulify/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
		format     string
		a          *app
	)

	rootCmd := &cobra.Command{
		Use:     "modulify",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("verbose") {
				overrides["logging.verbosity"] = verbosity
			}

			cfg, err := config.LoadWith(configPath, overrides)
			if err != nil {
				return err
			}

			// Setup logging based on verbosity
			logging.SetupLoggerTo(cmd.ErrOrStderr(), cfg.Logging.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			f, err := ParseFormat(format)
			if err != nil {
				return err
			}
			a, err = newApp(cmd, cfg, f)
			return err
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/modulify/config.toml)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", "Output format: auto, term, text or json")

	// Commands get the app lazily, it only exists once flags are parsed
	get := func() *app { return a }

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newModulesCmd(get))
	rootCmd.AddCommand(newInspectCmd(get))
	rootCmd.AddCommand(newConvertCmd(get))
	rootCmd.AddCommand(newConfigCmd(get))

	return rootCmd
}
