package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/bounce/internal/config"
)

// ConfigOptions holds flags for the config command.
type ConfigOptions struct {
	*RootOptions
	config configFlags
}

// NewConfigCommand creates the config command.
func NewConfigCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConfigOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration generate would run with.

The defaults, the optional --config file and explicit flags are merged and
validated, then printed as YAML (or JSON with --format json). The YAML
output is itself a valid config file.

Example:
  bounce config > run.yaml
  bounce config --config run.yaml --rows 500`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(opts, cmd)
		},
	}

	opts.config.register(cmd)

	return cmd
}

func runConfig(opts *ConfigOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	cfg, err := opts.config.resolve(cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeConfig, "invalid configuration", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(cfg)
	}
	return config.Write(formatter.Writer, cfg)
}
