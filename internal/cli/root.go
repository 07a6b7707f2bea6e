package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permtrace/pkg/buildinfo"
	"github.com/matzehuels/permtrace/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs the configuration is loaded (file, then
// environment) and the logger is attached to the command context. The
// config subcommands fall back to defaults when the file is broken so it
// can be inspected and rewritten.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Permtrace traces the next-permutation algorithm step by step",
		Long: `Permtrace generates every distinct permutation of a string in lexicographic
order and records each decision of the algorithm along the way: the initial
sort, the pivot search, the swap-candidate search, the swap and the suffix
reversal.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				if !isConfigCommand(cmd) {
					return err
				}
				c.Logger.Warn("using default configuration", "error", err)
				cfg = config.DefaultConfig()
			}
			c.Config = cfg
			c.Logger.Debug("loaded configuration",
				"version", buildinfo.Short(),
				"interval", cfg.Playback.Interval,
				"count_mode", cfg.Display.CountMode,
				"max_input_len", cfg.Limits.MaxInputLen)

			if !c.colorEnabled() {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/permtrace/config.toml)")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable colored output")

	// Register all subcommands
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func isConfigCommand(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		if cmd.Name() == "config" {
			return true
		}
	}
	return false
}
