package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permtrace/pkg/playback"
)

// playCommand creates the play command, an interactive step player.
func (c *CLI) playCommand() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "play <input>",
		Short: "Step through the trace interactively",
		Long: `Play opens an interactive player for the trace of an input string.

Keys:
  ←/h      previous step
  →/l      next step
  space    start or pause autoplay
  r        reset to the first step
  g/G      first/last step
  q        quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd.Context(), cmd.OutOrStdout(), args[0], interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "autoplay interval (default from config, 1.5s)")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, w io.Writer, input string, interval time.Duration) error {
	run, err := c.trace(ctx, input)
	if err != nil {
		return err
	}
	if len(run.Result.Steps) == 0 {
		printInfo(w, "Nothing to play: the input is empty")
		return nil
	}

	if interval <= 0 {
		interval = time.Duration(c.Config.Playback.Interval)
	}
	total := playback.Total(run.Input, c.Config.Display.CountMode)
	model := NewPlaybackModel(run, interval, total, c.theme())

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(w))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}
