package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtrace/pkg/perm"
	"github.com/matzehuels/permtrace/pkg/pipeline"
	"github.com/matzehuels/permtrace/pkg/playback"
)

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	kinds string // comma-separated step kinds to print; empty prints all
	hints bool   // print the matching line of the classic C program
}

// traceCommand creates the trace command, which prints every recorded step.
func (c *CLI) traceCommand() *cobra.Command {
	opts := traceOpts{hints: true}

	cmd := &cobra.Command{
		Use:   "trace <input>",
		Short: "Print every step of the algorithm for an input string",
		Long: `Trace generates all distinct permutations of the input in lexicographic
order and prints every step the algorithm takes, with the characters the step
is about highlighted.

Step kinds: sort, find_pivot, find_swap_candidate, swap, reverse, emit, complete.`,
		Example: `  permtrace trace abc
  permtrace trace aab --kinds swap,reverse
  permtrace trace cba --no-color --hints=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := pipeline.ParseKinds(opts.kinds)
			if err != nil {
				return err
			}
			return c.runTrace(cmd.Context(), cmd.OutOrStdout(), args[0], kinds, opts.hints)
		},
	}

	cmd.Flags().StringVar(&opts.kinds, "kinds", "", "only print these step kinds (comma-separated)")
	cmd.Flags().BoolVar(&opts.hints, "hints", opts.hints, "show the matching line of the C implementation")

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, w io.Writer, input string, kinds map[perm.Kind]bool, hints bool) error {
	run, err := c.trace(ctx, input)
	if err != nil {
		return err
	}
	if len(run.Result.Steps) == 0 {
		printInfo(w, "Nothing to trace: the input is empty")
		return nil
	}

	t := c.theme()
	fmt.Fprintln(w, t.render(StyleTitle, fmt.Sprintf("Tracing %q", run.Input))+"  "+t.render(StyleDim, describeInput(run.Summary)))
	fmt.Fprintln(w)

	for i, step := range run.Result.Steps {
		if kinds != nil && !kinds[step.Kind] {
			continue
		}
		fmt.Fprintln(w, t.step(i+1, step, hints))
	}

	fmt.Fprintln(w)
	c.printTraceSummary(w, run)
	return nil
}

// printTraceSummary prints the outcome of a run and the algorithm summary.
func (c *CLI) printTraceSummary(w io.Writer, run *pipeline.Run) {
	res := run.Result
	switch res.Status {
	case perm.StatusComplete:
		printSuccess(w, "Generated %d permutations in %d steps", len(res.Permutations), len(res.Steps))
	case perm.StatusCeilingReached:
		printWarning(w, "Stopped after %d iterations with %d of %s permutations",
			perm.MaxIterations, len(res.Permutations), perm.FormatCount(run.Summary.Distinct))
	}

	mode := c.Config.Display.CountMode
	printKeyValue(w, "Input", fmt.Sprintf("%q (%s)", run.Input, describeInput(run.Summary)))
	printKeyValue(w, "Total", fmt.Sprintf("%s (%s)", perm.FormatCount(playback.Total(run.Input, mode)), mode))
	printKeyValue(w, "Complexity", complexity())
	printKeyValue(w, "Algorithm", algorithmSummary())
}

// algorithmSummary lists the algorithm's steps, e.g.
// "6 steps: Initial Sort, Find Pivot Position, ...".
func algorithmSummary() string {
	kinds := algorithmSteps()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Description()
	}
	return fmt.Sprintf("%d steps: %s", len(kinds), strings.Join(names, ", "))
}
