package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/permtrace/pkg/errors"
	"github.com/matzehuels/permtrace/pkg/pipeline"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file; empty writes to stdout
	format   string // "svg" or "dot"; inferred from output when empty
	vertical bool   // top-to-bottom instead of left-to-right
	indices  bool   // prefix each node with its position in the list
}

// graphCommand creates the graph command, which renders the chain of
// permutations with Graphviz.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{indices: true}

	cmd := &cobra.Command{
		Use:   "graph <input>",
		Short: "Render the permutation chain as a Graphviz diagram",
		Long: `Graph renders every permutation of the input as a node and every transition
as an edge labeled with the pivot (i) and swap (j) positions.

The format is taken from --format or from the output file extension and
defaults to SVG.`,
		Example: `  permtrace graph abc -o abc.svg
  permtrace graph aab -f dot | dot -Tpng > aab.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format == "" {
				opts.format = inferFormat(opts.output)
			}
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			return c.runGraph(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), dot")
	cmd.Flags().BoolVar(&opts.vertical, "vertical", false, "lay the chain out top to bottom")
	cmd.Flags().BoolVar(&opts.indices, "indices", opts.indices, "prefix each node with its position in the list")

	return cmd
}

// inferFormat picks the format from a file extension, defaulting to SVG.
func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".dot", ".gv":
		return pipeline.FormatDOT
	default:
		return pipeline.FormatSVG
	}
}

func (c *CLI) runGraph(ctx context.Context, w io.Writer, input string, opts graphOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	run, err := c.trace(ctx, input)
	if err != nil {
		return err
	}

	var spinner *Spinner
	if opts.output != "" {
		spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d permutations...", len(run.Result.Permutations)))
		spinner.Start()
	}

	runner := pipeline.NewRunner(logger)
	data, err := runner.Render(ctx, run, pipeline.RenderOptions{
		Format:   opts.format,
		Vertical: opts.vertical,
		Indices:  opts.indices,
	})
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("Rendering failed")
		}
		return fmt.Errorf("graph: %w", err)
	}

	if spinner == nil {
		_, err := w.Write(data)
		return err
	}
	spinner.Stop()

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Rendered graph", "format", opts.format, "bytes", len(data))
	printSuccess(w, "Rendered %d permutations", len(run.Result.Permutations))
	printFile(w, opts.output)
	return nil
}
