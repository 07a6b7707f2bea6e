package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/permtrace/pkg/errors"
	"github.com/matzehuels/permtrace/pkg/observability"
	"github.com/matzehuels/permtrace/pkg/perm"
)

// Runner executes traces and renders them.
//
// The Runner is stateless except for the logger. Multiple goroutines can
// safely use the same Runner.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, output is discarded.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{Logger: logger}
}

// Trace validates opts and runs the generator.
//
// The context is only consulted before generation starts; the generator has
// no cancellation point. An empty input is not an error and yields a Run
// whose Result has no steps.
func (r *Runner) Trace(ctx context.Context, opts Options) (*Run, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger := r.Logger.With("run", id[:8])
	observability.Trace().OnTraceStart(ctx, id, opts.Input)
	logger.Debug("generating trace", "input", opts.Input)

	start := time.Now()
	res := perm.Generate(opts.Input)
	elapsed := time.Since(start)

	run := &Run{
		ID:       id,
		Input:    opts.Input,
		Result:   res,
		Summary:  perm.Summarize(opts.Input),
		Duration: elapsed,
	}

	observability.Trace().OnTraceComplete(ctx, id, observability.TraceStats{
		Input:        opts.Input,
		Steps:        len(res.Steps),
		Permutations: len(res.Permutations),
		Status:       string(res.Status),
		Duration:     elapsed,
	})

	logger.Debug("generated trace",
		"steps", len(res.Steps),
		"permutations", len(res.Permutations),
		"status", res.Status,
		"duration", elapsed)

	if res.Status == perm.StatusCeilingReached {
		logger.Warn("iteration ceiling reached, trace is partial",
			"ceiling", perm.MaxIterations,
			"permutations", len(res.Permutations),
			"distinct", run.Summary.Distinct)
	}

	return run, nil
}

// Render converts a finished run to the requested format.
func (r *Runner) Render(ctx context.Context, run *Run, opts RenderOptions) ([]byte, error) {
	if opts.Format == "" {
		opts.Format = FormatSVG
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	observability.Render().OnRenderStart(ctx, run.ID, opts.Format)
	start := time.Now()

	out, err := render(ctx, run.Result, opts)

	observability.Render().OnRenderComplete(ctx, run.ID, opts.Format, len(out), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s", opts.Format)
	}

	r.Logger.Debug("rendered trace", "format", opts.Format, "bytes", len(out), "duration", time.Since(start))
	return out, nil
}

func render(ctx context.Context, res perm.Result, opts RenderOptions) ([]byte, error) {
	dot := perm.ToDOT(res, perm.DOTOptions{Vertical: opts.Vertical, Indices: opts.Indices})
	if opts.Format == FormatDOT {
		return []byte(dot), nil
	}
	return perm.RenderSVG(ctx, dot)
}
