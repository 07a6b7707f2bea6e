package perm

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// DOTOptions configures [ToDOT].
type DOTOptions struct {
	// Vertical lays the chain out top to bottom instead of left to right.
	Vertical bool

	// Indices labels each node with its position in the permutation list.
	Indices bool
}

// ToDOT returns a Graphviz DOT representation of the transitions in res.
//
// Each emitted permutation becomes a node; consecutive permutations are
// joined by an edge labeled with the pivot and swap indices that produced
// the transition. The first permutation is drawn bold; the last is drawn
// double-bordered when the run completed, or dashed when it stopped at
// MaxIterations.
//
// An empty result produces an empty but valid digraph.
func ToDOT(res Result, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Permutations {\n")
	if opts.Vertical {
		buf.WriteString("  rankdir=TB;\n")
	} else {
		buf.WriteString("  rankdir=LR;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	for k, p := range res.Permutations {
		label := p
		if opts.Indices {
			label = fmt.Sprintf("%d: %s", k+1, p)
		}
		attrs := fmt.Sprintf("label=%q", label)
		switch {
		case k == 0:
			attrs += ", penwidth=2"
		case k == len(res.Permutations)-1 && res.Status == StatusComplete:
			attrs += ", peripheries=2"
		case k == len(res.Permutations)-1 && res.Status == StatusCeilingReached:
			attrs += ", style=\"filled,rounded,dashed\""
		}
		fmt.Fprintf(&buf, "  p%d [%s];\n", k, attrs)
	}

	if len(res.Permutations) > 1 {
		buf.WriteString("\n")
	}
	for k, tr := range transitions(res) {
		fmt.Fprintf(&buf, "  p%d -> p%d [label=\"i=%d j=%d\"];\n", k, k+1, tr.pivot, tr.swap)
	}

	buf.WriteString("}\n")
	return buf.String()
}

type transition struct {
	pivot, swap int
}

// transitions returns the pivot and swap index of each transition, in
// order. Entry k produced Permutations[k+1].
func transitions(res Result) []transition {
	var out []transition
	for _, s := range res.Steps {
		if s.Kind != KindSwap {
			continue
		}
		i, _ := s.PivotIndex()
		j, _ := s.SwapIndex()
		out = append(out, transition{pivot: i, swap: j})
	}
	return out
}

// RenderSVG renders a DOT graph, typically from [ToDOT], to SVG using
// Graphviz.
//
// All errors are wrapped with context using fmt.Errorf with %w.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
