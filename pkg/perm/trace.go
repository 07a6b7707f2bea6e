package perm

import (
	"fmt"
	"slices"
)

// MaxIterations bounds the number of transitions a single [Generate] call
// performs. It guards against runaway work and is not a limit of the
// algorithm itself.
const MaxIterations = 1000

// Status describes how a run ended.
type Status string

const (
	// StatusEmpty means the input was empty and nothing was generated.
	StatusEmpty Status = "empty"
	// StatusComplete means the fully descending arrangement was reached and
	// the trace ends with a complete step.
	StatusComplete Status = "complete"
	// StatusCeilingReached means MaxIterations transitions ran without
	// reaching the last permutation. The trace has no complete step.
	StatusCeilingReached Status = "ceiling_reached"
)

// Step is one recorded decision of the algorithm.
type Step struct {
	Kind Kind

	// Permutation is a snapshot of the working string when the step was
	// recorded. Later steps never alias it.
	Permutation string

	// Description is the fixed label for Kind.
	Description string

	// Detail explains the step with the concrete indices and characters.
	Detail string

	// Highlight lists the rune indices the step is about, in ascending order.
	Highlight []int

	// Pivot is set for find_pivot, find_swap_candidate and swap steps.
	Pivot *int

	// Swap is set for find_swap_candidate and swap steps.
	Swap *int
}

// Highlighted reports whether position pos is in s.Highlight.
func (s Step) Highlighted(pos int) bool {
	return slices.Contains(s.Highlight, pos)
}

// PivotIndex returns the pivot index and whether the step carries one.
func (s Step) PivotIndex() (int, bool) {
	if s.Pivot == nil {
		return 0, false
	}
	return *s.Pivot, true
}

// SwapIndex returns the swap-candidate index and whether the step carries one.
func (s Step) SwapIndex() (int, bool) {
	if s.Swap == nil {
		return 0, false
	}
	return *s.Swap, true
}

// CodeHint returns the line of the classic C implementation that performs
// this step, or "" for kinds without one.
func (s Step) CodeHint() string {
	switch s.Kind {
	case KindSort:
		return "sort_permuta(permuta);"
	case KindFindPivot:
		return "while (permuta[i] > permuta[i + 1] && i != -1) i--;"
	case KindFindSwapCandidate:
		return "while (permuta[j] < permuta[i]) j--;"
	case KindSwap:
		i, _ := s.PivotIndex()
		j, _ := s.SwapIndex()
		return fmt.Sprintf("swap_chars(&permuta[%d], &permuta[%d]);", i, j)
	case KindReverse:
		if len(s.Highlight) == 0 {
			return ""
		}
		return fmt.Sprintf("revers(permuta, %d, %d);", s.Highlight[0], s.Highlight[len(s.Highlight)-1])
	case KindEmit:
		return "puts(permuta);"
	}
	return ""
}

// Result holds the trace of one [Generate] call.
type Result struct {
	// Input is the string Generate was called with.
	Input string

	// Sorted is the smallest arrangement of Input's characters.
	Sorted string

	// Steps is every recorded step in order.
	Steps []Step

	// Permutations is the emitted permutations in order. It equals the
	// Permutation fields of the emit steps.
	Permutations []string

	// Status tells a natural finish apart from hitting MaxIterations.
	Status Status
}

// Completed reports whether the trace ends with a complete step.
func (r Result) Completed() bool {
	return len(r.Steps) > 0 && r.Steps[len(r.Steps)-1].Kind == KindComplete
}

// Count returns the number of steps of the given kind.
func (r Result) Count(kind Kind) int {
	n := 0
	for _, s := range r.Steps {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// Generate traces the next-lexicographic-permutation algorithm on input.
//
// An empty input yields an empty Result with StatusEmpty. Any other input
// yields every distinct permutation of its characters in increasing order,
// unless MaxIterations is reached first. Generate is a pure function: equal
// inputs give equal results.
func Generate(input string) Result {
	res := Result{
		Input:        input,
		Steps:        []Step{},
		Permutations: []string{},
		Status:       StatusEmpty,
	}
	if input == "" {
		return res
	}

	t := &tracer{res: &res, buf: []rune(input)}
	SortRunes(t.buf)
	res.Sorted = string(t.buf)
	last := len(t.buf) - 1

	if res.Sorted != input {
		t.record(KindSort, Seq(len(t.buf)), nil, nil,
			"Sorted input %q to get lexicographically smallest permutation", input)
	}
	t.emit()

	for iter := 0; iter < MaxIterations; iter++ {
		i := FindPivot(t.buf)
		if i < 0 {
			t.record(KindComplete, []int{}, nil, nil,
				"No more permutations possible - all permutations generated!")
			res.Status = StatusComplete
			return res
		}
		t.record(KindFindPivot, []int{i, i + 1}, &i, nil,
			"Found position i=%d where current[%d]='%c' < current[%d]='%c'",
			i, i, t.buf[i], i+1, t.buf[i+1])

		j := FindSwapCandidate(t.buf, i)
		t.record(KindFindSwapCandidate, []int{i, j}, &i, &j,
			"Found position j=%d where current[%d]='%c' > current[%d]='%c'",
			j, j, t.buf[j], i, t.buf[i])

		SwapRunes(t.buf, i, j)
		t.record(KindSwap, []int{i, j}, &i, &j,
			"Swapped characters at positions %d and %d", i, j)

		ReverseRunes(t.buf, i+1, last)
		t.record(KindReverse, Span(i+1, last), nil, nil,
			"Reversed substring from position %d to %d", i+1, last)

		t.emit()
	}

	res.Status = StatusCeilingReached
	return res
}

// tracer appends steps for a single Generate call.
type tracer struct {
	res *Result
	buf []rune
}

func (t *tracer) record(kind Kind, highlight []int, pivot, swap *int, format string, args ...any) {
	t.res.Steps = append(t.res.Steps, Step{
		Kind:        kind,
		Permutation: string(t.buf),
		Description: kind.Description(),
		Detail:      fmt.Sprintf(format, args...),
		Highlight:   highlight,
		Pivot:       copyIndex(pivot),
		Swap:        copyIndex(swap),
	})
}

func (t *tracer) emit() {
	p := string(t.buf)
	t.record(KindEmit, []int{}, nil, nil, "Generated permutation: %q", p)
	t.res.Permutations = append(t.res.Permutations, p)
}

func copyIndex(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// =============================================================================
// In-place operations
// =============================================================================

// SortRunes sorts buf in place by code point.
func SortRunes(buf []rune) {
	slices.Sort(buf)
}

// SwapRunes exchanges buf[i] and buf[j].
func SwapRunes(buf []rune, i, j int) {
	buf[i], buf[j] = buf[j], buf[i]
}

// ReverseRunes reverses buf[start..end] (inclusive) in place by swapping
// from both ends toward the middle.
func ReverseRunes(buf []rune, start, end int) {
	for start < end {
		buf[start], buf[end] = buf[end], buf[start]
		start++
		end--
	}
}

// FindPivot returns the largest i with buf[i] < buf[i+1], or -1 when buf is
// in descending order.
func FindPivot(buf []rune) int {
	i := len(buf) - 2
	for i >= 0 && buf[i] >= buf[i+1] {
		i--
	}
	return i
}

// FindSwapCandidate returns the largest j > i with buf[j] > buf[i].
// i must be a pivot returned by FindPivot, which guarantees j exists.
func FindSwapCandidate(buf []rune, i int) int {
	j := len(buf) - 1
	for buf[j] <= buf[i] {
		j--
	}
	return j
}

// Next rearranges buf into the next permutation in lexicographic order and
// reports whether one existed. It applies the same pivot, swap and reverse
// operations Generate records, without recording them.
func Next(buf []rune) bool {
	i := FindPivot(buf)
	if i < 0 {
		return false
	}
	j := FindSwapCandidate(buf, i)
	SwapRunes(buf, i, j)
	ReverseRunes(buf, i+1, len(buf)-1)
	return true
}
