package playback

import (
	"github.com/matzehuels/permtrace/pkg/errors"
	"github.com/matzehuels/permtrace/pkg/perm"
)

// CountMode selects how the total number of permutations is reported.
type CountMode string

const (
	// CountFactorial reports n! for an input of length n.
	CountFactorial CountMode = "factorial"
	// CountDistinct reports the number of distinct permutations.
	CountDistinct CountMode = "distinct"
)

// ValidateCountMode checks that m is a known mode.
func ValidateCountMode(m CountMode) error {
	switch m {
	case CountFactorial, CountDistinct:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidCountMode, "invalid count mode: %q (must be one of: factorial, distinct)", m)
}

// Total returns the total number of permutations of input under mode.
// Unknown modes fall back to CountFactorial. The empty input has total 0.
func Total(input string, mode CountMode) int {
	if input == "" {
		return 0
	}
	if mode == CountDistinct {
		return perm.DistinctCount(input)
	}
	return perm.Factorial(len([]rune(input)))
}

// Cursor is a position within a trace plus autoplay state.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	res     perm.Result
	pos     int
	playing bool

	// emitted[k] is the number of emit steps in Steps[0..k].
	emitted []int
}

// New returns a cursor positioned on the first step of res.
func New(res perm.Result) *Cursor {
	emitted := make([]int, len(res.Steps))
	n := 0
	for k, s := range res.Steps {
		if s.Kind == perm.KindEmit {
			n++
		}
		emitted[k] = n
	}
	return &Cursor{res: res, emitted: emitted}
}

// Result returns the trace being replayed.
func (c *Cursor) Result() perm.Result { return c.res }

// Len returns the number of steps.
func (c *Cursor) Len() int { return len(c.res.Steps) }

// Empty reports whether there is nothing to replay.
func (c *Cursor) Empty() bool { return len(c.res.Steps) == 0 }

// Index returns the zero-based position of the cursor.
func (c *Cursor) Index() int { return c.pos }

// Step returns the step under the cursor. ok is false for an empty trace.
func (c *Cursor) Step() (step perm.Step, ok bool) {
	if c.Empty() {
		return perm.Step{}, false
	}
	return c.res.Steps[c.pos], true
}

// AtStart reports whether the cursor is on the first step.
func (c *Cursor) AtStart() bool { return c.pos == 0 }

// AtEnd reports whether the cursor is on the last step.
func (c *Cursor) AtEnd() bool { return c.pos >= len(c.res.Steps)-1 }

// Next advances one step and reports whether it moved.
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.pos++
	return true
}

// Prev moves back one step and reports whether it moved.
func (c *Cursor) Prev() bool {
	if c.AtStart() {
		return false
	}
	c.pos--
	return true
}

// Seek moves to step i. It reports false and leaves the cursor unchanged
// when i is out of range.
func (c *Cursor) Seek(i int) bool {
	if i < 0 || i >= len(c.res.Steps) {
		return false
	}
	c.pos = i
	return true
}

// Last moves to the final step.
func (c *Cursor) Last() {
	if !c.Empty() {
		c.pos = len(c.res.Steps) - 1
	}
}

// Reset returns to the first step and stops autoplay.
func (c *Cursor) Reset() {
	c.pos = 0
	c.playing = false
}

// RevealedCount returns the number of permutations emitted up to and
// including the current step.
func (c *Cursor) RevealedCount() int {
	if c.Empty() {
		return 0
	}
	return c.emitted[c.pos]
}

// Revealed returns the permutations emitted up to and including the current
// step. The returned slice shares storage with the trace and must not be
// modified.
func (c *Cursor) Revealed() []string {
	return c.res.Permutations[:c.RevealedCount()]
}

// Current reports whether the step under the cursor emitted permutation k
// (zero-based), so a list view can mark it.
func (c *Cursor) Current(k int) bool {
	step, ok := c.Step()
	return ok && step.Kind == perm.KindEmit && c.RevealedCount() == k+1
}

// Playing reports whether autoplay is on.
func (c *Cursor) Playing() bool { return c.playing }

// Toggle flips autoplay. Starting autoplay on the last step has no effect.
func (c *Cursor) Toggle() {
	if c.playing {
		c.playing = false
		return
	}
	c.playing = !c.AtEnd()
}

// Pause stops autoplay.
func (c *Cursor) Pause() { c.playing = false }

// Tick is called once per autoplay interval. It advances while playing,
// stops playing when the last step is reached, and reports whether the
// cursor moved.
func (c *Cursor) Tick() bool {
	if !c.playing {
		return false
	}
	moved := c.Next()
	if c.AtEnd() {
		c.playing = false
	}
	return moved
}
