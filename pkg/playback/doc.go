// Package playback replays a materialized permutation trace.
//
// A [Cursor] walks the steps of a [perm.Result] forward and backward and
// derives what a viewer should show at each position: the current step,
// how many permutations have been revealed so far, and whether autoplay is
// running. It never calls [perm.Generate]; a new input means a new Result and
// a new Cursor.
//
// # Usage
//
//	c := playback.New(perm.Generate("abc"))
//	for ok := true; ok; ok = c.Next() {
//	    step, _ := c.Step()
//	    fmt.Println(c.Index()+1, step.Description, c.Revealed())
//	}
//
// # Counting
//
// [Total] returns the "total permutations" figure for an input. With
// [CountFactorial] it is n!, which overstates the count when characters
// repeat; [CountDistinct] returns the exact number.
package playback
