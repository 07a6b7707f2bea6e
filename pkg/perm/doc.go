// Package perm generates step traces of the next-lexicographic-permutation
// algorithm.
//
// # Overview
//
// Given a string, [Generate] sorts its characters, then repeatedly derives the
// next permutation in lexicographic order until the string is fully
// descending. Every internal decision of the algorithm is recorded as a
// [Step], so a caller can replay the run one decision at a time:
//
//   - [KindSort]: the input was rearranged into its smallest permutation
//   - [KindFindPivot]: rightmost i with s[i] < s[i+1]
//   - [KindFindSwapCandidate]: rightmost j > i with s[j] > s[i]
//   - [KindSwap]: s[i] and s[j] exchanged
//   - [KindReverse]: the suffix after i reversed into ascending order
//   - [KindEmit]: a new permutation produced
//   - [KindComplete]: no pivot left, the run is finished
//
// # Basic Usage
//
//	res := perm.Generate("cba")
//	for _, s := range res.Steps {
//	    fmt.Println(s.Kind, s.Permutation, s.Detail)
//	}
//	fmt.Println(res.Permutations) // [abc acb bac bca cab cba]
//
// # Characters and Ordering
//
// Strings are handled as rune sequences and compared by code point, so
// "ü" is a single position and orders after every ASCII letter. Highlight
// and index fields on [Step] are rune indices, not byte offsets.
//
// # Repeated Characters
//
// With repeated characters the algorithm visits each distinct arrangement
// once: "aab" yields aab, aba, baa. [DistinctCount] returns that number
// (n! divided by the factorials of the multiplicities), while [Factorial]
// returns the plain n! that is often shown as an approximation.
//
// # Safety Ceiling
//
// Generation runs at most [MaxIterations] transitions. A run that hits the
// ceiling has [Result.Status] set to [StatusCeilingReached] and carries no
// complete step. Seven distinct characters (5040 permutations) already
// exceed it; inputs up to six distinct characters always complete.
//
// # Rendering
//
// [ToDOT] draws the chain of emitted permutations as a Graphviz digraph with
// one edge per transition, and [RenderSVG] turns that DOT into SVG.
package perm
