package perm

import "fmt"

// Kind identifies which decision of the algorithm a [Step] records.
type Kind string

// Step kinds, in the order they occur within one transition.
const (
	KindSort              Kind = "sort"
	KindFindPivot         Kind = "find_pivot"
	KindFindSwapCandidate Kind = "find_swap_candidate"
	KindSwap              Kind = "swap"
	KindReverse           Kind = "reverse"
	KindEmit              Kind = "emit"
	KindComplete          Kind = "complete"
)

// Kinds lists every step kind. No other kinds are ever produced.
var Kinds = []Kind{
	KindSort,
	KindFindPivot,
	KindFindSwapCandidate,
	KindSwap,
	KindReverse,
	KindEmit,
	KindComplete,
}

var descriptions = map[Kind]string{
	KindSort:              "Initial Sort",
	KindFindPivot:         "Find Pivot Position",
	KindFindSwapCandidate: "Find Swap Position",
	KindSwap:              "Swap Characters",
	KindReverse:           "Reverse Suffix",
	KindEmit:              "Output Permutation",
	KindComplete:          "Algorithm Complete",
}

// String returns the kind's tag.
func (k Kind) String() string { return string(k) }

// Valid reports whether k is one of [Kinds].
func (k Kind) Valid() bool {
	_, ok := descriptions[k]
	return ok
}

// Description returns the short human label shown for steps of this kind.
func (k Kind) Description() string {
	return descriptions[k]
}

// ParseKind converts a tag such as "find_pivot" to a [Kind].
// The short aliases "pivot", "candidate" and "output" are accepted too.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "pivot":
		return KindFindPivot, nil
	case "candidate":
		return KindFindSwapCandidate, nil
	case "output":
		return KindEmit, nil
	}
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown step kind %q", s)
	}
	return k, nil
}
