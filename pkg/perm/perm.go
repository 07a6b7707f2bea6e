package perm

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strconv"
)

// MaxCount is the ceiling of [Factorial] and [DistinctCount]. Counts that do
// not fit in an int are reported as MaxCount.
const MaxCount = math.MaxInt

// Seq returns a slice containing the sequence [0, 1, 2, ..., n-1].
// This is useful for highlighting every position of a string.
//
// For n <= 0, Seq returns an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}
	return result
}

// Span returns the sequence [from, from+1, ..., to]. It returns an empty
// slice when to < from.
func Span(from, to int) []int {
	if to < from {
		return []int{}
	}
	result := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		result = append(result, i)
	}
	return result
}

// Factorial returns n! (n factorial), the product 1 × 2 × ... × n.
// For n <= 1, Factorial returns 1. From 21! on the result no longer fits in
// an int and Factorial returns [MaxCount].
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		if result > MaxCount/i {
			return MaxCount
		}
		result *= i
	}
	return result
}

// DistinctCount returns the number of distinct permutations of the
// characters in s: n! / (m1! × m2! × ...), where mk are the multiplicities
// of each distinct character. It returns 0 for the empty string and
// [MaxCount] when the count does not fit in an int.
func DistinctCount(s string) int {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}

	result := big.NewInt(1)
	placed := int64(0)
	for _, m := range multiplicities(runes) {
		for t := int64(1); t <= int64(m); t++ {
			placed++
			result.Mul(result, big.NewInt(placed))
			result.Quo(result, big.NewInt(t))
		}
	}
	if !result.IsInt64() || result.Int64() > int64(MaxCount) {
		return MaxCount
	}
	return int(result.Int64())
}

// FormatCount renders a count from [Factorial] or [DistinctCount]. A
// saturated count renders as a lower bound, e.g. "> 9.2e+18".
func FormatCount(n int) string {
	if n == MaxCount {
		return fmt.Sprintf("> %.1e", float64(MaxCount))
	}
	return strconv.Itoa(n)
}

// Unique returns the number of distinct characters in s.
func Unique(s string) int {
	return len(multiplicities([]rune(s)))
}

// Summary describes an input string the way the player header shows it.
type Summary struct {
	Length   int // number of characters (runes)
	Unique   int // number of distinct characters
	Total    int // n!, the display approximation, saturating at MaxCount
	Distinct int // number of distinct permutations, saturating at MaxCount
}

// Summarize computes a [Summary] for s.
func Summarize(s string) Summary {
	n := len([]rune(s))
	return Summary{
		Length:   n,
		Unique:   Unique(s),
		Total:    Factorial(n),
		Distinct: DistinctCount(s),
	}
}

func multiplicities(runes []rune) []int {
	sorted := slices.Clone(runes)
	slices.Sort(sorted)

	var counts []int
	for i, r := range sorted {
		if i == 0 || r != sorted[i-1] {
			counts = append(counts, 0)
		}
		counts[len(counts)-1]++
	}
	return counts
}
