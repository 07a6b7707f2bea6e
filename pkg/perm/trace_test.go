package perm

import (
	"reflect"
	"slices"
	"strings"
	"testing"
)

func TestGenerateABC(t *testing.T) {
	res := Generate("abc")

	want := []string{"abc", "acb", "bac", "bca", "cab", "cba"}
	if !slices.Equal(res.Permutations, want) {
		t.Errorf("Permutations = %v, want %v", res.Permutations, want)
	}
	if !res.Completed() {
		t.Error("run should complete naturally")
	}
	if res.Status != StatusComplete {
		t.Errorf("Status = %v, want %v", res.Status, StatusComplete)
	}
	if res.Steps[0].Kind != KindEmit {
		t.Errorf("first step = %v, want emit (input already sorted)", res.Steps[0].Kind)
	}
	if got := res.Count(KindSort); got != 0 {
		t.Errorf("sort steps = %d, want 0", got)
	}
}

func TestGenerateSortsUnsortedInput(t *testing.T) {
	res := Generate("cba")

	first := res.Steps[0]
	if first.Kind != KindSort {
		t.Fatalf("first step = %v, want sort", first.Kind)
	}
	if first.Permutation != "abc" {
		t.Errorf("sort step permutation = %q, want %q", first.Permutation, "abc")
	}
	if !slices.Equal(first.Highlight, []int{0, 1, 2}) {
		t.Errorf("sort highlight = %v, want all positions", first.Highlight)
	}
	if res.Sorted != "abc" {
		t.Errorf("Sorted = %q, want %q", res.Sorted, "abc")
	}

	if !slices.Equal(res.Permutations, Generate("abc").Permutations) {
		t.Errorf("permutations of %q should match those of %q", "cba", "abc")
	}
}

func TestGenerateRepeatedCharacters(t *testing.T) {
	res := Generate("aab")

	want := []string{"aab", "aba", "baa"}
	if !slices.Equal(res.Permutations, want) {
		t.Errorf("Permutations = %v, want %v", res.Permutations, want)
	}
	if got := res.Count(KindEmit); got != DistinctCount("aab") {
		t.Errorf("emit steps = %d, want %d", got, DistinctCount("aab"))
	}
}

func TestGenerateEmpty(t *testing.T) {
	res := Generate("")

	if len(res.Steps) != 0 {
		t.Errorf("Steps = %v, want empty", res.Steps)
	}
	if len(res.Permutations) != 0 {
		t.Errorf("Permutations = %v, want empty", res.Permutations)
	}
	if res.Status != StatusEmpty {
		t.Errorf("Status = %v, want %v", res.Status, StatusEmpty)
	}
	if res.Completed() {
		t.Error("empty run should not report completion")
	}
}

func TestGenerateSingleCharacter(t *testing.T) {
	res := Generate("x")

	kinds := stepKinds(res)
	want := []Kind{KindEmit, KindComplete}
	if !slices.Equal(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
	if !slices.Equal(res.Permutations, []string{"x"}) {
		t.Errorf("Permutations = %v", res.Permutations)
	}
}

func TestGenerateStepSequence(t *testing.T) {
	res := Generate("ba")

	want := []Kind{
		KindSort,
		KindEmit,
		KindFindPivot,
		KindFindSwapCandidate,
		KindSwap,
		KindReverse,
		KindEmit,
		KindComplete,
	}
	if got := stepKinds(res); !slices.Equal(got, want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}

	pivot := res.Steps[2]
	if i, ok := pivot.PivotIndex(); !ok || i != 0 {
		t.Errorf("pivot index = %d, %v; want 0, true", i, ok)
	}
	if _, ok := pivot.SwapIndex(); ok {
		t.Error("find_pivot step should not carry a swap index")
	}
	if !slices.Equal(pivot.Highlight, []int{0, 1}) {
		t.Errorf("pivot highlight = %v, want [0 1]", pivot.Highlight)
	}

	swap := res.Steps[4]
	if swap.Permutation != "ba" {
		t.Errorf("swap permutation = %q, want post-swap %q", swap.Permutation, "ba")
	}
	if j, ok := swap.SwapIndex(); !ok || j != 1 {
		t.Errorf("swap index = %d, %v; want 1, true", j, ok)
	}

	reverse := res.Steps[5]
	if !slices.Equal(reverse.Highlight, []int{1}) {
		t.Errorf("reverse highlight = %v, want [1]", reverse.Highlight)
	}
	if _, ok := reverse.PivotIndex(); ok {
		t.Error("reverse step should not carry a pivot index")
	}
}

func TestGenerateDetails(t *testing.T) {
	res := Generate("acb")

	tests := []struct {
		kind Kind
		want string
	}{
		{KindSort, `Sorted input "acb" to get lexicographically smallest permutation`},
		{KindFindPivot, "Found position i=1 where current[1]='b' < current[2]='c'"},
		{KindFindSwapCandidate, "Found position j=2 where current[2]='c' > current[1]='b'"},
		{KindSwap, "Swapped characters at positions 1 and 2"},
		{KindReverse, "Reversed substring from position 2 to 2"},
		{KindEmit, `Generated permutation: "abc"`},
		{KindComplete, "No more permutations possible - all permutations generated!"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			idx := slices.IndexFunc(res.Steps, func(s Step) bool { return s.Kind == tt.kind })
			if idx < 0 {
				t.Fatalf("no %s step", tt.kind)
			}
			step := res.Steps[idx]
			if step.Detail != tt.want {
				t.Errorf("Detail = %q, want %q", step.Detail, tt.want)
			}
			if step.Description != tt.kind.Description() {
				t.Errorf("Description = %q, want %q", step.Description, tt.kind.Description())
			}
		})
	}
}

func TestGenerateFactorialCounts(t *testing.T) {
	for n := 1; n <= 6; n++ {
		input := "abcdef"[:n]
		res := Generate(input)

		if got, want := len(res.Permutations), Factorial(n); got != want {
			t.Errorf("%q: %d permutations, want %d", input, got, want)
		}
		if !res.Completed() {
			t.Errorf("%q: run should complete", input)
		}
	}
}

func TestGenerateCeilingReached(t *testing.T) {
	res := Generate("gfedcba")

	if res.Status != StatusCeilingReached {
		t.Errorf("Status = %v, want %v", res.Status, StatusCeilingReached)
	}
	if res.Completed() {
		t.Error("ceiling-bound run must not contain a complete step")
	}
	if got := res.Count(KindComplete); got != 0 {
		t.Errorf("complete steps = %d, want 0", got)
	}
	if got, want := len(res.Permutations), MaxIterations+1; got != want {
		t.Errorf("permutations = %d, want %d", got, want)
	}
	if last := res.Steps[len(res.Steps)-1]; last.Kind != KindEmit {
		t.Errorf("last step = %v, want emit", last.Kind)
	}
	assertMonotonic(t, res.Permutations)
}

func TestGenerateProperties(t *testing.T) {
	inputs := []string{"a", "ab", "abc", "cba", "aab", "abab", "zzz", "hello", "dcba", "mississ"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			res := Generate(input)
			n := len([]rune(input))

			completes := 0
			var emitted []string
			for k, s := range res.Steps {
				if got := len([]rune(s.Permutation)); got != n {
					t.Errorf("step %d: permutation length %d, want %d", k, got, n)
				}
				if !s.Kind.Valid() {
					t.Errorf("step %d: invalid kind %q", k, s.Kind)
				}
				if !slices.IsSorted(s.Highlight) {
					t.Errorf("step %d: highlight %v not ordered", k, s.Highlight)
				}
				switch s.Kind {
				case KindFindPivot:
					assertIndices(t, k, s, true, false)
				case KindFindSwapCandidate, KindSwap:
					assertIndices(t, k, s, true, true)
				default:
					assertIndices(t, k, s, false, false)
				}
				if s.Kind == KindComplete {
					completes++
					if k != len(res.Steps)-1 {
						t.Errorf("complete step at %d, not last", k)
					}
				}
				if s.Kind == KindEmit {
					emitted = append(emitted, s.Permutation)
				}
			}

			if res.Completed() && completes != 1 {
				t.Errorf("complete steps = %d, want 1", completes)
			}
			if !slices.Equal(emitted, res.Permutations) {
				t.Errorf("emit steps %v differ from Permutations %v", emitted, res.Permutations)
			}
			if res.Completed() && len(res.Permutations) != DistinctCount(input) {
				t.Errorf("permutations = %d, want %d", len(res.Permutations), DistinctCount(input))
			}
			seen := make(map[string]bool)
			for _, p := range res.Permutations {
				if seen[p] {
					t.Errorf("duplicate permutation %q", p)
				}
				seen[p] = true
			}
			assertMonotonic(t, res.Permutations)
		})
	}
}

func TestGenerateIdempotent(t *testing.T) {
	for _, input := range []string{"abc", "baca", "hello", "gfedcba"} {
		a := Generate(input)
		b := Generate(input)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Generate(%q) not deterministic", input)
		}
	}
}

func TestGenerateRoundTrip(t *testing.T) {
	res := Generate("abcd")

	for k := 0; k+1 < len(res.Permutations); k++ {
		buf := []rune(res.Permutations[k])
		if !Next(buf) {
			t.Fatalf("Next(%q) reported no successor", res.Permutations[k])
		}
		if got := string(buf); got != res.Permutations[k+1] {
			t.Errorf("Next(%q) = %q, want %q", res.Permutations[k], got, res.Permutations[k+1])
		}
	}

	last := []rune(res.Permutations[len(res.Permutations)-1])
	if Next(last) {
		t.Error("Next on the descending arrangement should report false")
	}
}

func TestGenerateSnapshotsDoNotAlias(t *testing.T) {
	res := Generate("abc")

	res.Steps[0].Highlight = append(res.Steps[0].Highlight, 99)
	*res.Steps[2].Pivot = 42

	again := Generate("abc")
	if i, _ := again.Steps[2].PivotIndex(); i == 42 {
		t.Error("pivot index shared between runs")
	}
	if p, _ := res.Steps[3].PivotIndex(); p == 42 {
		t.Error("pivot index shared between steps")
	}
}

func TestGenerateRunes(t *testing.T) {
	res := Generate("üa")

	want := []string{"aü", "üa"}
	if !slices.Equal(res.Permutations, want) {
		t.Errorf("Permutations = %v, want %v", res.Permutations, want)
	}
	if first := res.Steps[0]; first.Kind != KindSort || !slices.Equal(first.Highlight, []int{0, 1}) {
		t.Errorf("first step = %+v, want sort over rune positions", first)
	}
}

func TestGenerateWhitespaceIsACharacter(t *testing.T) {
	res := Generate("b a")
	if got := len(res.Permutations); got != 6 {
		t.Errorf("permutations = %d, want 6", got)
	}
	if res.Permutations[0] != " ab" {
		t.Errorf("first permutation = %q, want %q", res.Permutations[0], " ab")
	}
}

func TestFindPivotAndCandidate(t *testing.T) {
	tests := []struct {
		in        string
		pivot     int
		candidate int
	}{
		{"abc", 1, 2},
		{"acb", 0, 2},
		{"bca", 0, 1},
		{"cba", -1, -1},
		{"a", -1, -1},
		{"abdc", 1, 3},
		{"aba", 0, 1},
	}

	for _, tt := range tests {
		buf := []rune(tt.in)
		i := FindPivot(buf)
		if i != tt.pivot {
			t.Errorf("FindPivot(%q) = %d, want %d", tt.in, i, tt.pivot)
			continue
		}
		if i < 0 {
			continue
		}
		if j := FindSwapCandidate(buf, i); j != tt.candidate {
			t.Errorf("FindSwapCandidate(%q, %d) = %d, want %d", tt.in, i, j, tt.candidate)
		}
	}
}

func TestReverseRunes(t *testing.T) {
	tests := []struct {
		in         string
		start, end int
		want       string
	}{
		{"abcde", 0, 4, "edcba"},
		{"abcde", 1, 3, "adcbe"},
		{"abcde", 2, 2, "abcde"},
		{"abcde", 3, 2, "abcde"},
	}

	for _, tt := range tests {
		buf := []rune(tt.in)
		ReverseRunes(buf, tt.start, tt.end)
		if got := string(buf); got != tt.want {
			t.Errorf("ReverseRunes(%q, %d, %d) = %q, want %q", tt.in, tt.start, tt.end, got, tt.want)
		}
	}
}

func TestCodeHint(t *testing.T) {
	res := Generate("ab")

	hints := make(map[Kind]string)
	for _, s := range res.Steps {
		hints[s.Kind] = s.CodeHint()
	}

	if got := hints[KindSwap]; got != "swap_chars(&permuta[0], &permuta[1]);" {
		t.Errorf("swap hint = %q", got)
	}
	if got := hints[KindReverse]; got != "revers(permuta, 1, 1);" {
		t.Errorf("reverse hint = %q", got)
	}
	if got := hints[KindComplete]; got != "" {
		t.Errorf("complete hint = %q, want empty", got)
	}
	if !strings.Contains(hints[KindFindPivot], "permuta[i + 1]") {
		t.Errorf("pivot hint = %q", hints[KindFindPivot])
	}
}

func stepKinds(res Result) []Kind {
	kinds := make([]Kind, len(res.Steps))
	for i, s := range res.Steps {
		kinds[i] = s.Kind
	}
	return kinds
}

func assertIndices(t *testing.T, k int, s Step, wantPivot, wantSwap bool) {
	t.Helper()
	if _, ok := s.PivotIndex(); ok != wantPivot {
		t.Errorf("step %d (%s): has pivot = %v, want %v", k, s.Kind, ok, wantPivot)
	}
	if _, ok := s.SwapIndex(); ok != wantSwap {
		t.Errorf("step %d (%s): has swap = %v, want %v", k, s.Kind, ok, wantSwap)
	}
}

func assertMonotonic(t *testing.T, perms []string) {
	t.Helper()
	for k := 0; k+1 < len(perms); k++ {
		if !runesLess(perms[k], perms[k+1]) {
			t.Errorf("permutations[%d] = %q not less than permutations[%d] = %q", k, perms[k], k+1, perms[k+1])
		}
	}
}

func runesLess(a, b string) bool {
	return slices.Compare([]rune(a), []rune(b)) < 0
}
