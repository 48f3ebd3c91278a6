package pipeline

import (
	"slices"
	"testing"

	"github.com/rvzk/rvzk/field/m31"
)

func columnOf(n int) []m31.Element {
	col := make([]m31.Element, n)
	for i := range col {
		col[i] = m31.New(uint32(i))
	}

	return col
}

func TestToEvaluationLengthAndPermutation(t *testing.T) {
	const logSize = 4

	n := 1 << logSize
	col := columnOf(n)

	eval := ToEvaluation(col, logSize)
	if len(eval.Values) != n {
		t.Fatalf("expected %d values, got %d", n, len(eval.Values))
	}

	if eval.LogSize != logSize {
		t.Fatalf("expected log_size %d, got %d", logSize, eval.LogSize)
	}

	seen := make(map[uint32]bool, n)
	for _, v := range eval.Values {
		seen[v.ToUint32()] = true
	}

	for i := 0; i < n; i++ {
		if !seen[uint32(i)] {
			t.Fatalf("value %d missing from permutation", i)
		}
	}
}

func TestToBaseColumnAgreesWithToEvaluation(t *testing.T) {
	const logSize = 4

	col := columnOf(1 << logSize)

	base := ToBaseColumn(col, logSize)
	eval := ToEvaluation(col, logSize)

	if !slices.Equal(toUint32s(base), toUint32s(eval.Values)) {
		t.Fatalf("GetBaseColumn and circle_evaluation disagree")
	}
}

func toUint32s(col []m31.Element) []uint32 {
	out := make([]uint32, len(col))
	for i, v := range col {
		out[i] = v.ToUint32()
	}

	return out
}

func TestReverseBits(t *testing.T) {
	cases := []struct {
		x, bits, want uint
	}{
		{0b000, 3, 0b000},
		{0b001, 3, 0b100},
		{0b110, 3, 0b011},
		{0b0101, 4, 0b1010},
	}

	for _, c := range cases {
		if got := reverseBits(c.x, c.bits); got != c.want {
			t.Fatalf("reverseBits(%b, %d) = %b, want %b", c.x, c.bits, got, c.want)
		}
	}
}
