// Released under an MIT license. See LICENSE.

package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ratiolang/ratio/internal/reader"
)

func TestArithmetic(t *testing.T) {
	got := transcript(t, New(8),
		"1/2 + 1/3",
		"1/2 - 1/3",
		"1/2 * 1/3",
		"(1/2) / (1/3)",
		"-(1/2)",
		"2000000000/4000000000",
	)

	want := []string{"5/6", "1/6", "1/6", "3/2", "-1/2", "1/2"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestCells(t *testing.T) {
	got := transcript(t, New(8),
		"a1 = 117/1098",
		"a1 * 2",
		"b2",
		"h8 = a1 + 1/122",
		"h8",
	)

	want := []string{"13/122", "13/61", "0", "7/61", "7/61"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestComparisons(t *testing.T) {
	got := transcript(t, New(8),
		"1/2 < 2/3",
		"1/2 > 2/3",
		"1/2 <= 1/2",
		"1/2 >= 2/3",
		"1/2 == 2/4",
		"1/2 != 2/4",
		"(1 < 2) + (3 < 2)",
	)

	want := []string{"1", "0", "1", "0", "1", "0", "1"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestDivisionByZero(t *testing.T) {
	got := transcript(t, New(8),
		"1 / 0",
		"1 / (2 - 2)",
		"1 / b7",
	)

	want := []string{
		"error: division by zero",
		"error: division by zero",
		"error: division by zero",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestCellNames(t *testing.T) {
	got := transcript(t, New(2),
		"a1 = 1",
		"b2 = 2",
		"c1",
		"a3",
		"abc = 3",
		"A1",
	)

	want := []string{
		"1",
		"2",
		"error: c1: cell is off the grid",
		"error: a3: cell is off the grid",
		"error: 'abc' is not a cell name",
		"error: 'A1' is not a cell name",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignmentFailureLeavesCell(t *testing.T) {
	e := New(2)

	got := transcript(t, e,
		"a1 = 5",
		"a1 = 1 / 0",
		"a1",
	)

	want := []string{"5", "error: division by zero", "5"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("transcript mismatch (-want +got):\n%s", diff)
	}
}

func transcript(t *testing.T, e *T, lines ...string) []string {
	t.Helper()

	r := reader.New("test")

	out := []string{}

	for _, line := range lines {
		x, err := r.Scan(line)
		if err != nil {
			t.Fatalf("scanning %q: %v", line, err)
		}

		if x == nil {
			continue
		}

		v, err := e.Evaluate(x)
		if err != nil {
			out = append(out, "error: "+err.Error())

			continue
		}

		out = append(out, v.String())
	}

	return out
}
