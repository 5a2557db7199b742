package grading

import "testing"

func TestCalculateLadder(t *testing.T) {
	cases := map[int]string{
		100: "A",
		95:  "A",
		90:  "A",
		89:  "B+",
		80:  "B+",
		79:  "B",
		75:  "B",
		74:  "B-",
		70:  "B-",
		65:  "C+",
		60:  "C",
		55:  "C-",
		50:  "D",
		49:  "F",
		0:   "F",
		-5:  "F",
		150: "A",
	}
	for marks, expect := range cases {
		if got := Calculate(marks); got != expect {
			t.Fatalf("Calculate(%d): expected %s, got %s", marks, expect, got)
		}
	}
}

func TestCalculateMonotonic(t *testing.T) {
	rank := map[string]int{"A": 8, "B+": 7, "B": 6, "B-": 5, "C+": 4, "C": 3, "C-": 2, "D": 1, "F": 0}
	prev := rank[Calculate(120)]
	for m := 119; m >= -20; m-- {
		cur := rank[Calculate(m)]
		if cur > prev {
			t.Fatalf("grade rose from %d to %d when marks decreased to %d", prev, cur, m)
		}
		prev = cur
	}
}

func TestLetter(t *testing.T) {
	if Letter("B+") != "B" || Letter("A") != "A" || Letter("") != "" {
		t.Fatalf("unexpected letter grouping")
	}
	for grade, want := range map[string]string{"É+": "É", "Ü": "Ü", "优": "优"} {
		if got := Letter(grade); got != want {
			t.Fatalf("Letter(%q): expected %q, got %q", grade, want, got)
		}
	}
}
