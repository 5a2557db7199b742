// Package grading maps numeric marks to letter grades.
package grading

import "unicode/utf8"

type threshold struct {
	min   int
	grade string
}

// ladder is checked top-down; the first threshold the mark reaches wins.
var ladder = []threshold{
	{90, "A"},
	{80, "B+"},
	{75, "B"},
	{70, "B-"},
	{65, "C+"},
	{60, "C"},
	{55, "C-"},
	{50, "D"},
}

// Failing is the grade for marks below every threshold
const Failing = "F"

// Calculate returns the letter grade for marks. Values outside 0..100 are not
// clamped; they fall through the same ladder.
func Calculate(marks int) string {
	for _, t := range ladder {
		if marks >= t.min {
			return t.grade
		}
	}
	return Failing
}

// Letter returns the grade's leading letter ("B+" -> "B"), used to group grades.
// An empty grade yields "".
func Letter(grade string) string {
	r, size := utf8.DecodeRuneInString(grade)
	if size == 0 {
		return ""
	}
	return string(r)
}
