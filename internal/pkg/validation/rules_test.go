package validation

import "testing"

func TestIsEmail(t *testing.T) {
	cases := map[string]bool{
		"john.smith@example.com":  true,
		"JOHN.SMITH@EXAMPLE.COM":  true,
		"a+b@uni.edu":             true,
		"missing-at.example.com":  false,
		"john@example":            false,
		"john@example.toolongtld": false,
		"":                        false,
	}
	for in, want := range cases {
		if got := IsEmail(in); got != want {
			t.Errorf("IsEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsISODate(t *testing.T) {
	cases := map[string]bool{
		"2023-08-25": true,
		"2024-02-29": true,
		"2023-02-29": false,
		"2023-8-25":  false,
		"25/08/2023": false,
		"":           false,
	}
	for in, want := range cases {
		if got := IsISODate(in); got != want {
			t.Errorf("IsISODate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSemesterYear(t *testing.T) {
	if y, ok := SemesterYear("Fall 2023"); !ok || y != "2023" {
		t.Fatalf("expected 2023, got %q %v", y, ok)
	}
	if _, ok := SemesterYear("Fall"); ok {
		t.Fatalf("expected no year")
	}
}

func TestStringAndNumericValidation(t *testing.T) {
	if NewStringValidation("   ").Validate() {
		t.Fatalf("blank required value must fail")
	}
	if NewStringValidation("abc").WithMaxLength(2).Validate() {
		t.Fatalf("max length not enforced")
	}
	// length counts characters, not bytes
	if !NewStringValidation("Zoë Ørsted").WithMaxLength(10).Validate() {
		t.Fatalf("multi-byte name within the limit must pass")
	}

	marks := func(v int) bool {
		return NewNumericValidation(v).WithMin(MarksMin).WithMax(MarksMax).Validate()
	}
	if !marks(0) || !marks(100) || marks(-1) || marks(101) {
		t.Fatalf("mark bounds not inclusive 0..100")
	}
	if !NewNumericValidation(-50).Validate() {
		t.Fatalf("unbounded value must pass")
	}
}
