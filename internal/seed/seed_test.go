package seed

import "testing"

func TestBuildIsValidAndIndependent(t *testing.T) {
	first := Build()
	if err := first.Validate(); err != nil {
		t.Fatalf("seed should validate: %v", err)
	}
	if len(first.Students) != 10 || len(first.Courses) != 10 || len(first.Professors) != 10 {
		t.Fatalf("unexpected seed sizes: %d students, %d courses, %d professors",
			len(first.Students), len(first.Courses), len(first.Professors))
	}
	if len(first.Enrollments) != 15 || len(first.Marks) != 11 || len(first.Assignments) != 10 {
		t.Fatalf("unexpected seed sizes: %d enrollments, %d marks, %d assignments",
			len(first.Enrollments), len(first.Marks), len(first.Assignments))
	}

	first.Students[0].FirstName = "Changed"
	*first.Assignments[0].EndDate = "2099-01-01"

	second := Build()
	if second.Students[0].FirstName != "John" {
		t.Fatalf("expected fresh student slice, got %s", second.Students[0].FirstName)
	}
	if *second.Assignments[0].EndDate != "2023-12-15" {
		t.Fatalf("expected fresh end date, got %s", *second.Assignments[0].EndDate)
	}
}
