package reports

import (
	"fmt"
	"testing"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/seed"
)

func bucketsOf(d Distribution) string {
	out := ""
	for _, b := range d.Buckets {
		out += fmt.Sprintf("%s:%d:%d ", b.Label, b.Count, b.Percentage)
	}
	return out
}

func TestAverage(t *testing.T) {
	if Average(nil) != 0 {
		t.Fatalf("average of empty must be 0")
	}
	if got := Average([]int{80, 90}); got != 85 {
		t.Fatalf("expected 85, got %d", got)
	}
	if got := Average([]int{80, 81}); got != 81 {
		t.Fatalf("expected half to round up, got %d", got)
	}
}

func TestPercentageZeroTotal(t *testing.T) {
	if Percentage(0, 0) != 0 || Percentage(3, 0) != 0 {
		t.Fatalf("zero total must yield 0")
	}
	if Percentage(1, 8) != 13 || Percentage(2, 3) != 67 {
		t.Fatalf("unexpected rounding: %d %d", Percentage(1, 8), Percentage(2, 3))
	}

	empty := StudentStatusDistribution(nil)
	if len(empty.Buckets) != 3 {
		t.Fatalf("expected a bucket per status, got %d", len(empty.Buckets))
	}
	for _, b := range empty.Buckets {
		if b.Count != 0 || b.Percentage != 0 {
			t.Fatalf("expected zero bucket, got %+v", b)
		}
	}
}

func TestDashboardOnSeed(t *testing.T) {
	d := BuildDashboard(seed.Build(), DefaultOptions())

	want := DashboardStats{
		TotalStudents: 10, ActiveStudents: 8, InactiveStudents: 1, GraduatedStudents: 1,
		TotalCourses: 10, ActiveCourses: 9, TotalProfessors: 10, ActiveProfessors: 9,
		TotalEnrollments: 15, TotalAssignments: 10, TotalMarks: 11, AverageMark: 87,
	}
	if d.Stats != want {
		t.Fatalf("unexpected stats:\n got %+v\nwant %+v", d.Stats, want)
	}
	if d.Greeting != "Welcome back, Admin User" {
		t.Fatalf("unexpected greeting %q", d.Greeting)
	}

	var enrollments []string
	for _, e := range d.RecentEnrollments {
		enrollments = append(enrollments, e.ID)
	}
	if fmt.Sprint(enrollments) != "[enr-014 enr-008 enr-013 enr-010 enr-003]" {
		t.Fatalf("unexpected recent enrollments %v", enrollments)
	}
	if d.RecentEnrollments[0].StudentName != "Isabella Martinez" || d.RecentEnrollments[0].CourseName != "Chemistry I" {
		t.Fatalf("names not resolved: %+v", d.RecentEnrollments[0])
	}

	var marks []string
	for _, m := range d.RecentMarks {
		marks = append(marks, m.ID)
	}
	if fmt.Sprint(marks) != "[mrk-006 mrk-011 mrk-001 mrk-003 mrk-010]" {
		t.Fatalf("unexpected recent marks %v", marks)
	}
}

func TestRecentFeedsUseSentinels(t *testing.T) {
	s := seed.Build()
	s.Enrollments = []models.CourseEnrollment{{ID: "e1", StudentID: "ghost", CourseID: "nowhere", EnrollmentDate: "2024-01-01"}}
	s.Marks = []models.Mark{{ID: "m1", StudentID: "ghost", CourseID: "nowhere", SubmissionDate: "bad date"}}

	d := BuildDashboard(s, Options{RecentLimit: 1})
	if d.RecentEnrollments[0].StudentName != models.UnknownStudent || d.RecentEnrollments[0].CourseName != models.UnknownCourse {
		t.Fatalf("expected sentinels, got %+v", d.RecentEnrollments[0])
	}
	if len(d.RecentMarks) != 1 || d.RecentMarks[0].StudentName != models.UnknownStudent {
		t.Fatalf("expected sentinel mark row, got %+v", d.RecentMarks)
	}
}

func TestReportOnSeed(t *testing.T) {
	r := BuildReport(seed.Build(), "", DefaultOptions())

	if r.Semester != AllSemesters {
		t.Fatalf("expected All, got %s", r.Semester)
	}
	if got := bucketsOf(r.Students); got != "Active:8:80 Inactive:1:10 Graduated:1:10 " {
		t.Fatalf("students: %s", got)
	}
	if got := bucketsOf(r.Courses); got != "Active:9:90 Inactive:1:10 " {
		t.Fatalf("courses: %s", got)
	}
	if got := bucketsOf(r.Enrollments); got != "Enrolled:12:80 Completed:2:13 Dropped:1:7 " {
		t.Fatalf("enrollments: %s", got)
	}
	if got := bucketsOf(r.Grades); got != "A:5:45 B:4:36 C:2:18 " {
		t.Fatalf("grades: %s", got)
	}
	if got := bucketsOf(r.Departments); got != "Computer Science:3:30 English:2:20 Mathematics:2:20 Biology:1:10 Chemistry:1:10 " {
		t.Fatalf("departments: %s", got)
	}
	if r.AverageMark != 87 {
		t.Fatalf("expected average 87, got %d", r.AverageMark)
	}
}

func TestReportSemesterFilter(t *testing.T) {
	s := seed.Build()

	fall := BuildReport(s, "Fall 2023", DefaultOptions())
	if fall.Courses.Total != 5 || fall.Enrollments.Total != 11 || fall.Grades.Total != 11 {
		t.Fatalf("fall totals: %d courses, %d enrollments, %d marks", fall.Courses.Total, fall.Enrollments.Total, fall.Grades.Total)
	}
	if got := bucketsOf(fall.Enrollments); got != "Enrolled:9:82 Completed:1:9 Dropped:1:9 " {
		t.Fatalf("fall enrollments: %s", got)
	}
	if fall.Students.Total != 10 || fall.Departments.Total != 10 {
		t.Fatalf("students and professors must not be filtered")
	}

	spring := BuildReport(s, "Spring 2024", DefaultOptions())
	if got := bucketsOf(spring.Courses); got != "Active:4:80 Inactive:1:20 " {
		t.Fatalf("spring courses: %s", got)
	}
	if spring.Enrollments.Total != 4 || spring.Grades.Total != 0 || len(spring.Grades.Buckets) != 0 || spring.AverageMark != 0 {
		t.Fatalf("unexpected spring report: %+v", spring)
	}

	none := BuildReport(s, "Summer 1999", DefaultOptions())
	for _, b := range none.Enrollments.Buckets {
		if b.Percentage != 0 {
			t.Fatalf("expected 0%% for empty filter, got %+v", b)
		}
	}
}

func TestReportSemesterIgnoresSurroundingSpace(t *testing.T) {
	s := seed.Build()

	padded := BuildReport(s, "  Fall 2023 ", DefaultOptions())
	fall := BuildReport(s, "Fall 2023", DefaultOptions())
	if padded.Semester != "Fall 2023" {
		t.Fatalf("semester label should be trimmed, got %q", padded.Semester)
	}
	if padded.Courses.Total != fall.Courses.Total || padded.Enrollments.Total != fall.Enrollments.Total || padded.Grades.Total != fall.Grades.Total {
		t.Fatalf("padded filter differs: %+v vs %+v", padded, fall)
	}

	f := FilterBySemester(s, "\tSpring 2024\n")
	if len(f.Courses) != 5 || len(f.Enrollments) != 4 {
		t.Fatalf("padded filter kept %d courses, %d enrollments", len(f.Courses), len(f.Enrollments))
	}

	if blank := BuildReport(s, "   ", DefaultOptions()); blank.Semester != AllSemesters {
		t.Fatalf("blank semester should mean All, got %q", blank.Semester)
	}
}

func TestSemesters(t *testing.T) {
	if got := fmt.Sprint(Semesters(seed.Build())); got != "[All Fall 2023 Spring 2024]" {
		t.Fatalf("unexpected semesters %s", got)
	}
}

func TestSummaries(t *testing.T) {
	s := seed.Build()

	st, ok := SummarizeStudent(s, "st-001")
	if !ok || len(st.Enrollments) != 2 || len(st.Marks) != 2 || st.AverageMark != 90 {
		t.Fatalf("unexpected student summary: %+v", st)
	}
	if st.Marks[0].ProfessorName != "Robert Johnson" || st.Enrollments[1].CourseName != "Calculus I" {
		t.Fatalf("names not resolved: %+v", st.Marks[0])
	}

	c, ok := SummarizeCourse(s, "cs-101")
	if !ok || len(c.Enrollments) != 4 || len(c.Assignments) != 1 || len(c.Marks) != 3 {
		t.Fatalf("unexpected course summary: %+v", c)
	}
	// (88 + 78 + 93) / 3 = 86.33
	if c.AverageMark != 86 {
		t.Fatalf("expected course average 86, got %d", c.AverageMark)
	}
	if got := bucketsOf(c.Statuses); got != "Enrolled:3:75 Completed:0:0 Dropped:1:25 " {
		t.Fatalf("course statuses: %s", got)
	}

	p, ok := SummarizeProfessor(s, "prof-001")
	if !ok || len(p.Assignments) != 2 || len(p.Marks) != 3 {
		t.Fatalf("unexpected professor summary: %+v", p)
	}

	if _, ok := SummarizeStudent(s, "st-404"); ok {
		t.Fatalf("expected unknown student")
	}
}
