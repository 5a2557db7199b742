package reports

import (
	"sort"
	"strings"

	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/pkg/grading"
)

// Report is the analytics view, optionally narrowed to one semester.
// Students and professors are never filtered by semester.
type Report struct {
	Semester    string       `json:"semester"`
	Students    Distribution `json:"students"`
	Courses     Distribution `json:"courses"`
	Enrollments Distribution `json:"enrollments"`
	Grades      Distribution `json:"grades"`
	Departments Distribution `json:"departments"`
	AverageMark int          `json:"averageMark"`
}

// Filtered holds the semester-scoped collections
type Filtered struct {
	Courses     []models.Course
	Enrollments []models.CourseEnrollment
	Marks       []models.Mark
}

// normalizeSemester trims the label and maps "" to "All"
func normalizeSemester(semester string) string {
	semester = strings.TrimSpace(semester)
	if semester == "" {
		return AllSemesters
	}
	return semester
}

// FilterBySemester keeps courses and marks whose own semester matches and
// enrollments whose course's semester matches. "" and "All" keep everything;
// surrounding whitespace is ignored.
func FilterBySemester(s *models.Snapshot, semester string) Filtered {
	semester = normalizeSemester(semester)
	if semester == AllSemesters {
		return Filtered{Courses: s.Courses, Enrollments: s.Enrollments, Marks: s.Marks}
	}

	f := Filtered{
		Courses:     []models.Course{},
		Enrollments: []models.CourseEnrollment{},
		Marks:       []models.Mark{},
	}
	inSemester := make(map[string]bool, len(s.Courses))
	for _, c := range s.Courses {
		if c.Semester == semester {
			f.Courses = append(f.Courses, c)
			inSemester[c.ID] = true
		}
	}
	for _, e := range s.Enrollments {
		if inSemester[e.CourseID] {
			f.Enrollments = append(f.Enrollments, e)
		}
	}
	for _, m := range s.Marks {
		if m.Semester == semester {
			f.Marks = append(f.Marks, m)
		}
	}
	return f
}

// Semesters lists "All" followed by each distinct course semester in
// first-seen order
func Semesters(s *models.Snapshot) []string {
	out := []string{AllSemesters}
	seen := map[string]bool{AllSemesters: true}
	for _, c := range s.Courses {
		if !seen[c.Semester] {
			seen[c.Semester] = true
			out = append(out, c.Semester)
		}
	}
	return out
}

// StudentStatusDistribution buckets students as Active, Inactive, Graduated
func StudentStatusDistribution(students []models.Student) Distribution {
	return statusDistribution(models.StudentStatuses, len(students), func(i int) models.StudentStatus {
		return students[i].Status
	})
}

// CourseStatusDistribution buckets courses as Active, Inactive
func CourseStatusDistribution(courses []models.Course) Distribution {
	return statusDistribution(models.ActivityStatuses, len(courses), func(i int) models.ActivityStatus {
		return courses[i].Status
	})
}

// EnrollmentStatusDistribution buckets enrollments as Enrolled, Completed, Dropped
func EnrollmentStatusDistribution(enrollments []models.CourseEnrollment) Distribution {
	return statusDistribution(models.EnrollmentStatuses, len(enrollments), func(i int) models.EnrollmentStatus {
		return enrollments[i].Status
	})
}

// GradeDistribution groups marks by the first letter of their grade, sorted
// alphabetically. Percentages are of all given marks; marks without a grade
// are counted in the total but not bucketed.
func GradeDistribution(marks []models.Mark) Distribution {
	counts := make(map[string]int)
	for _, m := range marks {
		if letter := grading.Letter(m.Grade); letter != "" {
			counts[letter]++
		}
	}
	letters := make([]string, 0, len(counts))
	for l := range counts {
		letters = append(letters, l)
	}
	sort.Strings(letters)

	d := Distribution{Total: len(marks), Buckets: make([]Bucket, 0, len(letters))}
	for _, l := range letters {
		d.Buckets = append(d.Buckets, Bucket{Label: l, Count: counts[l], Percentage: Percentage(counts[l], len(marks))})
	}
	return d
}

// DepartmentDistribution groups professors by department, largest first
// (ties by name), truncated to top. Percentages are of all professors.
func DepartmentDistribution(professors []models.Professor, top int) Distribution {
	counts := make(map[string]int)
	for _, p := range professors {
		counts[p.Department]++
	}
	buckets := make([]Bucket, 0, len(counts))
	for dept, n := range counts {
		buckets = append(buckets, Bucket{Label: dept, Count: n, Percentage: Percentage(n, len(professors))})
	}
	sort.Slice(buckets, func(a, b int) bool {
		if buckets[a].Count != buckets[b].Count {
			return buckets[a].Count > buckets[b].Count
		}
		return buckets[a].Label < buckets[b].Label
	})
	if top > 0 && len(buckets) > top {
		buckets = buckets[:top]
	}
	return Distribution{Total: len(professors), Buckets: buckets}
}

// BuildReport computes every breakdown for the given semester
func BuildReport(s *models.Snapshot, semester string, opts Options) Report {
	opts = opts.normalized()
	semester = normalizeSemester(semester)
	f := FilterBySemester(s, semester)
	return Report{
		Semester:    semester,
		Students:    StudentStatusDistribution(s.Students),
		Courses:     CourseStatusDistribution(f.Courses),
		Enrollments: EnrollmentStatusDistribution(f.Enrollments),
		Grades:      GradeDistribution(f.Marks),
		Departments: DepartmentDistribution(s.Professors, opts.TopDepartments),
		AverageMark: AverageMark(f.Marks),
	}
}
