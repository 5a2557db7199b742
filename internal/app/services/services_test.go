package services

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/repositories"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/filestorage"
	"github.com/yigit/studentforce/internal/pkg/idgen"
	"github.com/yigit/studentforce/internal/pkg/spreadsheet"
	"github.com/yigit/studentforce/internal/seed"
)

func newServices(t *testing.T) (*Services, *store.Store) {
	t.Helper()
	repo := repositories.NewSnapshotRepository(repositories.NewMemoryBackend(), zerolog.Nop())
	s, err := store.Open(context.Background(), repo, store.WithIDGenerator(idgen.NewSequenceGenerator("new")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return New(s, ReportOptions{}), s
}

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

// requireFields asserts err is a validation error naming every field
func requireFields(t *testing.T, err error, fields ...string) {
	t.Helper()
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
	details := apperrors.DetailsOf(err)
	for _, f := range fields {
		if _, ok := details[f]; !ok {
			t.Fatalf("expected field %q in %v", f, details)
		}
	}
}

func validStudent() models.Student {
	return models.Student{
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          "grace.hopper@example.com",
		Phone:          "(555) 321-0000",
		DateOfBirth:    "1999-12-09",
		EnrollmentDate: "2024-01-15",
	}
}

func TestStudentCreateValidation(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.Students.Create(ctx, models.Student{Email: "nope"})
	requireFields(t, err, "firstName", "lastName", "email", "phone", "dateOfBirth", "enrollmentDate")
	if got := apperrors.DetailsOf(err)["email"]; got != "Invalid email address" {
		t.Fatalf("unexpected email message %v", got)
	}

	bad := validStudent()
	bad.Status = "Suspended"
	_, err = svc.Students.Create(ctx, bad)
	requireFields(t, err, "status")

	created, err := svc.Students.Create(ctx, validStudent())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "new-1" || created.Status != models.StudentActive {
		t.Fatalf("unexpected created student %+v", created)
	}
}

func TestStudentSearchAndNotFound(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	if got := svc.Students.List("EMMA"); len(got) != 1 || got[0].ID != "st-002" {
		t.Fatalf("unexpected search result %+v", got)
	}
	if got := svc.Students.List("(555) 1"); len(got) != 1 || got[0].ID != "st-001" {
		t.Fatalf("expected phone search to hit st-001, got %+v", got)
	}
	if got := svc.Students.List(""); len(got) != 10 {
		t.Fatalf("empty query must list everything, got %d", len(got))
	}

	_, err := svc.Students.Get("st-404")
	if !errors.Is(err, apperrors.ErrResourceNotFound) || !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Students.Delete(ctx, "st-404"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
	if _, err := svc.Students.Update(ctx, "st-404", models.StudentPatch{}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
	if _, err := svc.Students.Summary("st-404"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found on summary, got %v", err)
	}
}

func TestStudentUpdateValidatesMergedRecord(t *testing.T) {
	svc, s := newServices(t)
	ctx := context.Background()

	_, err := svc.Students.Update(ctx, "st-001", models.StudentPatch{Email: strPtr("broken")})
	requireFields(t, err, "email")
	if st, _ := s.GetStudentByID("st-001"); st.Email != "john.smith@example.com" {
		t.Fatalf("rejected update must not be applied, got %s", st.Email)
	}

	updated, err := svc.Students.Update(ctx, "st-001", models.StudentPatch{Phone: strPtr("(555) 000-0000")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Phone != "(555) 000-0000" || updated.FirstName != "John" {
		t.Fatalf("unexpected update result %+v", updated)
	}
}

func TestCourseAndProfessorValidation(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.Courses.Create(ctx, models.Course{Name: "Compilers", Code: "CS450"})
	requireFields(t, err, "description", "semester", "credits", "duration")

	c, err := svc.Courses.Create(ctx, models.Course{Name: "Compilers", Code: "CS450", Description: "Parsing", Semester: "Fall 2024", Credits: 3, Duration: 14})
	if err != nil || c.Status != models.StatusActive {
		t.Fatalf("create course: %+v %v", c, err)
	}
	if got := svc.Courses.List("cs45"); len(got) != 1 {
		t.Fatalf("expected code search hit, got %+v", got)
	}

	_, err = svc.Professors.Create(ctx, models.Professor{FirstName: "Ada", LastName: "Lovelace", Email: "ada@uni.edu"})
	requireFields(t, err, "phone", "department", "specialization", "joinDate")

	if got := svc.Professors.List("computer science"); len(got) != 3 {
		t.Fatalf("expected 3 computer science professors, got %d", len(got))
	}
}

func TestAcademicYear(t *testing.T) {
	cases := map[string]string{"Fall 2023": "2023-2024", "Spring 2024": "2024-2025"}
	for semester, want := range cases {
		if got, ok := AcademicYear(semester); !ok || got != want {
			t.Fatalf("AcademicYear(%q) = %q, want %q", semester, got, want)
		}
	}
	if _, ok := AcademicYear("Someday"); ok {
		t.Fatalf("expected no academic year")
	}
}

func TestEnrollmentRules(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.Enrollments.Create(ctx, models.CourseEnrollment{StudentID: "st-001", CourseID: "cs-101", EnrollmentDate: "2024-01-10"})
	if !errors.Is(err, apperrors.ErrConflict) || !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Fatalf("expected duplicate enrollment conflict, got %v", err)
	}

	_, err = svc.Enrollments.Create(ctx, models.CourseEnrollment{StudentID: "ghost", CourseID: "cs-101", EnrollmentDate: "2024-01-10"})
	requireFields(t, err, "studentId")

	e, err := svc.Enrollments.Create(ctx, models.CourseEnrollment{StudentID: "st-001", CourseID: "cs-201", EnrollmentDate: "2024-01-10"})
	if err != nil || e.Status != models.EnrollmentEnrolled {
		t.Fatalf("create enrollment: %+v %v", e, err)
	}

	// moving enr-003 onto st-001's existing cs-101 pair is a duplicate
	_, err = svc.Enrollments.Update(ctx, "enr-003", models.EnrollmentPatch{StudentID: strPtr("st-001")})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict on update, got %v", err)
	}
	// re-saving the same pair is not a duplicate of itself
	dropped := models.EnrollmentDropped
	if _, err := svc.Enrollments.Update(ctx, "enr-001", models.EnrollmentPatch{Status: &dropped}); err != nil {
		t.Fatalf("update own pair: %v", err)
	}
}

func TestMarkCreateDerivesGradeAndSemester(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	m, err := svc.Marks.Create(ctx, models.Mark{
		StudentID:      "st-004",
		CourseID:       "phy-101",
		ProfessorID:    "prof-003",
		Marks:          84,
		Grade:          "A",
		SubmissionDate: "2024-05-10",
	})
	if err != nil {
		t.Fatalf("create mark: %v", err)
	}
	if m.Grade != "B+" || m.Semester != "Spring 2024" || m.AcademicYear != "2024-2025" {
		t.Fatalf("unexpected derived fields %+v", m)
	}
}

func TestMarkConsistencyAndDuplicates(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	base := func(student, course, prof string) models.Mark {
		return models.Mark{StudentID: student, CourseID: course, ProfessorID: prof, Marks: 70, SubmissionDate: "2024-05-10"}
	}

	// enr-007 is dropped
	_, err := svc.Marks.Create(ctx, base("st-004", "cs-101", "prof-001"))
	requireFields(t, err, "courseId")

	// math-201 is taught by prof-009
	_, err = svc.Marks.Create(ctx, base("st-009", "math-201", "prof-002"))
	requireFields(t, err, "professorId")

	_, err = svc.Marks.Create(ctx, base("st-001", "cs-101", "prof-001"))
	if !errors.Is(err, apperrors.ErrConflict) || !errors.Is(err, apperrors.ErrMarkExists) {
		t.Fatalf("expected duplicate mark conflict, got %v", err)
	}

	out := base("st-009", "math-201", "prof-009")
	out.Marks = 101
	_, err = svc.Marks.Create(ctx, out)
	requireFields(t, err, "marks")
}

func TestMarkUpdateRegrades(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	m, err := svc.Marks.Update(ctx, "mrk-001", models.MarkPatch{Marks: intPtr(95), Grade: strPtr("F")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Marks != 95 || m.Grade != "A" {
		t.Fatalf("expected regrade to A, got %+v", m)
	}

	// mrk-007 sits on a cancelled assignment; untouched links are not rechecked
	if _, err := svc.Marks.Update(ctx, "mrk-007", models.MarkPatch{Marks: intPtr(60)}); err != nil {
		t.Fatalf("update without relinking: %v", err)
	}
	if _, err := svc.Marks.Update(ctx, "mrk-404", models.MarkPatch{}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAssignmentDates(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.Assignments.Create(ctx, models.TeachingAssignment{ProfessorID: "prof-002", CourseID: "math-201", StartDate: "2024-02-01", EndDate: strPtr("2024-01-01")})
	requireFields(t, err, "endDate")

	a, err := svc.Assignments.Create(ctx, models.TeachingAssignment{ProfessorID: "prof-002", CourseID: "math-201", StartDate: "2024-02-01"})
	if err != nil || a.Status != models.AssignmentActive || a.EndDate != nil {
		t.Fatalf("create assignment: %+v %v", a, err)
	}

	cleared, err := svc.Assignments.Update(ctx, "ta-001", models.AssignmentPatch{ClearEndDate: true})
	if err != nil || cleared.EndDate != nil {
		t.Fatalf("clear end date: %+v %v", cleared, err)
	}
}

func TestReportService(t *testing.T) {
	svc, _ := newServices(t)

	if got := svc.Reports.Semesters(); len(got) != 3 {
		t.Fatalf("unexpected semesters %v", got)
	}
	if d := svc.Reports.Dashboard(); len(d.RecentMarks) != 5 || d.Stats.TotalStudents != 10 {
		t.Fatalf("unexpected dashboard %+v", d.Stats)
	}
	if r := svc.Reports.Report("Spring 2024"); r.Courses.Total != 5 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestSettingsExportImport(t *testing.T) {
	svc, s := newServices(t)
	ctx := context.Background()

	doc, err := svc.Settings.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := svc.Settings.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(s.Snapshot().Students) != 0 || s.Snapshot().CurrentUser.ID != "user-001" {
		t.Fatalf("clear must empty collections and keep the user")
	}

	if err := svc.Settings.Import(ctx, doc); err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(s.Snapshot().Marks) != 11 {
		t.Fatalf("expected import to restore marks, got %d", len(s.Snapshot().Marks))
	}

	err = svc.Settings.Import(ctx, []byte(`{"version": 7}`))
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request for newer version, got %v", err)
	}
	if len(s.Snapshot().Marks) != 11 {
		t.Fatalf("rejected import must not change data")
	}
}

func TestSettingsCurrentUser(t *testing.T) {
	svc, _ := newServices(t)
	ctx := context.Background()

	_, err := svc.Settings.UpdateCurrentUser(ctx, models.UserPatch{Email: strPtr("admin-at-nowhere")})
	requireFields(t, err, "email")

	u, err := svc.Settings.UpdateCurrentUser(ctx, models.UserPatch{Name: strPtr("Registrar Office")})
	if err != nil || u.Name != "Registrar Office" || u.Role != models.RoleAdmin {
		t.Fatalf("update user: %+v %v", u, err)
	}
}

func TestImportStudentsWorkbook(t *testing.T) {
	svc, s := newServices(t)
	ctx := context.Background()

	dir := t.TempDir()
	storage, err := filestorage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("storage: %v", err)
	}
	svc.Settings.WithArchive(storage, zerolog.Nop())

	snap := seed.Build()
	snap.Students = append(snap.Students[:2], models.Student{FirstName: "No", LastName: "Email"})
	var buf bytes.Buffer
	if err := spreadsheet.WriteSnapshot(&buf, snap); err != nil {
		t.Fatalf("workbook: %v", err)
	}

	result, err := svc.Settings.ImportStudents(ctx, buf.Bytes(), "students.xlsx")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(result.Imported) != 2 || len(result.Rejected) != 1 || result.Rejected[0].Row != 4 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(s.Snapshot().Students) != 12 {
		t.Fatalf("expected 12 students, got %d", len(s.Snapshot().Students))
	}

	archived, err := os.ReadDir(filepath.Join(dir, "imports"))
	if err != nil || len(archived) != 1 {
		t.Fatalf("expected one archived upload, got %v %v", archived, err)
	}

	if _, err := svc.Settings.ImportStudents(ctx, []byte("garbage"), "x.xlsx"); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Fatalf("expected bad request, got %v", err)
	}
}
