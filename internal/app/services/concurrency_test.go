package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/repositories"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/pkg/apperrors"
	"github.com/yigit/studentforce/internal/pkg/grading"
	"github.com/yigit/studentforce/internal/pkg/idgen"
)

// slowBackend delays every save so that concurrent requests overlap
type slowBackend struct {
	*repositories.MemoryBackend
	delay time.Duration
}

func (b slowBackend) Save(ctx context.Context, data []byte) error {
	time.Sleep(b.delay)
	return b.MemoryBackend.Save(ctx, data)
}

func newSlowServices(t *testing.T) (*Services, *store.Store) {
	t.Helper()
	backend := slowBackend{MemoryBackend: repositories.NewMemoryBackend(), delay: 20 * time.Millisecond}
	repo := repositories.NewSnapshotRepository(backend, zerolog.Nop())
	s, err := store.Open(context.Background(), repo, store.WithIDGenerator(idgen.NewSequenceGenerator("new")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return New(s, ReportOptions{}), s
}

// parallel runs fn n times at once and collects the errors
func parallel(n int, fn func(i int) error) []error {
	errs := make([]error, n)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = fn(i)
		}(i)
	}
	close(start)
	wg.Wait()
	return errs
}

func TestConcurrentEnrollmentCreatesStoreOnePair(t *testing.T) {
	svc, s := newSlowServices(t)
	ctx := context.Background()

	errs := parallel(4, func(int) error {
		_, err := svc.Enrollments.Create(ctx, models.CourseEnrollment{StudentID: "st-010", CourseID: "cs-101", EnrollmentDate: "2024-01-10"})
		return err
	})

	created := 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case !errors.Is(err, apperrors.ErrAlreadyEnrolled):
			t.Fatalf("expected duplicate conflict, got %v", err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one successful create, got %d (%v)", created, errs)
	}

	pairs := 0
	for _, e := range s.Snapshot().Enrollments {
		if e.StudentID == "st-010" && e.CourseID == "cs-101" {
			pairs++
		}
	}
	if pairs != 1 {
		t.Fatalf("expected one stored (st-010, cs-101) enrollment, got %d", pairs)
	}
}

func TestConcurrentMarkCreatesStoreOneMark(t *testing.T) {
	svc, s := newSlowServices(t)
	ctx := context.Background()

	errs := parallel(3, func(i int) error {
		_, err := svc.Marks.Create(ctx, models.Mark{
			StudentID:      "st-004",
			CourseID:       "phy-101",
			ProfessorID:    "prof-003",
			Marks:          70 + i,
			SubmissionDate: "2024-05-10",
		})
		return err
	})

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
		} else if !errors.Is(err, apperrors.ErrMarkExists) {
			t.Fatalf("expected duplicate mark conflict, got %v", err)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one successful create, got %d", created)
	}
	marks := 0
	for _, m := range s.Snapshot().Marks {
		if m.StudentID == "st-004" && m.CourseID == "phy-101" {
			marks++
		}
	}
	if marks != 1 {
		t.Fatalf("expected one stored mark, got %d", marks)
	}
}

func TestMarkCreateRacingStudentDeleteLeavesNoOrphan(t *testing.T) {
	svc, s := newSlowServices(t)
	ctx := context.Background()

	parallel(2, func(i int) error {
		if i == 0 {
			return svc.Students.Delete(ctx, "st-004")
		}
		_, err := svc.Marks.Create(ctx, models.Mark{
			StudentID:      "st-004",
			CourseID:       "phy-101",
			ProfessorID:    "prof-003",
			Marks:          90,
			SubmissionDate: "2024-05-10",
		})
		return err
	})

	if _, ok := s.GetStudentByID("st-004"); ok {
		t.Fatalf("student delete should have succeeded")
	}
	for _, m := range s.Snapshot().Marks {
		if m.StudentID == "st-004" {
			t.Fatalf("mark %s references a deleted student", m.ID)
		}
	}
}

func TestConcurrentMarkUpdatesKeepGradeInSync(t *testing.T) {
	svc, s := newSlowServices(t)
	ctx := context.Background()

	errs := parallel(2, func(i int) error {
		var patch models.MarkPatch
		if i == 0 {
			patch.Marks = intPtr(40)
		} else {
			patch.SubmissionDate = strPtr("2024-01-05")
		}
		_, err := svc.Marks.Update(ctx, "mrk-001", patch)
		return err
	})
	for _, err := range errs {
		if err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	m, _ := s.GetMarkByID("mrk-001")
	if m.Marks != 40 || m.SubmissionDate != "2024-01-05" {
		t.Fatalf("both updates should apply, got %+v", m)
	}
	if want := grading.Calculate(m.Marks); m.Grade != want {
		t.Fatalf("grade %q does not match marks %d (want %q)", m.Grade, m.Marks, want)
	}
}
