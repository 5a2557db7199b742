package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/controllers"
	"github.com/yigit/studentforce/internal/app/repositories"
	"github.com/yigit/studentforce/internal/app/routes"
	"github.com/yigit/studentforce/internal/app/services"
	"github.com/yigit/studentforce/internal/app/store"
	"github.com/yigit/studentforce/internal/middleware"
	"github.com/yigit/studentforce/internal/pkg/idgen"
)

const uploadLimit = 64 << 10

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

type list struct {
	Items []map[string]interface{} `json:"items"`
	Total int                      `json:"total"`
}

func newRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	middleware.RegisterValidators()

	repo := repositories.NewSnapshotRepository(repositories.NewMemoryBackend(), zerolog.Nop())
	s, err := store.Open(context.Background(), repo, store.WithIDGenerator(idgen.NewSequenceGenerator("new")))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	svc := services.New(s, services.ReportOptions{})

	router := gin.New()
	routes.SetupRouter(router, routes.Controllers{
		Students:    controllers.NewStudentController(svc.Students),
		Courses:     controllers.NewCourseController(svc.Courses),
		Professors:  controllers.NewProfessorController(svc.Professors),
		Enrollments: controllers.NewEnrollmentController(svc.Enrollments),
		Marks:       controllers.NewMarkController(svc.Marks),
		Assignments: controllers.NewAssignmentController(svc.Assignments),
		Reports:     controllers.NewReportController(svc.Reports),
		Settings:    controllers.NewSettingsController(svc.Settings, zerolog.Nop()),
		Health:      controllers.NewHealthController(s, nil, "memory", nil),
	}, uploadLimit)
	return router, s
}

func do(t *testing.T, router http.Handler, method, path, body string) (int, envelope, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s %s: decode %s: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, env, w.Body.Bytes()
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
}

func TestListAndSearch(t *testing.T) {
	router, _ := newRouter(t)

	code, env, _ := do(t, router, http.MethodGet, "/api/v1/students", "")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("unexpected response %d %+v", code, env)
	}
	var students list
	decode(t, env.Data, &students)
	if students.Total != 10 || len(students.Items) != 10 {
		t.Fatalf("expected 10 students, got %d", students.Total)
	}

	_, env, _ = do(t, router, http.MethodGet, "/api/v1/students?q=JOHN.SMITH", "")
	decode(t, env.Data, &students)
	if students.Total != 1 || students.Items[0]["id"] != "st-001" {
		t.Fatalf("unexpected search result %+v", students)
	}
}

func TestUnknownIDReturns404(t *testing.T) {
	router, _ := newRouter(t)

	for _, path := range []string{
		"/api/v1/students/missing",
		"/api/v1/courses/missing/summary",
		"/api/v1/marks/missing",
	} {
		code, env, _ := do(t, router, http.MethodGet, path, "")
		if code != http.StatusNotFound || env.Error == nil || env.Error.Code != "RES_001" {
			t.Fatalf("%s: expected 404 RES_001, got %d %+v", path, code, env.Error)
		}
	}

	code, _, _ := do(t, router, http.MethodPatch, "/api/v1/professors/missing", `{"department":"Physics"}`)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown professor update, got %d", code)
	}
}

func TestCreateStudent(t *testing.T) {
	router, s := newRouter(t)

	code, env, _ := do(t, router, http.MethodPost, "/api/v1/students", `{
		"firstName": "Grace", "lastName": "Hopper", "email": "not-an-email",
		"phone": "(555) 321-0000", "dateOfBirth": "1999-13-40", "enrollmentDate": "2024-01-15"
	}`)
	if code != http.StatusBadRequest || env.Error.Code != "VAL_001" {
		t.Fatalf("expected 400 VAL_001, got %d %+v", code, env.Error)
	}
	for _, field := range []string{"email", "dateOfBirth"} {
		if _, ok := env.Error.Details[field]; !ok {
			t.Fatalf("expected %s in details %v", field, env.Error.Details)
		}
	}
	if len(s.Snapshot().Students) != 10 {
		t.Fatalf("rejected request must not change the store")
	}

	code, env, _ = do(t, router, http.MethodPost, "/api/v1/students", `{
		"firstName": "Grace", "lastName": "Hopper", "email": "grace.hopper@example.com",
		"phone": "(555) 321-0000", "dateOfBirth": "1999-12-09", "enrollmentDate": "2024-01-15"
	}`)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %+v", code, env.Error)
	}
	var created map[string]interface{}
	decode(t, env.Data, &created)
	if created["id"] != "new-1" || created["status"] != "Active" {
		t.Fatalf("unexpected student %+v", created)
	}
}

func TestMalformedBody(t *testing.T) {
	router, _ := newRouter(t)

	code, env, _ := do(t, router, http.MethodPost, "/api/v1/courses", `{"name": `)
	if code != http.StatusBadRequest || env.Error.Code != "REQ_001" {
		t.Fatalf("expected 400 REQ_001, got %d %+v", code, env.Error)
	}

	code, env, _ = do(t, router, http.MethodPost, "/api/v1/courses", `{"name": "Algebra", "credits": "three"}`)
	if code != http.StatusBadRequest || env.Error.Code != "REQ_001" {
		t.Fatalf("expected 400 REQ_001 for a type mismatch, got %d %+v", code, env.Error)
	}
}

func TestPatchChangesOnlyGivenFields(t *testing.T) {
	router, s := newRouter(t)
	before, _ := s.GetStudentByID("st-001")

	code, env, _ := do(t, router, http.MethodPatch, "/api/v1/students/st-001", `{"firstName":"Jane"}`)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", code, env.Error)
	}
	after, _ := s.GetStudentByID("st-001")
	if after.FirstName != "Jane" || after.LastName != before.LastName || after.Email != before.Email {
		t.Fatalf("unexpected update result %+v", after)
	}
}

func TestDuplicateEnrollmentConflict(t *testing.T) {
	router, _ := newRouter(t)

	code, env, _ := do(t, router, http.MethodPost, "/api/v1/enrollments",
		`{"studentId":"st-001","courseId":"cs-101","enrollmentDate":"2024-01-10"}`)
	if code != http.StatusConflict || env.Error.Code != "RES_002" {
		t.Fatalf("expected 409 RES_002, got %d %+v", code, env.Error)
	}
}

func TestCreateMarkDerivesGradeAndSemester(t *testing.T) {
	router, _ := newRouter(t)

	code, env, _ := do(t, router, http.MethodPost, "/api/v1/marks",
		`{"studentId":"st-004","courseId":"phy-101","professorId":"prof-003","marks":95,"submissionDate":"2024-05-10"}`)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d %+v", code, env.Error)
	}
	var mark map[string]interface{}
	decode(t, env.Data, &mark)
	if mark["grade"] != "A" || mark["semester"] != "Spring 2024" || mark["academicYear"] != "2024-2025" {
		t.Fatalf("unexpected mark %+v", mark)
	}

	code, env, _ = do(t, router, http.MethodPost, "/api/v1/marks",
		`{"studentId":"st-004","courseId":"phy-101","professorId":"prof-003","submissionDate":"2024-05-10"}`)
	if code != http.StatusBadRequest || env.Error.Details["marks"] == nil {
		t.Fatalf("missing marks must be rejected, got %d %+v", code, env.Error)
	}
}

func TestDeleteProfessorCascades(t *testing.T) {
	router, _ := newRouter(t)

	code, _, _ := do(t, router, http.MethodDelete, "/api/v1/professors/prof-001", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	for _, path := range []string{"/api/v1/marks/mrk-001", "/api/v1/assignments/ta-001"} {
		if code, _, _ := do(t, router, http.MethodGet, path, ""); code != http.StatusNotFound {
			t.Fatalf("%s should be gone, got %d", path, code)
		}
	}
	if code, _, _ := do(t, router, http.MethodGet, "/api/v1/students/st-001", ""); code != http.StatusOK {
		t.Fatalf("student must survive a professor delete")
	}
}

func TestReports(t *testing.T) {
	router, _ := newRouter(t)

	code, env, _ := do(t, router, http.MethodGet, "/api/v1/reports/semesters", "")
	var semesters []string
	decode(t, env.Data, &semesters)
	if code != http.StatusOK || len(semesters) != 3 || semesters[0] != "All" {
		t.Fatalf("unexpected semesters %d %v", code, semesters)
	}

	code, env, _ = do(t, router, http.MethodGet, "/api/v1/reports?semester=Spring%202024", "")
	var report struct {
		Semester string `json:"semester"`
	}
	decode(t, env.Data, &report)
	if code != http.StatusOK || report.Semester != "Spring 2024" {
		t.Fatalf("unexpected report %d %+v", code, report)
	}

	if code, _, _ := do(t, router, http.MethodGet, "/api/v1/dashboard", ""); code != http.StatusOK {
		t.Fatalf("dashboard returned %d", code)
	}
}

func TestExportClearImportRoundTrip(t *testing.T) {
	router, s := newRouter(t)

	code, _, document := do(t, router, http.MethodGet, "/api/v1/settings/export", "")
	if code != http.StatusOK || !bytes.Contains(document, []byte(`"version"`)) {
		t.Fatalf("unexpected export %d %s", code, document)
	}

	if code, _, _ := do(t, router, http.MethodPost, "/api/v1/settings/clear", ""); code != http.StatusOK {
		t.Fatalf("clear returned %d", code)
	}
	if len(s.Snapshot().Students) != 0 {
		t.Fatalf("clear must remove students")
	}

	code, env, _ := do(t, router, http.MethodPost, "/api/v1/settings/import", string(document))
	if code != http.StatusOK {
		t.Fatalf("import returned %d %+v", code, env.Error)
	}
	if len(s.Snapshot().Students) != 10 || len(s.Snapshot().Marks) != 11 {
		t.Fatalf("import did not restore the snapshot")
	}
}

func TestImportRejectsBadDocuments(t *testing.T) {
	router, s := newRouter(t)
	before := s.Snapshot()

	code, env, _ := do(t, router, http.MethodPost, "/api/v1/settings/import", `{not json`)
	if code != http.StatusBadRequest || env.Error.Code != "REQ_001" {
		t.Fatalf("expected 400 REQ_001, got %d %+v", code, env.Error)
	}

	big := `{"students":"` + strings.Repeat("x", uploadLimit) + `"}`
	code, env, _ = do(t, router, http.MethodPost, "/api/v1/settings/import", big)
	if code != http.StatusRequestEntityTooLarge || env.Error.Code != "REQ_002" {
		t.Fatalf("expected 413 REQ_002, got %d %+v", code, env.Error)
	}

	if s.Snapshot() != before {
		t.Fatalf("rejected imports must not replace the snapshot")
	}
}

func TestStudentImportRequiresFile(t *testing.T) {
	router, _ := newRouter(t)

	code, env, _ := do(t, router, http.MethodPost, "/api/v1/students/import", "")
	if code != http.StatusBadRequest || env.Error.Code != "REQ_001" {
		t.Fatalf("expected 400, got %d %+v", code, env.Error)
	}
}

func TestCurrentUser(t *testing.T) {
	router, _ := newRouter(t)

	code, _, _ := do(t, router, http.MethodPatch, "/api/v1/me", `{"email":"bad"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	code, env, _ := do(t, router, http.MethodPatch, "/api/v1/me", `{"name":"Registrar Office"}`)
	var user map[string]interface{}
	decode(t, env.Data, &user)
	if code != http.StatusOK || user["name"] != "Registrar Office" || user["role"] != "Admin" {
		t.Fatalf("unexpected user %d %+v", code, user)
	}
}

func TestHealth(t *testing.T) {
	router, _ := newRouter(t)

	code, env, _ := do(t, router, http.MethodGet, "/api/v1/health", "")
	var health map[string]interface{}
	decode(t, env.Data, &health)
	if code != http.StatusOK || health["status"] != "ok" || health["storage"] != "memory" {
		t.Fatalf("unexpected health %d %+v", code, health)
	}
}
