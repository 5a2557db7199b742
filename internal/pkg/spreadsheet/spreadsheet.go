// Package spreadsheet exports snapshots to xlsx workbooks and reads student
// rows back from uploaded workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yigit/studentforce/internal/app/models"
)

// Sheet names, one per collection
const (
	SheetStudents    = "Students"
	SheetCourses     = "Courses"
	SheetProfessors  = "Professors"
	SheetEnrollments = "Enrollments"
	SheetMarks       = "Marks"
	SheetAssignments = "Assignments"
)

// ErrNoStudentSheet is returned when a workbook has no usable sheet
var ErrNoStudentSheet = errors.New("workbook does not contain a students sheet")

// StudentColumns is the header row of the students sheet, also expected on import
var StudentColumns = []string{"id", "firstName", "lastName", "email", "phone", "dateOfBirth", "address", "enrollmentDate", "status"}

type table struct {
	name   string
	header []string
	rows   [][]interface{}
}

func tables(s *models.Snapshot) []table {
	students := table{name: SheetStudents, header: StudentColumns}
	for _, st := range s.Students {
		students.rows = append(students.rows, []interface{}{st.ID, st.FirstName, st.LastName, st.Email, st.Phone, st.DateOfBirth, st.Address, st.EnrollmentDate, string(st.Status)})
	}

	courses := table{name: SheetCourses, header: []string{"id", "name", "code", "description", "credits", "duration", "semester", "status"}}
	for _, c := range s.Courses {
		courses.rows = append(courses.rows, []interface{}{c.ID, c.Name, c.Code, c.Description, c.Credits, c.Duration, c.Semester, string(c.Status)})
	}

	professors := table{name: SheetProfessors, header: []string{"id", "firstName", "lastName", "email", "phone", "department", "specialization", "joinDate", "status"}}
	for _, p := range s.Professors {
		professors.rows = append(professors.rows, []interface{}{p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.Department, p.Specialization, p.JoinDate, string(p.Status)})
	}

	enrollments := table{name: SheetEnrollments, header: []string{"id", "studentId", "courseId", "enrollmentDate", "status"}}
	for _, e := range s.Enrollments {
		enrollments.rows = append(enrollments.rows, []interface{}{e.ID, e.StudentID, e.CourseID, e.EnrollmentDate, string(e.Status)})
	}

	marks := table{name: SheetMarks, header: []string{"id", "studentId", "courseId", "professorId", "marks", "grade", "semester", "academicYear", "submissionDate"}}
	for _, m := range s.Marks {
		marks.rows = append(marks.rows, []interface{}{m.ID, m.StudentID, m.CourseID, m.ProfessorID, m.Marks, m.Grade, m.Semester, m.AcademicYear, m.SubmissionDate})
	}

	assignments := table{name: SheetAssignments, header: []string{"id", "professorId", "courseId", "startDate", "endDate", "status"}}
	for _, a := range s.Assignments {
		end := ""
		if a.EndDate != nil {
			end = *a.EndDate
		}
		assignments.rows = append(assignments.rows, []interface{}{a.ID, a.ProfessorID, a.CourseID, a.StartDate, end, string(a.Status)})
	}

	return []table{students, courses, professors, enrollments, marks, assignments}
}

// WriteSnapshot writes the snapshot as a workbook with one sheet per collection
func WriteSnapshot(w io.Writer, s *models.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, t := range tables(s) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(t.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", t.name, err)
		}

		header := make([]interface{}, len(t.header))
		for j, h := range t.header {
			header[j] = h
		}
		if err := f.SetSheetRow(t.name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of %s: %w", t.name, err)
		}
		if err := f.SetRowStyle(t.name, 1, 1, bold); err != nil {
			return fmt.Errorf("failed to style header of %s: %w", t.name, err)
		}

		for r, row := range t.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(t.name, cell, &row); err != nil {
				return fmt.Errorf("failed to write %s row %d: %w", t.name, r+2, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// StudentRow is one data row read from an uploaded workbook
type StudentRow struct {
	Row     int // 1-based sheet row
	Student models.Student
}

// ReadStudents reads the "Students" sheet, or the first sheet when absent.
// Columns are located by header name (case-insensitive), so order and extra
// columns do not matter. Blank rows are skipped; the id column is ignored.
func ReadStudents(r io.Reader) ([]StudentRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheet := ""
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(name, SheetStudents) {
			sheet = name
			break
		}
	}
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" {
		return nil, ErrNoStudentSheet
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []StudentRow{}, nil
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cell := func(row []string, column string) string {
		i, ok := index[strings.ToLower(column)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := []StudentRow{}
	for i, row := range rows[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		out = append(out, StudentRow{
			Row: i + 2,
			Student: models.Student{
				FirstName:      cell(row, "firstName"),
				LastName:       cell(row, "lastName"),
				Email:          cell(row, "email"),
				Phone:          cell(row, "phone"),
				DateOfBirth:    cell(row, "dateOfBirth"),
				Address:        cell(row, "address"),
				EnrollmentDate: cell(row, "enrollmentDate"),
				Status:         models.StudentStatus(cell(row, "status")),
			},
		})
	}
	return out, nil
}
