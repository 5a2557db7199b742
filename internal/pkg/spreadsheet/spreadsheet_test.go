package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
	"github.com/yigit/studentforce/internal/seed"
)

func TestWriteSnapshotSheets(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, seed.Build()); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	want := []string{SheetStudents, SheetCourses, SheetProfessors, SheetEnrollments, SheetMarks, SheetAssignments}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sheets %v, got %v", want, got)
		}
	}

	rows, err := f.GetRows(SheetMarks)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 12 {
		t.Fatalf("expected header plus 11 marks, got %d rows", len(rows))
	}
	if rows[1][0] != "mrk-001" || rows[1][4] != "88" {
		t.Fatalf("unexpected first mark row %v", rows[1])
	}

	assignments, _ := f.GetRows(SheetAssignments)
	if assignments[1][4] != "2023-12-15" {
		t.Fatalf("expected end date, got %v", assignments[1])
	}
}

func TestReadStudentsRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSnapshot(&buf, seed.Build()); err != nil {
		t.Fatalf("write: %v", err)
	}

	rows, err := ReadStudents(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("expected 10 students, got %d", len(rows))
	}
	first := rows[0]
	if first.Row != 2 || first.Student.FirstName != "John" || first.Student.Status != "Active" || first.Student.ID != "" {
		t.Fatalf("unexpected first row %+v", first)
	}
}

func TestReadStudentsByHeaderName(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Email", "lastname", "FirstName", "notes"},
		{"ada@example.com", "Lovelace", "Ada", "x"},
		{"", "", "", ""},
		{"alan@example.com", "Turing", "Alan"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	f.Close()

	got, err := ReadStudents(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected blank row skipped, got %d rows", len(got))
	}
	if got[1].Row != 4 || got[1].Student.FirstName != "Alan" || got[1].Student.Email != "alan@example.com" {
		t.Fatalf("unexpected row %+v", got[1])
	}
}

func TestReadStudentsRejectsGarbage(t *testing.T) {
	if _, err := ReadStudents(bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatalf("expected error")
	}
}
