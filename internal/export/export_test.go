package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/celulaviver/internal/model"
	"github.com/xuri/excelize/v2"
)

func sampleReports() []model.Report {
	return []model.Report{
		{ID: "1", CellName: "Célula A", Date: "2024-05-09", Attendance: 10, Visitors: 2, Offering: 10.5, IsLate: true, Summary: "Boa noite"},
		{ID: "2", CellName: "Célula B", Date: "2024-05-02", Attendance: 8, Visitors: 1, Offering: 5.25},
	}
}

func TestWriteReports(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReports(&buf, sampleReports()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header, 2 reports and totals, got %d rows", len(rows))
	}
	if rows[0][0] != "Data" || rows[0][1] != "Célula" {
		t.Fatalf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "09/05/2024" || rows[1][10] != "Sim" {
		t.Fatalf("unexpected first row %v", rows[1])
	}
	if rows[3][0] != "Total" || rows[3][2] != "18" || rows[3][8] != "15.75" {
		t.Fatalf("unexpected totals row %v", rows[3])
	}
}

func TestSaveReports(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName("month", "2024"))
	if err := SaveReports(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open saved workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("failed to read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and totals, got %d rows", len(rows))
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("", ""); got != "relatorios-all-all.xlsx" {
		t.Fatalf("unexpected file name %q", got)
	}
}
