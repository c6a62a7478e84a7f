package transaction

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func sheetFile(t *testing.T, rows [][]any) memoryFile {
	t.Helper()

	file := excelize.NewFile()
	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return memoryFile{bytes.NewReader(buf.Bytes())}
}

func TestParseImportSheet(t *testing.T) {
	rows, err := parseImportSheet(sheetFile(t, [][]any{
		{"Type", "Category", "Value", "Remarks"},
		{"debit", "groceries", "42.50", "weekly shop"},
		{"credit", "salary", "1200", ""},
		{"estimation", "rent", "800,75", "next month"},
	}))
	if err != nil {
		t.Fatalf("parseImportSheet: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	first := rows[0]
	if first.Type != "debit" || first.Category != "groceries" || first.Value != 42.5 || first.Remarks != "weekly shop" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if rows[1].Value != 1200 {
		t.Errorf("got value %v, want 1200", rows[1].Value)
	}
	// decimal comma normalizes to a dot
	if rows[2].Value != 800.75 {
		t.Errorf("got value %v, want 800.75", rows[2].Value)
	}
}

func TestParseImportSheetHeaderOrder(t *testing.T) {
	rows, err := parseImportSheet(sheetFile(t, [][]any{
		{"Remarks", "Value", "Type", "Category"},
		{"lunch", "12", "debit", "food"},
	}))
	if err != nil {
		t.Fatalf("parseImportSheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Category != "food" || rows[0].Value != 12 || rows[0].Remarks != "lunch" {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestParseImportSheetMissingColumn(t *testing.T) {
	_, err := parseImportSheet(sheetFile(t, [][]any{
		{"Type", "Category"},
		{"debit", "food"},
	}))
	if err == nil {
		t.Fatal("expected error for missing value column")
	}
}

func TestParseImportSheetInvalidValue(t *testing.T) {
	_, err := parseImportSheet(sheetFile(t, [][]any{
		{"Type", "Category", "Value"},
		{"debit", "food", "a lot"},
	}))
	if err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}
