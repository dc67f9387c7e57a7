package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/khanhnv2901/cookiescope/internal/scanner"
)

func TestAppendAuditRow(t *testing.T) {
	dir := t.TempDir()

	result := scanner.ScanResult{
		Host:        "app.example.com",
		Status:      "ok",
		HTTPStatus:  200,
		CookiesSeen: 3,
		Flagged:     []scanner.SetCookie{{Name: "session"}},
	}

	if err := AppendAuditRow(dir, "scan cookies", "https://app.example.com", result, 0.42); err != nil {
		t.Fatalf("AppendAuditRow returned error: %v", err)
	}
	if err := AppendAuditRow(dir, "scan cookies", "https://app.example.com", result, 0.5); err != nil {
		t.Fatalf("second AppendAuditRow returned error: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "audit.csv"))
	if err != nil {
		t.Fatalf("failed to open audit file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse audit csv: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "timestamp" || rows[0][7] != "flagged" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	row := rows[1]
	if row[1] != "scan cookies" || row[2] != "https://app.example.com" || row[3] != "app.example.com" {
		t.Errorf("unexpected identity columns: %v", row)
	}
	if row[5] != "200" || row[6] != "3" || row[7] != "1" {
		t.Errorf("unexpected count columns: %v", row)
	}
}
