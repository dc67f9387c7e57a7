package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/khanhnv2901/cookiescope/internal/constants"
	"github.com/khanhnv2901/cookiescope/internal/scanner"
)

var auditHeader = []string{
	"timestamp", "scanner", "target", "host", "status",
	"http_status", "cookies_seen", "flagged", "error", "duration_secs",
}

// AppendAuditRow appends one evidence row per scanned target to the audit
// CSV in dir, creating the file with a header row on first use.
func AppendAuditRow(dir, scannerName, target string, result scanner.ScanResult, duration float64) error {
	path := filepath.Join(dir, constants.AuditFilename)

	writeHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		writeHeader = true
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("open audit file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(auditHeader); err != nil {
			return fmt.Errorf("write audit header: %w", err)
		}
	}

	row := []string{
		time.Now().UTC().Format(time.RFC3339),
		scannerName,
		target,
		result.Host,
		result.Status,
		strconv.Itoa(result.HTTPStatus),
		strconv.Itoa(result.CookiesSeen),
		strconv.Itoa(len(result.Flagged)),
		result.Error,
		strconv.FormatFloat(duration, 'f', 3, 64),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write audit row: %w", err)
	}

	w.Flush()
	return w.Error()
}
