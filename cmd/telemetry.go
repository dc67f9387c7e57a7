package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/khanhnv2901/cookiescope/internal/constants"
	"github.com/khanhnv2901/cookiescope/internal/scanner"
)

type telemetryRecord struct {
	Timestamp           time.Time `json:"timestamp"`
	Command             string    `json:"command"`
	TargetCount         int       `json:"target_count"`
	SuccessCount        int       `json:"success_count"`
	ErrorCount          int       `json:"error_count"`
	FlaggedCookieCount  int       `json:"flagged_cookie_count"`
	SuccessRate         float64   `json:"success_rate"`
	DurationSeconds     float64   `json:"duration_seconds"`
	AvgDurationPerCheck float64   `json:"avg_duration_per_check"`
}

func recordTelemetry(dir string, command string, results []scanner.ScanResult, duration time.Duration) error {
	okCount, errorCount := summarizeStatuses(results)
	total := len(results)

	flagged := 0
	for _, r := range results {
		flagged += len(r.Flagged)
	}

	successRate := 0.0
	if total > 0 {
		successRate = (float64(okCount) / float64(total)) * 100
	}

	avgDuration := 0.0
	if total > 0 {
		avgDuration = duration.Seconds() / float64(total)
	}

	record := telemetryRecord{
		Timestamp:           time.Now().UTC(),
		Command:             command,
		TargetCount:         total,
		SuccessCount:        okCount,
		ErrorCount:          errorCount,
		FlaggedCookieCount:  flagged,
		SuccessRate:         successRate,
		DurationSeconds:     duration.Seconds(),
		AvgDurationPerCheck: avgDuration,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal telemetry: %w", err)
	}

	telemetryPath := filepath.Join(dir, constants.TelemetryFilename)
	f, err := os.OpenFile(telemetryPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, constants.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("open telemetry file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("append telemetry: %w", err)
	}
	return nil
}
