package cmd

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	setResultsDir(t)

	// Capture output
	var buf bytes.Buffer
	infoCmd.SetOut(&buf)
	infoCmd.SetErr(&buf)

	// Execute command
	if err := infoCmd.RunE(infoCmd, []string{}); err != nil {
		t.Fatalf("info command failed: %v", err)
	}

	output := buf.String()

	// Verify output contains expected sections
	expectedSections := []string{
		"cookiescope System Information",
		"Platform:",
		"Data Locations:",
		"Results Directory:",
		"Findings File:",
		"Configuration File:",
		"Scan Settings:",
		"Cookie Ignore List:",
		"Locale:",
	}

	for _, section := range expectedSections {
		if !strings.Contains(output, section) {
			t.Errorf("Expected output to contain '%s', got:\n%s", section, output)
		}
	}

	// Verify platform info is correct
	expectedPlatform := runtime.GOOS + "/" + runtime.GOARCH
	if !strings.Contains(output, expectedPlatform) {
		t.Errorf("Expected platform '%s' in output, got:\n%s", expectedPlatform, output)
	}
}
