package cmd

import (
	"io"
	"os"
	"testing"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything the function wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	defer func() {
		os.Stdout = original
	}()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe writer: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(data)
}

// setResultsDir points the package-level results dir at a temp dir for the
// duration of one test.
func setResultsDir(t *testing.T) string {
	t.Helper()

	original := resultsDir
	resultsDir = t.TempDir()
	t.Cleanup(func() {
		resultsDir = original
	})
	return resultsDir
}
