package cmd

import "testing"

func TestNoTargetsError(t *testing.T) {
	err := &NoTargetsError{}
	want := "no targets provided (pass targets as arguments or via --targets-file)"
	if err.Error() != want {
		t.Fatalf("unexpected error string: %s", err.Error())
	}
}

func TestResultsNotFoundError(t *testing.T) {
	err := &ResultsNotFoundError{Path: "/tmp/results/findings.json"}
	want := "no scan results at /tmp/results/findings.json (run 'cookiescope scan' first)"
	if err.Error() != want {
		t.Fatalf("expected %s, got %s", want, err.Error())
	}
}

func TestUnknownFormatError(t *testing.T) {
	err := &UnknownFormatError{Format: "xml"}
	want := `unknown report format "xml" (expected table, markdown, or pdf)`
	if err.Error() != want {
		t.Fatalf("expected %s, got %s", want, err.Error())
	}
}
