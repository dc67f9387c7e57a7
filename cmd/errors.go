package cmd

import "fmt"

// NoTargetsError indicates the scan command was given nothing to scan.
type NoTargetsError struct{}

func (e *NoTargetsError) Error() string {
	return "no targets provided (pass targets as arguments or via --targets-file)"
}

// ResultsNotFoundError signals that report generation has no scan output to read.
type ResultsNotFoundError struct {
	Path string
}

func (e *ResultsNotFoundError) Error() string {
	return fmt.Sprintf("no scan results at %s (run 'cookiescope scan' first)", e.Path)
}

// UnknownFormatError signals an unsupported report format.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown report format %q (expected table, markdown, or pdf)", e.Format)
}
