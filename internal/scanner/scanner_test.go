package scanner

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"
)

type stubScanner struct {
	mu      sync.Mutex
	scanned []string
}

func (s *stubScanner) Scan(ctx context.Context, target string) ScanResult {
	s.mu.Lock()
	s.scanned = append(s.scanned, target)
	s.mu.Unlock()

	result := ScanResult{Target: target, Status: "ok"}
	if target == "bad.example.com" {
		result.Status = "error"
		result.Error = "stub failure"
	}
	return result
}

func (s *stubScanner) Name() string { return "stub" }

func TestRunner_RunScans(t *testing.T) {
	runner := &Runner{
		Concurrency: 4,
		RateLimit:   100,
		Timeout:     time.Second,
	}
	targets := []string{"a.example.com", "b.example.com", "bad.example.com"}

	stub := &stubScanner{}

	var auditMu sync.Mutex
	audited := make([]string, 0, len(targets))
	auditFn := func(target string, result ScanResult, duration float64) error {
		auditMu.Lock()
		audited = append(audited, target)
		auditMu.Unlock()
		return nil
	}

	results := runner.RunScans(context.Background(), targets, stub, auditFn)

	if len(results) != len(targets) {
		t.Fatalf("expected %d results, got %d", len(targets), len(results))
	}

	got := make([]string, 0, len(results))
	for _, r := range results {
		got = append(got, r.Target)
	}
	sort.Strings(got)
	sort.Strings(audited)
	want := []string{"a.example.com", "b.example.com", "bad.example.com"}
	for i, target := range want {
		if got[i] != target {
			t.Errorf("missing result for %s", target)
		}
		if audited[i] != target {
			t.Errorf("missing audit callback for %s", target)
		}
	}

	errorCount := 0
	for _, r := range results {
		if r.Status == "error" {
			errorCount++
		}
	}
	if errorCount != 1 {
		t.Errorf("expected 1 error result, got %d", errorCount)
	}
}

func TestRunner_RunScansNilAudit(t *testing.T) {
	runner := &Runner{Concurrency: 1, RateLimit: 100, Timeout: time.Second}
	results := runner.RunScans(context.Background(), []string{"a.example.com"}, &stubScanner{}, nil)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}
