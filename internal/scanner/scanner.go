package scanner

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ScanResult represents the outcome of scanning a single target.
type ScanResult struct {
	Target       string      `json:"target"`
	Host         string      `json:"host"`
	CheckedAt    time.Time   `json:"checked_at"`
	Status       string      `json:"status"`
	HTTPStatus   int         `json:"http_status,omitempty"`
	CookiesSeen  int         `json:"cookies_seen,omitempty"`
	Flagged      []SetCookie `json:"flagged_cookies,omitempty"`
	ResponseTime float64     `json:"response_time_ms,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// Scanner is the interface all scan implementations satisfy
type Scanner interface {
	// Scan performs the scan logic for a single target
	Scan(ctx context.Context, target string) ScanResult

	// Name returns the name of this scanner (e.g., "scan cookies")
	Name() string
}

// AuditFunc is a callback function to log audit information
type AuditFunc func(target string, result ScanResult, duration float64) error

// Runner orchestrates scans across targets with concurrency and rate limiting
type Runner struct {
	Concurrency int           // Maximum number of concurrent scans
	RateLimit   int           // Requests per second (global)
	Timeout     time.Duration // Timeout for each scan
}

// RunScans executes the scanner against every target using a worker pool
func (r *Runner) RunScans(ctx context.Context, targets []string, scanner Scanner, auditFn AuditFunc) []ScanResult {
	limiter := rate.NewLimiter(rate.Limit(r.RateLimit), r.RateLimit)

	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup
	mu := sync.Mutex{}
	results := make([]ScanResult, 0, len(targets))

	for _, target := range targets {
		wg.Add(1)
		go func(t string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			_ = limiter.Wait(ctx)

			start := time.Now()

			scanCtx, cancel := context.WithTimeout(ctx, r.Timeout)
			defer cancel()

			result := scanner.Scan(scanCtx, t)

			duration := time.Since(start).Seconds()

			if auditFn != nil {
				_ = auditFn(t, result, duration)
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(target)
	}

	wg.Wait()
	return results
}
