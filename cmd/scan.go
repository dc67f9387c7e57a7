package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/khanhnv2901/cookiescope/internal/constants"
	"github.com/khanhnv2901/cookiescope/internal/finding"
	"github.com/khanhnv2901/cookiescope/internal/scanner"
	"github.com/spf13/cobra"
)

type ScanMetadata struct {
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
	TotalTargets   int       `json:"total_targets"`
	FlaggedTargets int       `json:"flagged_targets"`
	Locale         string    `json:"locale"`
}

type ScanOutput struct {
	Metadata ScanMetadata         `json:"metadata"`
	Results  []scanner.ScanResult `json:"results"`
	Findings []finding.Finding    `json:"findings"`
}

var (
	scanTargetsFile string
	scanIgnoreNames []string
)

var scanCmd = &cobra.Command{
	Use:   "scan [targets...]",
	Short: "Fetch scoped targets and flag loosely scoped cookies",
	Long: `Fetch each target with a single GET request and inspect the cookies the
response sets. A cookie is flagged when its Domain attribute scopes it more
broadly than the host that set it, e.g. Domain=example.com on a response
from app.example.com.

Targets are passed as arguments or one per line via --targets-file
(blank lines and lines starting with # are skipped). Cookie names on the
ignore list (--ignore or scan.cookie_ignore_list in the config file) are
excluded from the analysis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		targets, err := collectTargets(args, scanTargetsFile)
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			return &NoTargetsError{}
		}

		cfg := cliConfig.Scan
		ignore := scanner.NewIgnoreList(append(cfg.CookieIgnoreList, scanIgnoreNames...))

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		sc := &scanner.HTTPScanner{
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
			Ignore:  ignore,
		}
		runner := &scanner.Runner{
			Concurrency: cfg.Concurrency,
			RateLimit:   cfg.RateLimit,
			Timeout:     time.Duration(cfg.TimeoutSecs) * time.Second,
		}

		var progress *progressPrinter
		if cfg.ProgressEnabled {
			progress = newProgressPrinter(len(targets), sc.Name())
			progress.Start()
		}

		auditFn := func(target string, result scanner.ScanResult, duration float64) error {
			if progress != nil {
				progress.Increment(result.Status == "ok", len(result.Flagged), duration)
			}
			return AppendAuditRow(resultsDir, sc.Name(), target, result, duration)
		}

		started := time.Now().UTC()
		results := runner.RunScans(ctx, targets, sc, auditFn)
		completed := time.Now().UTC()

		if progress != nil {
			progress.Stop()
		}

		sort.Slice(results, func(i, j int) bool { return results[i].Target < results[j].Target })

		findings := make([]finding.Finding, 0)
		for _, result := range results {
			if len(result.Flagged) > 0 {
				findings = append(findings, finding.New(result.Host, result.Flagged, cfg.Locale))
			}
		}

		out := ScanOutput{
			Metadata: ScanMetadata{
				StartedAt:      started,
				CompletedAt:    completed,
				TotalTargets:   len(targets),
				FlaggedTargets: len(findings),
				Locale:         cfg.Locale,
			},
			Results:  results,
			Findings: findings,
		}

		resultsPath := filepath.Join(resultsDir, constants.FindingsFilename)
		if err := writeScanOutput(resultsPath, out); err != nil {
			return err
		}

		if cfg.TelemetryEnabled {
			if err := recordTelemetry(resultsDir, "scan", results, completed.Sub(started)); err != nil {
				logger.Warnf("telemetry write failed: %v", err)
			}
		}

		printScanSummary(results, findings, resultsPath)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanTargetsFile, "targets-file", "", "file with one target per line")
	scanCmd.Flags().StringSliceVar(&scanIgnoreNames, "ignore", nil, "cookie names to exclude from the analysis")
	scanCmd.Flags().IntVar(&cliConfig.Scan.Concurrency, "concurrency", defaultScanConcurrency, "maximum concurrent requests")
	scanCmd.Flags().IntVar(&cliConfig.Scan.RateLimit, "rate", defaultScanRateLimit, "requests per second across all workers")
	scanCmd.Flags().IntVar(&cliConfig.Scan.TimeoutSecs, "timeout", defaultHTTPTimeoutSeconds, "per-request timeout in seconds")
	scanCmd.Flags().StringVar(&cliConfig.Scan.Locale, "locale", "en", "locale for finding text")
	scanCmd.Flags().BoolVar(&cliConfig.Scan.ProgressEnabled, "progress", true, "show a progress line while scanning")
}

// collectTargets merges CLI arguments with the optional targets file,
// dropping duplicates while preserving first-seen order.
func collectTargets(args []string, targetsFile string) ([]string, error) {
	targets := make([]string, 0, len(args))
	seen := make(map[string]struct{})

	add := func(t string) {
		t = strings.TrimSpace(t)
		if t == "" {
			return
		}
		if _, dup := seen[t]; dup {
			return
		}
		seen[t] = struct{}{}
		targets = append(targets, t)
	}

	for _, arg := range args {
		add(arg)
	}

	if targetsFile != "" {
		f, err := os.Open(targetsFile)
		if err != nil {
			return nil, fmt.Errorf("open targets file: %w", err)
		}
		defer f.Close()

		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			add(line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("read targets file: %w", err)
		}
	}

	return targets, nil
}

func writeScanOutput(path string, out ScanOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scan output: %w", err)
	}
	if err := os.WriteFile(path, data, constants.DefaultFilePerm); err != nil {
		return fmt.Errorf("write scan output: %w", err)
	}
	return nil
}

func printScanSummary(results []scanner.ScanResult, findings []finding.Finding, resultsPath string) {
	okCount, errorCount := summarizeStatuses(results)

	fmt.Println(colorSuccess("Scan complete."))
	fmt.Printf("%s %d target(s): %d ok, %d error(s)\n", colorInfo("Scanned:"), len(results), okCount, errorCount)

	for _, r := range results {
		if r.Status != "ok" {
			fmt.Printf("  %s %s: %s\n", formatStatusWithColor(r.Status), r.Target, r.Error)
		}
	}

	if len(findings) == 0 {
		fmt.Println(colorSuccess("No loosely scoped cookies found."))
	} else {
		fmt.Printf("%s %d host(s) set loosely scoped cookies:\n", colorWarn("Flagged:"), len(findings))
		for _, f := range findings {
			names := make([]string, 0, len(f.Cookies))
			for _, c := range f.Cookies {
				names = append(names, c.Name)
			}
			fmt.Printf("  %s %s (%s)\n", colorWarn("-"), f.Host, strings.Join(names, ", "))
		}
	}

	fmt.Printf("%s %s\n", colorInfo("Results:"), resultsPath)
}

func summarizeStatuses(results []scanner.ScanResult) (okCount, errorCount int) {
	for _, r := range results {
		if r.Status == "ok" {
			okCount++
		} else {
			errorCount++
		}
	}
	return okCount, errorCount
}
