package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/khanhnv2901/cookiescope/internal/constants"
	"github.com/khanhnv2901/cookiescope/internal/finding"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show effective configuration and data paths",
	Long: `Display cookiescope configuration information including:
  - Results directory and output files
  - Effective scan settings (concurrency, rate limit, timeout)
  - Cookie ignore list
  - Available finding locales`,
	RunE: func(cmd *cobra.Command, args []string) error {
		findingsPath := filepath.Join(resultsDir, constants.FindingsFilename)
		findingsExists := "✗ (no scan yet)"
		if _, err := os.Stat(findingsPath); err == nil {
			findingsExists = "✓ (exists)"
		}

		configFile := "~/.cookiescope.yaml"
		configExists := "✗ (using defaults)"
		if cfgFile != "" {
			configFile = cfgFile
		}
		homeDir, _ := os.UserHomeDir()
		configPath := filepath.Join(homeDir, ".cookiescope.yaml")
		if cfgFile != "" {
			configPath = cfgFile
		}
		if _, err := os.Stat(configPath); err == nil {
			configExists = "✓ (exists)"
		}

		ignoreList := "(empty)"
		if len(cliConfig.Scan.CookieIgnoreList) > 0 {
			ignoreList = strings.Join(cliConfig.Scan.CookieIgnoreList, ", ")
		}

		locales := finding.Locales()
		sort.Strings(locales)

		// Get output writer (for testing support)
		out := cmd.OutOrStdout()

		fmt.Fprintln(out, "cookiescope System Information")
		fmt.Fprintln(out, "==============================")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Platform:          %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Data Locations:")
		fmt.Fprintf(out, "  Results Directory:  %s\n", resultsDir)
		fmt.Fprintf(out, "  Findings File:      %s %s\n", findingsPath, findingsExists)
		fmt.Fprintf(out, "Configuration File:   %s %s\n", configFile, configExists)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Scan Settings:")
		fmt.Fprintf(out, "  Concurrency:        %d\n", cliConfig.Scan.Concurrency)
		fmt.Fprintf(out, "  Rate Limit:         %d req/s\n", cliConfig.Scan.RateLimit)
		fmt.Fprintf(out, "  Timeout:            %ds\n", cliConfig.Scan.TimeoutSecs)
		fmt.Fprintf(out, "  Cookie Ignore List: %s\n", ignoreList)
		fmt.Fprintf(out, "  Locale:             %s (available: %s)\n", cliConfig.Scan.Locale, strings.Join(locales, ", "))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "To override settings, create ~/.cookiescope.yaml with:")
		fmt.Fprintln(out, "  results_dir: /custom/path/to/results")
		fmt.Fprintln(out, "  scan:")
		fmt.Fprintln(out, "    cookie_ignore_list: [AEC, NID]")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
