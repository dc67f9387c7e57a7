package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultHTTPTimeoutSeconds = 10
	defaultScanConcurrency    = 4
	defaultScanRateLimit      = 4
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	Defaults DefaultValues
	Scan     ScanRuntimeConfig
}

// DefaultValues represent operator-level defaults, typically derived from env/config.
type DefaultValues struct {
	TimeoutSecs      int
	TelemetryEnabled bool
	Locale           string
}

// ScanRuntimeConfig consolidates flag-driven settings for the scan command.
type ScanRuntimeConfig struct {
	Concurrency      int
	RateLimit        int
	TimeoutSecs      int
	CookieIgnoreList []string
	Locale           string
	ProgressEnabled  bool
	TelemetryEnabled bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		Defaults: DefaultValues{
			TimeoutSecs:      defaultHTTPTimeoutSeconds,
			TelemetryEnabled: false,
			Locale:           "en",
		},
		Scan: ScanRuntimeConfig{
			Concurrency:     defaultScanConcurrency,
			RateLimit:       defaultScanRateLimit,
			TimeoutSecs:     defaultHTTPTimeoutSeconds,
			Locale:          "en",
			ProgressEnabled: true,
		},
	}
}

// applyViperOverrides folds config-file values into cfg. Flags still win:
// values are only taken from viper when the corresponding flag was not set
// on the command line.
func applyViperOverrides(cfg *CLIConfig) {
	flags := scanCmd.Flags()

	if !flagChanged(flags, "concurrency") && viper.IsSet("scan.concurrency") {
		cfg.Scan.Concurrency = viper.GetInt("scan.concurrency")
	}
	if !flagChanged(flags, "rate") && viper.IsSet("scan.rate_limit") {
		cfg.Scan.RateLimit = viper.GetInt("scan.rate_limit")
	}
	if !flagChanged(flags, "timeout") && viper.IsSet("scan.timeout_secs") {
		cfg.Scan.TimeoutSecs = viper.GetInt("scan.timeout_secs")
	}
	if !flagChanged(flags, "locale") && viper.IsSet("locale") {
		cfg.Scan.Locale = viper.GetString("locale")
	}
	if viper.IsSet("telemetry_enabled") {
		cfg.Scan.TelemetryEnabled = viper.GetBool("telemetry_enabled")
	}
	if viper.IsSet("scan.cookie_ignore_list") {
		cfg.Scan.CookieIgnoreList = viper.GetStringSlice("scan.cookie_ignore_list")
	}

	if cfg.Scan.Concurrency < 1 {
		cfg.Scan.Concurrency = 1
	}
	if cfg.Scan.RateLimit < 1 {
		cfg.Scan.RateLimit = 1
	}
	if cfg.Scan.TimeoutSecs < 1 {
		cfg.Scan.TimeoutSecs = defaultHTTPTimeoutSeconds
	}
}

func flagChanged(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}
