package constants

import "io/fs"

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// FindingsFilename is the results file a scan writes and report reads.
	FindingsFilename = "findings.json"
	// AuditFilename records one row per scanned target.
	AuditFilename = "audit.csv"
	// TelemetryFilename accumulates per-run summaries.
	TelemetryFilename = "telemetry.jsonl"
)
