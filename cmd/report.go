package cmd

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"text/template"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/khanhnv2901/cookiescope/internal/constants"
	"github.com/khanhnv2901/cookiescope/internal/finding"
	"github.com/spf13/cobra"
)

const markdownTemplatePath = "templates/report.md"

//go:embed templates/report.md
var reportTemplateFS embed.FS

// TemplateData is the view model every report format renders from.
type TemplateData struct {
	GeneratedAt  time.Time
	StartedAt    time.Time
	CompletedAt  time.Time
	TotalTargets int
	OKCount      int
	ErrorCount   int
	Findings     []finding.Finding
}

var markdownTemplateFuncs = template.FuncMap{
	"join":        strings.Join,
	"formatTime":  formatShortTimestamp,
	"cookieNames": cookieNames,
}

var markdownReportTemplate = template.Must(
	template.New("report.md").Funcs(markdownTemplateFuncs).ParseFS(reportTemplateFS, markdownTemplatePath),
)

var (
	reportFormat string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render scan findings as a table, markdown, or PDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		resultsPath := filepath.Join(resultsDir, constants.FindingsFilename)
		out, err := readScanOutput(resultsPath)
		if err != nil {
			return err
		}

		okCount, errorCount := summarizeStatuses(out.Results)
		data := TemplateData{
			GeneratedAt:  time.Now().UTC(),
			StartedAt:    out.Metadata.StartedAt,
			CompletedAt:  out.Metadata.CompletedAt,
			TotalTargets: out.Metadata.TotalTargets,
			OKCount:      okCount,
			ErrorCount:   errorCount,
			Findings:     out.Findings,
		}

		switch reportFormat {
		case "table":
			return renderTableReport(os.Stdout, data)
		case "markdown", "md":
			rendered, err := renderMarkdownReport(data)
			if err != nil {
				return err
			}
			return emitReport([]byte(rendered), reportOutput)
		case "pdf":
			if reportOutput == "" {
				reportOutput = filepath.Join(resultsDir, "report.pdf")
			}
			rendered, err := generatePDFReportBytes(data)
			if err != nil {
				return err
			}
			return emitReport(rendered, reportOutput)
		}
		return &UnknownFormatError{Format: reportFormat}
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "output format: table, markdown, or pdf")
	reportCmd.Flags().StringVar(&reportOutput, "output", "", "write the report to this file instead of stdout (defaults to results dir for pdf)")
}

func readScanOutput(path string) (*ScanOutput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ResultsNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read scan output: %w", err)
	}

	var out ScanOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse scan output: %w", err)
	}
	return &out, nil
}

func emitReport(rendered []byte, output string) error {
	if output == "" {
		_, err := os.Stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(output, rendered, constants.DefaultFilePerm); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Printf("%s %s\n", colorInfo("Report:"), output)
	return nil
}

func renderTableReport(w io.Writer, data TemplateData) error {
	fmt.Fprintf(w, "Scanned %d target(s): %d ok, %d error(s)\n\n",
		data.TotalTargets, data.OKCount, data.ErrorCount)

	if len(data.Findings) == 0 {
		fmt.Fprintln(w, colorSuccess("No loosely scoped cookies found."))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOST\tCOOKIE\tDOMAIN\tRISK\tCONFIDENCE")
	for _, f := range data.Findings {
		for _, c := range f.Cookies {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", f.Host, c.Name, c.Domain, f.Risk, f.Confidence)
		}
	}
	return tw.Flush()
}

func renderMarkdownReport(data TemplateData) (string, error) {
	var sb strings.Builder
	if err := markdownReportTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render markdown report: %w", err)
	}
	return sb.String(), nil
}

func generatePDFReportBytes(data TemplateData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Loosely Scoped Cookie Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", formatShortTimestamp(data.GeneratedAt)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Scan started: %s", formatShortTimestamp(data.StartedAt)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Scan completed: %s", formatShortTimestamp(data.CompletedAt)), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Summary section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Targets: %d | OK: %d | Errors: %d | Hosts flagged: %d",
		data.TotalTargets, data.OKCount, data.ErrorCount, len(data.Findings)), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Findings section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Findings", "", 1, "", false, 0, "")
	pdf.Ln(2)

	if len(data.Findings) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(0, 6, "No loosely scoped cookies were found.", "", 1, "", false, 0, "")
	}

	for _, f := range data.Findings {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 7, fmt.Sprintf("%s (risk: %s, confidence: %s)", f.Host, f.Risk, f.Confidence), "", 1, "", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Rule %d | CWE-%d | WASC-%d", f.PluginID, f.CWEID, f.WASCID), "", 1, "", false, 0, "")
		for _, c := range f.Cookies {
			line := c.Raw
			if line == "" {
				line = fmt.Sprintf("%s (domain=%s)", c.Name, c.Domain)
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("* %s", line), "", "", false)
		}
		pdf.Ln(3)
	}

	// Remediation section
	if len(data.Findings) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Remediation", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, data.Findings[0].Solution, "", "", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF report: %w", err)
	}
	return buf.Bytes(), nil
}

func formatShortTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}

func cookieNames(f finding.Finding) []string {
	names := make([]string, 0, len(f.Cookies))
	for _, c := range f.Cookies {
		names = append(names, c.Name)
	}
	return names
}
