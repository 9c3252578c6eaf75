package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Report is the markdown summary of one run.
type Report struct {
	Time         time.Time
	Goal         string
	ContextFiles string
	Model        string
	Tools        string
	Output       string
}

// FormatTimestamp renders t in UTC as an ISO-8601 local time with
// microseconds, omitting the fraction when it is zero.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05.000000")
}

// Markdown renders the report document. Field order is fixed.
func (r Report) Markdown() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Run Report - %sZ\n", FormatTimestamp(r.Time)))
	sb.WriteString("\n## Inputs\n")
	sb.WriteString(fmt.Sprintf("- goal: %s\n", r.Goal))
	sb.WriteString(fmt.Sprintf("- context files: %s\n", r.ContextFiles))
	sb.WriteString(fmt.Sprintf("- model: %s\n", r.Model))
	sb.WriteString(fmt.Sprintf("- tools: %s\n", r.Tools))
	sb.WriteString("\n## Output\n")
	sb.WriteString(r.Output)
	sb.WriteString("\n")
	return sb.String()
}

// WriteReport creates the parent directories of path and writes content,
// replacing any existing file. The path is handed to the OS unchanged.
func WriteReport(path, content string) (string, error) {
	if err := os.MkdirAll(parentDir(path), 0o755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}

// parentDir strips the last path element without the lexical cleaning
// filepath.Dir applies, keeping ".." after a symlink intact.
func parentDir(path string) string {
	i := strings.LastIndexAny(path, "/"+string(filepath.Separator))
	if i < 0 {
		return "."
	}
	return path[:i+1]
}
