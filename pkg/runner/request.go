package runner

import (
	"strings"

	"github.com/minhyannv/agent-run-go/pkg/config"
)

// Request holds the caller inputs for one run.
type Request struct {
	Goal string
	// Context is the raw comma-separated list of context file paths.
	Context string
	// Tools is free-form and only echoed into the report.
	Tools      string
	ReportPath string
}

// NewRequest builds a Request, defaulting the report path.
func NewRequest(goal, contextCSV, tools, reportPath string) Request {
	if strings.TrimSpace(reportPath) == "" {
		reportPath = config.DefaultReportPath
	}
	return Request{
		Goal:       goal,
		Context:    contextCSV,
		Tools:      tools,
		ReportPath: reportPath,
	}
}

// ContextPaths splits the raw context list into trimmed, non-empty paths in input order.
func (r Request) ContextPaths() []string {
	return ParseContextPaths(r.Context)
}

// ParseContextPaths splits a comma-separated path list, dropping blank entries.
func ParseContextPaths(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
