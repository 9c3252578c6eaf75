// Package runner executes one goal against a chat completion model and
// writes a markdown report of the inputs and the reply.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/minhyannv/agent-run-go/pkg/config"
	loggerpkg "github.com/minhyannv/agent-run-go/pkg/logger"
)

// Executor runs a single request end to end.
type Executor struct {
	config    config.Config
	completer Completer
	out       io.Writer
	now       func() time.Time
	newRunID  func() string
	logger    loggerpkg.Logger
}

// New builds an Executor. Without WithCompleter, an OpenAI client is created
// when cfg carries an API key.
func New(cfg config.Config, opts ...Option) *Executor {
	cfg = config.Normalize(cfg)
	deps := executorDeps{
		logger:   loggerpkg.NopLogger{},
		out:      os.Stdout,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	if deps.completer == nil && cfg.HasAPIKey() {
		deps.completer = NewOpenAICompleter(cfg)
	}
	if deps.logger == nil {
		deps.logger = loggerpkg.NopLogger{}
	}
	if deps.out == nil {
		deps.out = io.Discard
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.newRunID == nil {
		deps.newRunID = uuid.NewString
	}

	return &Executor{
		config:    cfg,
		completer: deps.completer,
		out:       deps.out,
		now:       deps.now,
		newRunID:  deps.newRunID,
		logger:    deps.logger,
	}
}

// Execute reads the context files, calls the model, writes the report and
// prints a confirmation line. It returns the path of the written report.
// Model failures are recorded in the report; every other failure is returned.
func (e *Executor) Execute(ctx context.Context, req Request) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if req.ReportPath == "" {
		req.ReportPath = config.DefaultReportPath
	}
	log := loggerpkg.With(e.logger, loggerpkg.Fields{"run_id": e.newRunID()})

	paths := req.ContextPaths()
	loggerpkg.Debug(log, "run start", loggerpkg.Fields{
		"model":         e.config.Model,
		"context_paths": paths,
		"report":        req.ReportPath,
		"has_api_key":   e.config.HasAPIKey(),
	})

	contextContent, err := LoadContext(paths)
	if err != nil {
		return "", err
	}
	loggerpkg.Debug(log, "context loaded", loggerpkg.Fields{"bytes": len(contextContent)})

	result, err := e.complete(ctx, req.Goal, contextContent)
	if err != nil {
		return "", err
	}
	switch result.Status {
	case StatusFailed:
		loggerpkg.Warn(log, "model call failed", loggerpkg.Fields{"error": result.Err.Error()})
	case StatusSkipped:
		loggerpkg.Info(log, "model call skipped", loggerpkg.Fields{"reason": "missing " + config.EnvAPIKey})
	default:
		loggerpkg.Debug(log, "model call completed", loggerpkg.Fields{"bytes": len(result.Text)})
	}

	report := Report{
		Time:         e.now(),
		Goal:         req.Goal,
		ContextFiles: req.Context,
		Model:        e.config.Model,
		Tools:        req.Tools,
		Output:       result.String(),
	}
	path, err := WriteReport(req.ReportPath, report.Markdown())
	if err != nil {
		return "", err
	}
	loggerpkg.Debug(log, "report written", loggerpkg.Fields{"path": path, "status": result.Status.String()})

	_, _ = fmt.Fprintf(e.out, "Report written to %s\n", path)
	return path, nil
}

// complete runs the model step. The returned error is reserved for
// misconfiguration; remote failures come back as a failed Result.
func (e *Executor) complete(ctx context.Context, goal, contextContent string) (Result, error) {
	if !e.config.HasAPIKey() {
		return Skipped(), nil
	}
	if e.completer == nil {
		return Result{}, errors.New("completer is not configured")
	}

	reply, err := e.completer.Complete(ctx, CompletionRequest{
		Model:  e.config.Model,
		System: systemPrompt,
		User:   BuildUserPrompt(goal, contextContent),
	})
	if err != nil {
		return Failed(err), nil
	}
	return Completed(reply), nil
}
