package runner

// Status is the outcome of the model step.
type Status int

const (
	// StatusCompleted means the model returned a reply.
	StatusCompleted Status = iota
	// StatusSkipped means no credential was configured and no call was made.
	StatusSkipped
	// StatusFailed means the completion call returned an error.
	StatusFailed
)

const skippedText = "OPENAI_API_KEY not set. Skipping model call."

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the model step outcome: reply text, a skip, or a remote failure.
type Result struct {
	Status Status
	Text   string
	Err    error
}

// Completed wraps a model reply.
func Completed(text string) Result {
	return Result{Status: StatusCompleted, Text: text}
}

// Skipped marks a run without a credential.
func Skipped() Result {
	return Result{Status: StatusSkipped}
}

// Failed wraps an error returned by the completion service.
func Failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

// String renders the result as it appears in the report Output section.
func (r Result) String() string {
	switch r.Status {
	case StatusSkipped:
		return skippedText
	case StatusFailed:
		msg := "<nil>"
		if r.Err != nil {
			msg = r.Err.Error()
		}
		return "Model call failed: " + msg
	default:
		return r.Text
	}
}
