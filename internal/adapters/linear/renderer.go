// Package linear provides a synchronous, line-based renderer for CI and
// other non-interactive environments.
package linear

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/ui/output"
	"go.trai.ch/idgov/internal/ui/style"
)

// Renderer implements ports.ProgressRenderer with chronological log lines.
// Operation scopes go to stderr, job outcomes to stdout.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu    sync.Mutex
	spans map[string]*spanState // spanID -> state
	jobs  map[string]string     // jobID -> label
}

type spanState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers default to the process
// streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: termenv.NewOutput(stderr, termenv.WithProfile(output.ColorProfileANSI())),
		spans:  make(map[string]*spanState),
		jobs:   make(map[string]string),
	}
}

// Start is a no-op, the renderer is synchronous.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op, every event is written immediately.
func (r *Renderer) Stop() error {
	return nil
}

// Wait is a no-op, the renderer is synchronous.
func (r *Renderer) Wait() error {
	return nil
}

// OnSpanStart prints the start of a traced operation.
func (r *Renderer) OnSpanStart(spanID, _ /* parentID */, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans[spanID] = &spanState{
		name:      name,
		startTime: startTime,
	}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s started\n", prefix)
}

// OnSpanEnd prints the completion of a traced operation with its duration.
func (r *Renderer) OnSpanEnd(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.spans[spanID]
	if !ok {
		return
	}
	delete(r.spans, spanID)

	duration := endTime.Sub(span.startTime).Round(time.Millisecond)
	prefix := fmt.Sprintf("[%s]", span.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s failed after %v: %v\n",
			prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s completed in %v\n",
		prefix, symbol, duration)
}

// OnJobStart prints that a remote job has been started.
func (r *Renderer) OnJobStart(jobID, label string, kind domain.JobKind) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs[jobID] = label

	_, _ = fmt.Fprintf(r.stderr, "%s %s: started %s (job %s)\n",
		style.Chevron, label, kind, jobID)
}

// OnJobPoll prints one poll observation for a running job.
func (r *Renderer) OnJobPoll(jobID string, attempt int, status domain.JobStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	label, ok := r.jobs[jobID]
	if !ok {
		return
	}

	line := fmt.Sprintf("%s %s: %s (attempt %d)", style.Ellipsis, label, status, attempt)
	_, _ = fmt.Fprintln(r.stderr, r.output.String(line).Faint().String())
}

// OnJobDone prints the final report. Cancelled reports render nothing.
func (r *Renderer) OnJobDone(jobID string, report domain.OutcomeReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.jobs, jobID)

	if report.Category == domain.OutcomeCancelled {
		return
	}

	var symbol string
	switch report.Category {
	case domain.OutcomeWarning:
		symbol = r.output.String(style.Warning).Foreground(termenv.ANSIYellow).String()
	case domain.OutcomeFailure:
		symbol = r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
	default:
		symbol = r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	}

	_, _ = fmt.Fprintf(r.stdout, "%s %s\n", symbol, report.Text)
}
