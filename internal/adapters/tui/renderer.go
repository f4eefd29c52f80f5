package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/idgov/internal/adapters/telemetry"
	"go.trai.ch/idgov/internal/core/domain"
)

// Renderer wraps the Bubble Tea program as a ports.ProgressRenderer. Every
// event is forwarded as a message; the model owns all state.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new TUI renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnSpanStart forwards the start of a traced operation to the TUI.
func (r *Renderer) OnSpanStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(telemetry.MsgSpanStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnSpanEnd forwards the completion of a traced operation to the TUI.
func (r *Renderer) OnSpanEnd(spanID string, endTime time.Time, err error) {
	r.program.Send(telemetry.MsgSpanEnd{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// OnJobStart forwards a started remote job to the TUI.
func (r *Renderer) OnJobStart(jobID, label string, kind domain.JobKind) {
	r.program.Send(telemetry.MsgJobStart{
		JobID: jobID,
		Label: label,
		Kind:  kind,
	})
}

// OnJobPoll forwards one poll observation to the TUI.
func (r *Renderer) OnJobPoll(jobID string, attempt int, status domain.JobStatus) {
	r.program.Send(telemetry.MsgJobPoll{
		JobID:   jobID,
		Attempt: attempt,
		Status:  status,
	})
}

// OnJobDone forwards the final report of an operation to the TUI.
func (r *Renderer) OnJobDone(jobID string, report domain.OutcomeReport) {
	r.program.Send(telemetry.MsgJobDone{
		JobID:  jobID,
		Report: report,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
