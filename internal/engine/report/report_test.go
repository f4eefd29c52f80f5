package report_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/engine/report"
)

var aggregationTemplates = report.Templates{
	Success: "Source {0} successfully aggregated",
	Warning: "Warning during aggregation of {0}: {1}",
	Failure: "Aggregation of {0} failed: {1} {2}",
}

func TestFormat_Success(t *testing.T) {
	r := report.Format(domain.OutcomeSuccess, "HR", &domain.Job{Status: domain.JobSuccess}, aggregationTemplates)

	assert.Equal(t, domain.OutcomeSuccess, r.Category)
	assert.Equal(t, "Source HR successfully aggregated", r.Text)
}

func TestFormat_Warning(t *testing.T) {
	job := &domain.Job{
		Status: domain.JobWarning,
		Messages: []domain.JobMessage{
			{Key: "PARTIAL", Text: "3 accounts skipped"},
			{Key: "CONN_SLOW", Text: "connector responded slowly"},
		},
	}

	r := report.Format(domain.OutcomeWarning, "HR", job, aggregationTemplates)

	assert.Equal(t, domain.OutcomeWarning, r.Category)
	assert.Equal(t, "Warning during aggregation of HR: 3 accounts skipped; connector responded slowly", r.Text)
}

func TestFormat_Failure(t *testing.T) {
	job := &domain.Job{
		Status: domain.JobFailure,
		Messages: []domain.JobMessage{
			{Key: "CONN_TIMEOUT", Text: "connector timed out"},
		},
	}

	r := report.Format(domain.OutcomeFailure, "HR", job, aggregationTemplates)

	assert.Equal(t, domain.OutcomeFailure, r.Category)
	assert.Equal(t, "Aggregation of HR failed: CONN_TIMEOUT connector timed out", r.Text)
}

func TestFormat_CancelledIsSilent(t *testing.T) {
	r := report.Format(domain.OutcomeCancelled, "HR", nil, aggregationTemplates)

	assert.Equal(t, domain.OutcomeCancelled, r.Category)
	assert.Empty(t, r.Text)
}

func TestFormat_MissingDiagnostics(t *testing.T) {
	// Terminal jobs are supposed to carry diagnostics on Warning/Failure,
	// but the formatter must not blow up when the server omits them.
	r := report.Format(domain.OutcomeFailure, "HR", &domain.Job{Status: domain.JobFailure}, aggregationTemplates)
	assert.Equal(t, "Aggregation of HR failed:  ", r.Text)

	r = report.Format(domain.OutcomeWarning, "HR", nil, aggregationTemplates)
	assert.Equal(t, "Warning during aggregation of HR: ", r.Text)
}

func TestFormat_Golden(t *testing.T) {
	resetTemplates := report.Templates{
		Success: "Accounts of {0} were reset",
		Warning: "Reset of {0} finished with warnings: {1}",
		Failure: "Reset of {0} failed with {1}: {2}",
	}

	job := &domain.Job{
		Status: domain.JobFailure,
		Messages: []domain.JobMessage{
			{Key: "SOURCE_LOCKED", Text: "a reset is already running for this source"},
		},
	}

	var b strings.Builder
	for _, category := range []domain.OutcomeCategory{
		domain.OutcomeSuccess,
		domain.OutcomeWarning,
		domain.OutcomeFailure,
		domain.OutcomeCancelled,
	} {
		r := report.Format(category, "Active Directory", job, resetTemplates)
		b.WriteString(string(r.Category))
		b.WriteString(": ")
		b.WriteString(r.Text)
		b.WriteString("\n")
	}

	g := goldie.New(t)
	g.Assert(t, "reset_reports", []byte(b.String()))
}
