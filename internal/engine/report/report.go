// Package report turns classified job outcomes into operator-facing messages.
package report

import (
	"strconv"
	"strings"

	"go.trai.ch/idgov/internal/core/domain"
)

// Templates supplies one message template per terminal category. Templates
// use positional placeholders: {0} is always the resource label; Warning
// additionally gets {1} = the job's joined diagnostics; Failure gets
// {1} = the first diagnostic's code and {2} = its text.
type Templates struct {
	Success string
	Warning string
	Failure string
}

// Format produces the report for one finished operation. It is pure: no
// I/O happens here, the caller presents the text. A Cancelled outcome
// yields an empty text since cancellation is silent.
func Format(category domain.OutcomeCategory, label string, job *domain.Job, tpl Templates) domain.OutcomeReport {
	r := domain.OutcomeReport{Category: category}

	switch category {
	case domain.OutcomeSuccess:
		r.Text = expand(tpl.Success, label)
	case domain.OutcomeWarning:
		r.Text = expand(tpl.Warning, label, joined(job))
	case domain.OutcomeFailure:
		first := firstMessage(job)
		r.Text = expand(tpl.Failure, label, first.Key, first.Text)
	case domain.OutcomeCancelled:
		// No text.
	}
	return r
}

func joined(job *domain.Job) string {
	if job == nil {
		return ""
	}
	return job.JoinedMessages()
}

func firstMessage(job *domain.Job) domain.JobMessage {
	if job == nil {
		return domain.JobMessage{}
	}
	return job.FirstMessage()
}

// expand substitutes positional {0}, {1}, ... placeholders. Placeholders
// with no corresponding argument are left untouched.
func expand(tpl string, args ...string) string {
	out := tpl
	for i, arg := range args {
		out = strings.ReplaceAll(out, "{"+strconv.Itoa(i)+"}", arg)
	}
	return out
}
