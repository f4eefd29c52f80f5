package tui

import (
	"fmt"
	"strings"

	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.Height == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("IDGOV") + "\n\n")

	start := m.ListOffset
	end := m.ListOffset + m.treeHeight()
	if end > len(m.Rows) {
		end = len(m.Rows)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, m.Rows[i]) + "\n")
	}

	footer := m.footerLines()
	if len(footer) > 0 {
		s.WriteString("\n")
		for _, line := range footer {
			s.WriteString(line + "\n")
		}
	}

	return s.String()
}

// treeHeight is the number of tree rows the terminal can show after the
// header and the activity footer.
func (m *Model) treeHeight() int {
	// Title plus blank line, plus the blank line preceding the footer.
	reserved := 3 + len(m.footerLines())
	height := m.Height - reserved
	if height < 1 {
		height = 1
	}
	return height
}

func (m *Model) renderRow(index int, row Row) string {
	indent := strings.Repeat("  ", row.Indent)

	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
	} else {
		cursor = "  "
	}

	content := m.rowContent(row)
	if index == m.SelectedIdx && row.Node.Kind != domain.NodeMessage {
		content = selectedStyle.Render(content)
	}

	return cursor + indent + content
}

func (m *Model) rowContent(row Row) string {
	node := row.Node

	switch node.Kind {
	case domain.NodeTenant:
		return tenantStyle.Render(node.Label)

	case domain.NodeFolder:
		marker := "▸"
		if m.Expanded[node.Folder] {
			marker = "▾"
		}
		label := folderStyle.Render(fmt.Sprintf("%s %s", marker, node.Label))
		if m.Loading[node.Folder] {
			label += syntheticStyle.Render(" " + style.Ellipsis)
		}
		return label

	case domain.NodeResource:
		return resourceStyle.Render(fmt.Sprintf("%s %s", style.Circle, node.Label))

	case domain.NodePagination:
		return syntheticStyle.Render(fmt.Sprintf("%s %s", style.Ellipsis, node.Label))

	default: // NodeMessage
		return syntheticStyle.Render(node.Label)
	}
}

// footerLines renders the activity section: one line per tracked job, then
// the transient span status.
func (m *Model) footerLines() []string {
	var lines []string

	for _, jobID := range m.jobOrder {
		job, ok := m.jobs[jobID]
		if !ok {
			continue
		}
		if line, show := renderJobLine(job); show {
			lines = append(lines, line)
		}
	}

	if m.status != "" {
		lines = append(lines, statusStyle.Render(m.status))
	}

	return lines
}

func renderJobLine(job *jobState) (string, bool) {
	if job.done {
		switch job.report.Category {
		case domain.OutcomeCancelled:
			return "", false
		case domain.OutcomeWarning:
			return jobWarningStyle.Render(style.Warning + " " + job.report.Text), true
		case domain.OutcomeFailure:
			return jobFailureStyle.Render(style.Cross + " " + job.report.Text), true
		default:
			return jobSuccessStyle.Render(style.Check + " " + job.report.Text), true
		}
	}

	line := fmt.Sprintf("%s %s: %s", style.Dot, job.label, job.status)
	if job.attempt > 0 {
		line += fmt.Sprintf(" (attempt %d)", job.attempt)
	}
	return jobRunningStyle.Render(line), true
}
