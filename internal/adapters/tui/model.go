// Package tui provides the interactive resource browser.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/idgov/internal/adapters/telemetry"
	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/ui/output"
)

// Loader supplies folder contents to the browser. Implementations page
// lazily: LoadMore fetches the next window for a folder and Items returns
// the display sequence accumulated so far, including the trailing
// continuation or empty-state marker.
type Loader interface {
	LoadMore(ctx context.Context, t domain.ResourceType) error
	Items(t domain.ResourceType) []domain.Node
}

// Row is one visible line of the browse tree.
type Row struct {
	Node   domain.Node
	Indent int
}

// jobState tracks one remote job shown in the activity footer.
type jobState struct {
	label   string
	kind    domain.JobKind
	status  domain.JobStatus
	attempt int
	done    bool
	report  domain.OutcomeReport
}

type spanInfo struct {
	name      string
	startTime time.Time
}

// msgFolderLoaded carries the refreshed display sequence of one folder.
type msgFolderLoaded struct {
	Folder domain.ResourceType
	Items  []domain.Node
}

// msgLoadFailed reports a failed window fetch for one folder.
type msgLoadFailed struct {
	Folder domain.ResourceType
	Err    error
}

// Model is the Bubble Tea state of the browser: the tenant's resource tree
// on top, a live activity footer below.
type Model struct {
	Tenant string

	Expanded map[domain.ResourceType]bool
	Loading  map[domain.ResourceType]bool
	LoadErrs map[domain.ResourceType]string

	Rows        []Row
	SelectedIdx int
	ListOffset  int
	Width       int
	Height      int

	loader Loader
	ctx    context.Context
	items  map[domain.ResourceType][]domain.Node

	spans    map[string]spanInfo
	jobs     map[string]*jobState
	jobOrder []string
	status   string
}

// NewModel creates a browser model for one tenant. ctx bounds the fetches
// issued by expand and load-more commands.
func NewModel(ctx context.Context, tenant string, loader Loader) *Model {
	if ctx == nil {
		ctx = context.Background()
	}

	lipgloss.SetColorProfile(output.ColorProfile())

	m := &Model{
		Tenant:   tenant,
		Expanded: make(map[domain.ResourceType]bool),
		Loading:  make(map[domain.ResourceType]bool),
		LoadErrs: make(map[domain.ResourceType]string),
		loader:   loader,
		ctx:      ctx,
		items:    make(map[domain.ResourceType][]domain.Node),
		spans:    make(map[string]spanInfo),
		jobs:     make(map[string]*jobState),
	}
	m.rebuildRows()
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop // message dispatch
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.ensureVisible()

	case msgFolderLoaded:
		m.Loading[msg.Folder] = false
		delete(m.LoadErrs, msg.Folder)
		m.items[msg.Folder] = msg.Items
		m.rebuildRows()

	case msgLoadFailed:
		m.Loading[msg.Folder] = false
		m.LoadErrs[msg.Folder] = msg.Err.Error()
		m.rebuildRows()

	case telemetry.MsgSpanStart:
		m.spans[msg.SpanID] = spanInfo{name: msg.Name, startTime: msg.StartTime}
		m.status = msg.Name + " running"

	case telemetry.MsgSpanEnd:
		span, ok := m.spans[msg.SpanID]
		if !ok {
			break
		}
		delete(m.spans, msg.SpanID)
		duration := msg.EndTime.Sub(span.startTime).Round(time.Millisecond)
		if msg.Err != nil {
			m.status = span.name + " failed after " + duration.String()
		} else {
			m.status = span.name + " completed in " + duration.String()
		}

	case telemetry.MsgJobStart:
		m.jobs[msg.JobID] = &jobState{
			label:  msg.Label,
			kind:   msg.Kind,
			status: domain.JobPending,
		}
		m.jobOrder = append(m.jobOrder, msg.JobID)

	case telemetry.MsgJobPoll:
		if job, ok := m.jobs[msg.JobID]; ok {
			job.status = msg.Status
			job.attempt = msg.Attempt
		}

	case telemetry.MsgJobDone:
		if job, ok := m.jobs[msg.JobID]; ok {
			job.done = true
			job.report = msg.Report
		}
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "k", "up":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.ensureVisible()
		}

	case "j", "down":
		if m.SelectedIdx < len(m.Rows)-1 {
			m.SelectedIdx++
			m.ensureVisible()
		}

	case "enter", " ":
		return m, m.activate()
	}

	return m, nil
}

// activate acts on the selected row: folders toggle, continuation markers
// grow their folder.
func (m *Model) activate() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}

	switch row.Node.Kind {
	case domain.NodeFolder:
		folder := row.Node.Folder
		m.Expanded[folder] = !m.Expanded[folder]
		m.rebuildRows()

		// First expansion triggers the initial window fetch.
		if m.Expanded[folder] && len(m.items[folder]) == 0 && !m.Loading[folder] {
			return m.loadCmd(folder)
		}

	case domain.NodePagination:
		if !m.Loading[row.Node.Folder] {
			return m.loadCmd(row.Node.Folder)
		}
	}

	return nil
}

// loadCmd fetches the next window of a folder off the Update loop.
func (m *Model) loadCmd(folder domain.ResourceType) tea.Cmd {
	m.Loading[folder] = true
	delete(m.LoadErrs, folder)
	m.rebuildRows()

	return func() tea.Msg {
		if err := m.loader.LoadMore(m.ctx, folder); err != nil {
			return msgLoadFailed{Folder: folder, Err: err}
		}
		return msgFolderLoaded{Folder: folder, Items: m.loader.Items(folder)}
	}
}

// rebuildRows flattens the tree into the visible row sequence. The tenant
// root is always first, folders follow in display order, expanded folders
// interleave their accumulated items.
func (m *Model) rebuildRows() {
	rows := []Row{{Node: domain.TenantNode(m.Tenant)}}

	for _, t := range domain.ResourceTypes {
		rows = append(rows, Row{Node: domain.FolderNode(t), Indent: 1})
		if !m.Expanded[t] {
			continue
		}

		if errText, ok := m.LoadErrs[t]; ok {
			rows = append(rows, Row{Node: domain.MessageNode(errText, string(t)), Indent: 2})
			continue
		}

		items := m.items[t]
		if len(items) == 0 && m.Loading[t] {
			rows = append(rows, Row{Node: domain.MessageNode("Loading...", string(t)), Indent: 2})
			continue
		}

		for _, n := range items {
			rows = append(rows, Row{Node: n, Indent: 2})
		}
	}

	m.Rows = rows
	if m.SelectedIdx >= len(m.Rows) {
		m.SelectedIdx = len(m.Rows) - 1
	}
	m.ensureVisible()
}

func (m *Model) selectedRow() (Row, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.Rows) {
		return Row{}, false
	}
	return m.Rows[m.SelectedIdx], true
}

func (m *Model) ensureVisible() {
	height := m.treeHeight()
	if height <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+height {
		m.ListOffset = m.SelectedIdx - height + 1
	}
}
