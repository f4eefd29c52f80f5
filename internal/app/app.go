// Package app implements the application layer for idgov.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/idgov/internal/adapters/detector"
	"go.trai.ch/idgov/internal/adapters/isc"
	"go.trai.ch/idgov/internal/adapters/linear"
	"go.trai.ch/idgov/internal/adapters/telemetry"
	"go.trai.ch/idgov/internal/adapters/tui"
	"go.trai.ch/idgov/internal/core/domain"
	"go.trai.ch/idgov/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	metrics      ports.Metrics
	watcher      ports.Watcher

	stdout        io.Writer
	teaOptions    []tea.ProgramOption
	clientFactory func(domain.Tenant) (ports.Client, error)

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger, metrics ports.Metrics, watcher ports.Watcher) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		metrics:      metrics,
		watcher:      watcher,
		stdout:       os.Stdout,
		clientFactory: func(t domain.Tenant) (ports.Client, error) {
			return isc.New(t)
		},
		sessions: make(map[string]*Session),
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithClientFactory replaces the client constructor. Used by tests.
func (a *App) WithClientFactory(f func(domain.Tenant) (ports.Client, error)) *App {
	a.clientFactory = f
	return a
}

// WithStdout redirects listing output. Used by tests.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration shared by all operations.
type RunOptions struct {
	// Tenant is the configured tenant alias; empty selects the default.
	Tenant string
	// OutputMode overrides renderer auto-detection: "auto", "tui", "linear".
	OutputMode string
	// JSON switches log output to JSON lines.
	JSON bool
}

// Aggregate starts an aggregation of the named source and waits for its
// outcome. entitlements selects entitlement aggregation over accounts.
func (a *App) Aggregate(ctx context.Context, source string, entitlements bool, opts RunOptions) error {
	s, err := a.sessionFor(opts)
	if err != nil {
		return a.fail(err)
	}

	return a.run(ctx, s, opts, false, func(ctx context.Context, op *operator) error {
		if entitlements {
			_, err := op.AggregateEntitlements(ctx, source)
			return err
		}
		_, err := op.AggregateAccounts(ctx, source)
		return err
	})
}

// Reset performs the two-phase composite reset of the named source.
func (a *App) Reset(ctx context.Context, source string, opts RunOptions) error {
	s, err := a.sessionFor(opts)
	if err != nil {
		return a.fail(err)
	}

	return a.run(ctx, s, opts, false, func(ctx context.Context, op *operator) error {
		return op.ResetSource(ctx, source)
	})
}

// ListSources prints the tenant's sources to stdout, one line per source.
// filter is passed through to the server; empty matches everything.
func (a *App) ListSources(ctx context.Context, filter string, opts RunOptions) error {
	s, err := a.sessionFor(opts)
	if err != nil {
		return a.fail(err)
	}

	resources, err := s.ListAll(ctx, domain.TypeSource, filter)
	if err != nil {
		return a.fail(err)
	}

	w := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, r := range resources {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, r.Name, r.Description)
	}
	return w.Flush()
}

// Browse opens the interactive resource browser. In non-interactive
// environments it falls back to the linear sources listing. The
// configuration file is watched for the whole browse session; a change
// drops all tenant sessions so the next fetch sees the new configuration.
func (a *App) Browse(ctx context.Context, opts RunOptions) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	if mode != detector.ModeTUI {
		return a.ListSources(ctx, "", opts)
	}

	s, err := a.sessionFor(opts)
	if err != nil {
		return a.fail(err)
	}

	a.watchConfig(ctx)
	defer func() {
		if a.watcher != nil {
			_ = a.watcher.Stop()
		}
	}()

	// The browser is user-driven; the run ends when the operator quits.
	return a.run(ctx, s, opts, true, func(_ context.Context, _ *operator) error {
		return nil
	})
}

// run wires the renderer, telemetry bridge and tracer around one unit of
// work, then drives renderer and work concurrently.
func (a *App) run(ctx context.Context, s *Session, opts RunOptions, keepOpen bool, work func(context.Context, *operator) error) error {
	a.logger.SetJSON(opts.JSON)

	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)

	var renderer ports.ProgressRenderer
	if mode == detector.ModeTUI {
		model := tui.NewModel(ctx, s.Tenant().Name, s)
		optsTea := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		renderer = tui.NewRenderer(model, optsTea...)
	} else {
		renderer = linear.NewRenderer(a.stdout, os.Stderr)
	}

	// Route every span through the renderer so traced operations double as
	// progress scopes.
	shutdown := telemetry.Setup(renderer)
	defer func() { _ = shutdown(ctx) }()

	op := &operator{
		session:  s,
		tracer:   telemetry.NewOTelTracer("idgov"),
		renderer: renderer,
		metrics:  a.metrics,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(ctx); err != nil {
			return err
		}
		// Wait blocks until the renderer has terminated.
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			// The renderer outlives the work only in the browser.
			if !keepOpen {
				_ = renderer.Stop()
			}
		}()

		if err := work(ctx, op); err != nil {
			return a.fail(err)
		}
		return nil
	})

	return g.Wait()
}

// sessionFor loads the configuration, selects the tenant and returns its
// session, constructing one on first use.
func (a *App) sessionFor(opts RunOptions) (*Session, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, err
	}

	alias := opts.Tenant
	if alias == "" {
		alias = cfg.DefaultTenant
	}
	tenant, ok := cfg.Tenant(alias)
	if !ok {
		return nil, zerr.With(domain.ErrUnknownTenant, "tenant", alias)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	fp := tenant.Fingerprint()
	if s, ok := a.sessions[fp]; ok {
		return s, nil
	}

	client, err := a.clientFactory(tenant)
	if err != nil {
		return nil, err
	}

	s := NewSession(tenant, client, a.metrics)
	a.sessions[fp] = s
	return s, nil
}

// watchConfig starts the config file watch and drops all sessions on change.
func (a *App) watchConfig(ctx context.Context) {
	if a.watcher == nil {
		return
	}

	path, err := a.configLoader.Discover(".")
	if err != nil {
		return
	}

	if err := a.watcher.Start(ctx, path); err != nil {
		a.logger.Warn("config watch unavailable: " + err.Error())
		return
	}

	go func() {
		for range a.watcher.Events() {
			a.dropSessions()
			a.logger.Info("configuration changed, tenant sessions reset")
		}
	}()
}

// dropSessions invalidates and discards every cached session.
func (a *App) dropSessions() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, s := range a.sessions {
		s.Invalidate()
	}
	a.sessions = make(map[string]*Session)
}

// fail logs the error and tags it so main exits non-zero.
func (a *App) fail(err error) error {
	a.logger.Error(err)
	return errors.Join(domain.ErrOperationFailed, err)
}
