package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/idgov/internal/adapters/watcher"
	"go.trai.ch/idgov/internal/core/ports"
)

// collectEvents drains the watcher's event iterator into a channel so tests
// can wait with a timeout.
func collectEvents(w ports.Watcher) <-chan ports.WatchEvent {
	ch := make(chan ports.WatchEvent, 16)
	go func() {
		defer close(ch)
		for event := range w.Events() {
			ch <- event
		}
	}()
	return ch
}

func waitForEvent(t *testing.T, ch <-chan ports.WatchEvent) ports.WatchEvent {
	t.Helper()
	select {
	case event, ok := <-ch:
		require.True(t, ok, "event channel closed before an event arrived")
		return event
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a watch event")
		return ports.WatchEvent{}
	}
}

func TestWatcher_ReportsWriteToWatchedFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "idgov.yaml")
	require.NoError(t, os.WriteFile(target, []byte("tenants: {}\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, w.Start(ctx, target))

	events := collectEvents(w)

	require.NoError(t, os.WriteFile(target, []byte("tenants:\n  prod:\n    base_url: https://x\n"), 0o600))

	event := waitForEvent(t, events)
	assert.Equal(t, target, event.Path)
	assert.Contains(t, []ports.WatchOp{ports.OpWrite, ports.OpCreate}, event.Operation)
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "idgov.yaml")
	require.NoError(t, os.WriteFile(target, []byte("tenants: {}\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, w.Start(ctx, target))

	events := collectEvents(w)

	// Changes to other files in the directory must not surface.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	select {
	case event := <-events:
		t.Fatalf("unexpected event for sibling file: %+v", event)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_ReportsRemove(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "idgov.yaml")
	require.NoError(t, os.WriteFile(target, []byte("tenants: {}\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, w.Start(ctx, target))

	events := collectEvents(w)

	require.NoError(t, os.Remove(target))

	event := waitForEvent(t, events)
	assert.Equal(t, ports.OpRemove, event.Operation)
}

func TestWatcher_StopClosesEvents(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "idgov.yaml")
	require.NoError(t, os.WriteFile(target, []byte("tenants: {}\n"), 0o600))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, w.Start(ctx, target))

	events := collectEvents(w)

	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok, "event channel should close after Stop")
	case <-time.After(5 * time.Second):
		t.Fatal("event channel did not close after Stop")
	}
}
