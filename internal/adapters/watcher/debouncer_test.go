package watcher_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/idgov/internal/adapters/watcher"
)

func TestNewDebouncer(t *testing.T) {
	tests := []struct {
		name     string
		window   time.Duration
		callback func()
	}{
		{
			name:     "with callback",
			window:   100 * time.Millisecond,
			callback: func() {},
		},
		{
			name:     "with nil callback",
			window:   50 * time.Millisecond,
			callback: nil,
		},
		{
			name:     "with zero window",
			window:   0,
			callback: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := watcher.NewDebouncer(tt.window, tt.callback)
			require.NotNil(t, d)
		})
	}
}

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func() {
			callCount++
		})

		// Several triggers within one window fire once.
		d.Add()
		d.Add()
		d.Add()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
	})
}

func TestDebouncer_SeparateWindowsFireSeparately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func() {
			callCount++
		})

		d.Add()
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add()
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 2, callCount)
	})
}

func TestDebouncer_TriggerResetsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func() {
			callCount++
		})

		d.Add()
		time.Sleep(60 * time.Millisecond)
		// Still inside the window, resets the timer.
		d.Add()
		time.Sleep(60 * time.Millisecond)

		synctest.Wait()
		assert.Equal(t, 0, callCount)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_FlushFiresImmediately(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(time.Hour, func() {
			callCount++
		})

		d.Add()
		d.Flush()

		require.Equal(t, 1, callCount)

		// The stopped timer must not fire again.
		time.Sleep(2 * time.Hour)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_FlushWithoutPendingIsNoop(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func() {
		callCount++
	})

	d.Flush()

	assert.Equal(t, 0, callCount)
}
