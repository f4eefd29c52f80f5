package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/idgov/internal/adapters/detector"
)

func TestDetectEnvironment_CI(t *testing.T) {
	tests := []struct {
		name    string
		ciValue string
	}{
		{name: "CI=true forces linear mode", ciValue: "true"},
		{name: "CI=1 forces linear mode", ciValue: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CI", tt.ciValue)

			assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
		})
	}
}

func TestDetectEnvironment_NoTTY(t *testing.T) {
	t.Setenv("CI", "")

	// Test binaries never run with stdout on a TTY, so detection must fall
	// back to linear even without CI set.
	assert.Equal(t, detector.ModeLinear, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name         string
		autoDetected detector.OutputMode
		userFlag     string
		expected     detector.OutputMode
	}{
		{
			name:         "auto respects auto-detection (TUI)",
			autoDetected: detector.ModeTUI,
			userFlag:     "auto",
			expected:     detector.ModeTUI,
		},
		{
			name:         "auto respects auto-detection (Linear)",
			autoDetected: detector.ModeLinear,
			userFlag:     "auto",
			expected:     detector.ModeLinear,
		},
		{
			name:         "empty flag respects auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "",
			expected:     detector.ModeTUI,
		},
		{
			name:         "tui overrides auto-detection",
			autoDetected: detector.ModeLinear,
			userFlag:     "tui",
			expected:     detector.ModeTUI,
		},
		{
			name:         "linear overrides auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "linear",
			expected:     detector.ModeLinear,
		},
		{
			name:         "ci is alias for linear",
			autoDetected: detector.ModeTUI,
			userFlag:     "ci",
			expected:     detector.ModeLinear,
		},
		{
			name:         "invalid flag respects auto-detection",
			autoDetected: detector.ModeTUI,
			userFlag:     "invalid",
			expected:     detector.ModeTUI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.ResolveMode(tt.autoDetected, tt.userFlag))
		})
	}
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "auto", detector.ModeAuto.String())
	assert.Equal(t, "tui", detector.ModeTUI.String())
	assert.Equal(t, "linear", detector.ModeLinear.String())
}
