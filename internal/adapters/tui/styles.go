package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/idgov/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Indigo).
			Foreground(style.White)

	tenantStyle = lipgloss.NewStyle().
			Bold(true)

	folderStyle = lipgloss.NewStyle().
			Foreground(style.Indigo)

	resourceStyle = lipgloss.NewStyle()

	syntheticStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Indigo).
			Bold(true)

	jobRunningStyle = lipgloss.NewStyle().
			Foreground(style.Indigo)

	jobSuccessStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	jobWarningStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	jobFailureStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	statusStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)
