package ui

import "github.com/charmbracelet/lipgloss"

// ANSI 16-color palette only, so output stays readable on any terminal.
var (
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	ValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)
