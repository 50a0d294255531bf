package prompt

import "github.com/charmbracelet/lipgloss"

var (
	letterStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	instructionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)
