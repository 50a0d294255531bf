package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/pyboot/internal/model"
)

var (
	completeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	statusStyles = map[string]lipgloss.Style{
		model.StatusSatisfied:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		model.StatusPendingAction: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		model.StatusFailed:        lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)
