package tui

import (
	"priority-task-list/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	HeaderStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
	SortOnStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	SortOffStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	CursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	DoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	DueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	FormStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	EmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

var priorityColors = map[domain.Priority]lipgloss.Color{
	domain.PriorityHigh:   lipgloss.Color("196"),
	domain.PriorityMedium: lipgloss.Color("214"),
	domain.PriorityLow:    lipgloss.Color("42"),
}

func priorityStyle(p domain.Priority) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(priorityColors[p])
}
