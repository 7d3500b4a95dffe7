package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the screen
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Pane       lipgloss.Style
	ActivePane lipgloss.Style
	Item       lipgloss.Style
	Cursor     lipgloss.Style
	Selected   lipgloss.Style
	Heading    lipgloss.Style
	Muted      lipgloss.Style
	Badge      map[string]lipgloss.Style
	User       lipgloss.Style
	Assistant  lipgloss.Style
	Fault      lipgloss.Style
	Spinner    lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the dark palette
func DefaultStyles() Styles {
	border := lipgloss.RoundedBorder()
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Pane:       lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		ActivePane: lipgloss.NewStyle().Border(border).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Item:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Heading:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Badge: map[string]lipgloss.Style{
			"beginner":     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			"intermediate": lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			"advanced":     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		},
		User:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Assistant: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Fault:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s Styles) badge(difficulty string) string {
	st, ok := s.Badge[difficulty]
	if !ok {
		st = s.Muted
	}
	return st.Render("[" + difficulty + "]")
}
