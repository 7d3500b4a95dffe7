package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/controller"
	"github.com/gdgqassim/robo-roadmap/internal/gemini"
	"github.com/gdgqassim/robo-roadmap/internal/roadmap"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("🤖 Robotics Roadmap"),
		m.styles.Subtitle.Render("From zero to building smart robots, by the robotics section of GDG Qassim"),
	)

	listStyle, rightStyle := m.styles.ActivePane, m.styles.Pane
	if m.focus == focusChat {
		listStyle, rightStyle = m.styles.Pane, m.styles.ActivePane
	}
	bodyHeight := m.height - headerHeight - footerHeight - 2
	if bodyHeight < 5 {
		bodyHeight = 5
	}

	left := listStyle.Width(listWidth).Height(bodyHeight).Render(m.renderStages())
	var right string
	if m.focus == focusChat {
		right = rightStyle.Width(m.chatWidth()).Height(bodyHeight).Render(m.renderChat())
	} else {
		right = rightStyle.Width(m.chatWidth()).Height(bodyHeight).Render(m.renderDetail())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.renderHelp())
}

func (m Model) renderStages() string {
	var b strings.Builder
	b.WriteString(m.styles.Heading.Render("Stages"))
	b.WriteString("\n\n")
	selected, hasSelected := m.ctrl.Selected()
	for i, s := range m.ctrl.Catalog().Stages() {
		cursor := "  "
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("› ")
		}
		line := fmt.Sprintf("%d. %s", s.ID, s.Title)
		if hasSelected && s.ID == selected.ID {
			line = m.styles.Selected.Render(line)
		} else {
			line = m.styles.Item.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	return b.String()
}

func (m Model) renderDetail() string {
	stage, ok := m.ctrl.Selected()
	if !ok {
		return m.styles.Muted.Render("Select a stage with ↑/↓ and enter to see its details.")
	}
	width := m.chatWidth() - 4

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", m.styles.Heading.Render(stage.Title), m.styles.badge(stage.Difficulty))
	b.WriteString(lipgloss.NewStyle().Width(width).Render(stage.Description))
	b.WriteString("\n")
	if stage.Hint != "" {
		b.WriteString("\n" + m.styles.Muted.Width(width).Render("💡 "+stage.Hint) + "\n")
	}
	if len(stage.Resources) > 0 {
		b.WriteString("\n" + m.styles.Heading.Render("Resources") + "\n")
		for _, r := range stage.Resources {
			b.WriteString(formatResource(r) + "\n")
		}
	}
	b.WriteString("\n" + m.styles.Heading.Render("Sample project") + "\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(stage.Project) + "\n")

	b.WriteString("\n" + m.styles.Heading.Render("AI project idea") + "\n")
	b.WriteString(m.renderIdea(stage))
	return b.String()
}

func formatResource(r roadmap.Resource) string {
	line := fmt.Sprintf("• [%s] %s", r.Type, r.Title)
	if r.URL != "" && r.URL != "#" {
		line += " (" + r.URL + ")"
	}
	return line
}

func (m Model) renderIdea(stage roadmap.Stage) string {
	if pendingID, ok := m.ctrl.PendingIdea(); ok {
		if pendingID == stage.ID {
			return m.spinner.View() + " Generating an idea..."
		}
		return m.styles.Muted.Render(fmt.Sprintf("Waiting for the idea for stage %d to finish. Press esc to cancel it.", pendingID))
	}
	idea, ok := m.ctrl.Idea()
	if !ok {
		return m.styles.Muted.Render("Press g to generate a project idea for this stage.")
	}
	if idea.Failed() {
		return m.styles.Fault.Render(idea.Display())
	}
	if idea.Kind == gemini.KindFallback {
		return m.styles.Muted.Render(idea.Display())
	}
	return m.markdown(idea.Text)
}

func (m Model) renderChat() string {
	input := m.input.View()
	if !m.ctrl.InputEnabled() {
		input = m.spinner.View() + " " + controller.AssistantName + " is typing..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Heading.Render("Chat with "+controller.AssistantName),
		m.viewport.View(),
		input,
	)
}

func (m Model) renderTranscript() string {
	var b strings.Builder
	for _, msg := range m.ctrl.Messages() {
		switch {
		case msg.Actor == internal.ActorUser:
			b.WriteString(m.styles.User.Render("You") + "\n")
			b.WriteString(msg.Content + "\n\n")
		case msg.Fault != "":
			b.WriteString(m.styles.Assistant.Render(controller.AssistantName) + "\n")
			b.WriteString(m.styles.Fault.Render(msg.Content) + "\n\n")
		default:
			b.WriteString(m.styles.Assistant.Render(controller.AssistantName) + "\n")
			b.WriteString(m.markdown(msg.Content) + "\n")
		}
	}
	return b.String()
}

func (m Model) markdown(text string) string {
	if m.renderer == nil {
		return text + "\n"
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}
	return strings.TrimLeft(out, "\n")
}

func (m Model) renderHelp() string {
	var keys string
	_, ideaPending := m.ctrl.PendingIdea()
	chatPending := m.ctrl.ChatPhase() == controller.Pending
	switch {
	case m.focus == focusChat && chatPending, m.focus == focusStages && ideaPending:
		keys = "esc cancel request • tab switch pane • ctrl+c quit"
	case m.focus == focusChat:
		keys = "enter send • pgup/pgdown scroll • tab stages • esc back • ctrl+c quit"
	default:
		keys = "↑/↓ move • enter open • g project idea • tab chat • esc close • q quit"
	}
	return m.styles.Help.Render(keys)
}
