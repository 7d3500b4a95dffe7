package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/gdgqassim/robo-roadmap/internal"
)

// MarkdownExporter exports sessions in Markdown format
type MarkdownExporter struct{}

// Export exports a session to Markdown format
func (e *MarkdownExporter) Export(session *internal.Session, w io.Writer) error {
	title := session.Metadata.Name
	if title == "" {
		title = "Chat " + session.ID
	}
	_, _ = fmt.Fprintf(w, "# %s\n\n", title)

	_, _ = fmt.Fprintf(w, "**Source:** %s  \n", session.Source)
	if session.Metadata.Model != "" {
		_, _ = fmt.Fprintf(w, "**Model:** %s  \n", session.Metadata.Model)
	}
	if session.Metadata.CreatedAt != "" {
		_, _ = fmt.Fprintf(w, "**Started:** %s  \n", session.Metadata.CreatedAt)
	}
	_, _ = fmt.Fprintf(w, "**Messages:** %d\n\n", len(session.Messages))
	_, _ = fmt.Fprintf(w, "---\n\n")

	for i, msg := range session.Messages {
		label := actorLabel(msg.Actor)
		if msg.Fault != "" {
			label += " (" + msg.Fault + ")"
		}
		timestamp := ""
		if msg.Timestamp != "" {
			timestamp = fmt.Sprintf(" _%s_", msg.Timestamp)
		}

		_, _ = fmt.Fprintf(w, "**%s:**%s\n\n%s\n\n", label, timestamp, escapeMarkdown(msg.Content))

		if i < len(session.Messages)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}
	return nil
}

func actorLabel(actor string) string {
	switch actor {
	case internal.ActorUser:
		return "You"
	case internal.ActorAssistant:
		return "Robo"
	default:
		return actor
	}
}

// escapeMarkdown escapes bold markers outside code blocks
func escapeMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))
	inCodeBlock := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "```"):
			inCodeBlock = !inCodeBlock
		case !inCodeBlock:
			line = strings.ReplaceAll(line, "**", "\\*\\*")
			line = strings.ReplaceAll(line, "__", "\\_\\_")
		}
		result = append(result, line)
	}
	return strings.Join(result, "\n")
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
