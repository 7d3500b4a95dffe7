package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// HTMLExporter renders the transcript as a standalone page; message bodies
// are treated as Markdown
type HTMLExporter struct{}

var htmlPage = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 46rem; margin: 2rem auto; background: #0f172a; color: #e2e8f0; }
.msg { border-radius: 0.75rem; padding: 0.5rem 1rem; margin: 0.75rem 0; }
.user { background: #1e3a8a; }
.assistant { background: #1e293b; }
.fault { border: 1px solid #dc2626; }
.meta { color: #94a3b8; font-size: 0.8rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">{{.Source}}{{if .Model}} · {{.Model}}{{end}} · {{len .Messages}} messages</p>
{{range .Messages}}<div class="msg {{.Actor}}{{if .Fault}} fault{{end}}">
<p class="meta">{{.Label}}{{if .Timestamp}} · {{.Timestamp}}{{end}}</p>
{{.Body}}
</div>
{{end}}</body>
</html>
`))

type htmlMessage struct {
	Actor     string
	Label     string
	Timestamp string
	Fault     string
	Body      template.HTML
}

// Export implements Exporter
func (e *HTMLExporter) Export(session *internal.Session, w io.Writer) error {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)

	msgs := make([]htmlMessage, 0, len(session.Messages))
	for i, msg := range session.Messages {
		var buf bytes.Buffer
		if err := md.Convert([]byte(msg.Content), &buf); err != nil {
			return fmt.Errorf("failed to render message %d: %w", i, err)
		}
		msgs = append(msgs, htmlMessage{
			Actor:     msg.Actor,
			Label:     actorLabel(msg.Actor),
			Timestamp: msg.Timestamp,
			Fault:     msg.Fault,
			// goldmark drops raw HTML unless html.WithUnsafe is set
			Body: template.HTML(buf.String()),
		})
	}

	title := session.Metadata.Name
	if title == "" {
		title = "Chat " + session.ID
	}
	return htmlPage.Execute(w, struct {
		Title    string
		Source   string
		Model    string
		Messages []htmlMessage
	}{title, session.Source, session.Metadata.Model, msgs})
}

// Extension implements Exporter
func (e *HTMLExporter) Extension() string {
	return "html"
}
