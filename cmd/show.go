package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/roadmap"
	"github.com/spf13/cobra"
)

var showRaw bool

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <stage>",
	Short: "Show the details of a stage",
	Long: `Display a stage's description, resources and sample project.

<stage> is the stage ID or the beginning of its title.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return fmt.Errorf("failed to load roadmap: %w", err)
		}
		stage, err := cat.Resolve(args[0])
		if err != nil {
			return err
		}
		return printMarkdown(cmd.OutOrStdout(), stageMarkdown(stage), showRaw)
	},
}

// stageMarkdown renders a stage as a Markdown document
func stageMarkdown(s roadmap.Stage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d. %s\n\n", s.ID, s.Title)
	fmt.Fprintf(&b, "**Level:** %s\n\n", s.Difficulty)
	b.WriteString(s.Description + "\n\n")
	if s.Hint != "" {
		fmt.Fprintf(&b, "> 💡 %s\n\n", s.Hint)
	}
	if len(s.Resources) > 0 {
		b.WriteString("## Resources\n\n")
		for _, r := range s.Resources {
			if r.URL != "" && r.URL != "#" {
				fmt.Fprintf(&b, "- *%s*: [%s](%s)\n", r.Type, r.Title, r.URL)
			} else {
				fmt.Fprintf(&b, "- *%s*: %s\n", r.Type, r.Title)
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("## Sample project\n\n")
	b.WriteString(s.Project + "\n")
	return b.String()
}

// printMarkdown renders md with glamour on a terminal and prints it raw otherwise
func printMarkdown(out io.Writer, md string, raw bool) error {
	if raw || !internal.IsTerminal() {
		_, err := io.WriteString(out, md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		internal.LogDebug("Markdown renderer unavailable: %v", err)
		_, err = io.WriteString(out, md)
		return err
	}
	rendered, err := r.Render(md)
	if err != nil {
		_, err = io.WriteString(out, md)
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print Markdown without terminal rendering")
}
