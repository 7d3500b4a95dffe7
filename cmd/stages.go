package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdgqassim/robo-roadmap/internal/roadmap"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	difficultyStyles = map[string]lipgloss.Style{
		roadmap.DifficultyBeginner:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		roadmap.DifficultyIntermediate: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		roadmap.DifficultyAdvanced:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

var stagesCmd = &cobra.Command{
	Use:     "stages",
	Aliases: []string{"list", "ls"},
	Short:   "List the roadmap stages",
	Long:    `List every stage of the robotics roadmap in order.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return fmt.Errorf("failed to load roadmap: %w", err)
		}
		displayStages(cmd.OutOrStdout(), cat.Stages())
		return nil
	},
}

func renderDifficulty(d string) string {
	if st, ok := difficultyStyles[d]; ok {
		return st.Render(d)
	}
	return dimStyle.Render(d)
}

func displayStages(out io.Writer, stages []roadmap.Stage) {
	if len(stages) == 0 {
		fmt.Fprintln(out, headerStyle.Render("🗺  No stages found"))
		return
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("🗺  Robotics roadmap: %d stage(s)", len(stages))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Stage")+"\t"+titleStyle.Render("Level")+"\t"+titleStyle.Render("Resources")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, s := range stages {
		title := s.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			idStyle.Render(strconv.Itoa(s.ID)),
			title,
			renderDifficulty(s.Difficulty),
			countStyle.Render(strconv.Itoa(len(s.Resources))),
		)
	}
	_ = w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, idStyle.Render("💡 Tip: run ")+
		lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render(fmt.Sprintf("robo show %d", stages[0].ID))+
		idStyle.Render(" for details, or `robo idea <id>` for a project idea"))
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}
