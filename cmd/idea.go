package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/gemini"
	"github.com/spf13/cobra"
)

var ideaCmd = &cobra.Command{
	Use:   "idea <stage>",
	Short: "Generate a project idea for a stage",
	Long: `Ask the assistant for one short project idea that fits a roadmap stage.

<stage> is the stage ID or the beginning of its title. The idea is written in
the configured language (--language). The command exits with status 1 when the
service reports an error or cannot be reached.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctrl, _, err := newController(ctx)
		if err != nil {
			return err
		}
		stage, err := ctrl.Catalog().Resolve(args[0])
		if err != nil {
			return err
		}
		if err := ctrl.Select(stage.ID); err != nil {
			return err
		}

		var res gemini.Result
		msg := fmt.Sprintf("Generating a project idea for %q", stage.Title)
		progErr := internal.ShowProgress(ctx, msg, func() error {
			res, _ = ctrl.GenerateIdea(ctx)
			return faultError(res)
		})
		if progErr != nil && res.Kind == gemini.KindUnset {
			return progErr
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("💡 Project idea: %s", stage.Title)))
		fmt.Fprintln(out)
		if res.Failed() {
			fmt.Fprintln(out, errorStyle.Render(res.Display()))
			return interruptedOr(ctx, res)
		}
		return printMarkdown(out, res.Display()+"\n", false)
	},
}

func init() {
	rootCmd.AddCommand(ideaCmd)
}
