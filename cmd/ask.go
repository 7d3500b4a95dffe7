package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/controller"
	"github.com/gdgqassim/robo-roadmap/internal/gemini"
	"github.com/spf13/cobra"
)

var (
	askExport string
	askFormat string
)

var askCmd = &cobra.Command{
	Use:   "ask <message...>",
	Short: "Ask Robo a single question",
	Long: `Send one chat message to Robo and print the reply.

Use --export to save the exchange (greeting, question and reply) to a file.
The format comes from --format or, when omitted, the file extension.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		if strings.TrimSpace(message) == "" {
			return fmt.Errorf("message must not be empty")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctrl, _, err := newController(ctx)
		if err != nil {
			return err
		}
		ctrl.SetInput(message)

		var res gemini.Result
		progErr := internal.ShowProgress(ctx, controller.AssistantName+" is typing", func() error {
			res, _ = ctrl.Send(ctx)
			return faultError(res)
		})
		if progErr != nil && res.Kind == gemini.KindUnset {
			return progErr
		}

		out := cmd.OutOrStdout()
		if res.Failed() {
			fmt.Fprintln(out, errorStyle.Render(res.Display()))
		} else if err := printMarkdown(out, res.Display()+"\n", false); err != nil {
			return err
		}

		if askExport != "" {
			if err := exportTranscript(ctrl, "ask", askExport, askFormat); err != nil {
				return err
			}
		}
		return interruptedOr(ctx, res)
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askExport, "export", "o", "", "Write the transcript to this file")
	askCmd.Flags().StringVarP(&askFormat, "format", "f", "", "Export format: md, json, jsonl, yaml, html")
}
