package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var (
	chatExport  string
	chatFormat  string
	chatLogFile string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive roadmap and chat screen",
	Long: `Open the full-screen roadmap. Browse stages, generate project ideas and
chat with Robo.

Keys:
  ↑/↓ enter   move and open a stage
  g           generate a project idea for the open stage
  tab         switch between the roadmap and the chat
  esc         cancel a pending request, or go back
  ctrl+c      quit

Log output is discarded while the screen is open unless --log-file is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		ctrl, _, err := newController(ctx)
		if err != nil {
			return err
		}

		restore, err := redirectLogs(chatLogFile)
		if err != nil {
			return err
		}
		p := tea.NewProgram(tui.New(ctx, ctrl), tea.WithAltScreen(), tea.WithContext(ctx))
		_, runErr := p.Run()
		restore()
		if runErr != nil {
			return fmt.Errorf("chat screen failed: %w", runErr)
		}

		if chatExport != "" {
			return exportTranscript(ctrl, "chat", chatExport, chatFormat)
		}
		return nil
	},
}

// redirectLogs keeps log lines off the alternate screen
func redirectLogs(path string) (func(), error) {
	format := cfg.Log.Format
	if path == "" {
		internal.SetLogOutput(zapcore.AddSync(io.Discard), format)
		return func() { internal.SetLogOutput(zapcore.Lock(os.Stderr), format) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	internal.SetLogOutput(zapcore.AddSync(f), format)
	return func() {
		internal.SyncLogger()
		internal.SetLogOutput(zapcore.Lock(os.Stderr), format)
		_ = f.Close()
	}, nil
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&chatExport, "export", "o", "", "Write the transcript to this file on exit")
	chatCmd.Flags().StringVarP(&chatFormat, "format", "f", "", "Export format: md, json, jsonl, yaml, html")
	chatCmd.Flags().StringVar(&chatLogFile, "log-file", "", "Append log output to this file while the screen is open")
}
