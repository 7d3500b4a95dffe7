package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/internal/config"
	"github.com/gdgqassim/robo-roadmap/internal/roadmap"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfgFile string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"

	// cfg is loaded once per invocation in PersistentPreRunE
	cfg config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "robo",
	Short: "Robotics learning roadmap with an AI assistant",
	Long: `Robo walks you through the GDG Qassim robotics roadmap, from electronics
fundamentals to AI and computer vision, and lets you ask a Gemini-backed
assistant for project ideas and help along the way.

Features:
  • Browse the roadmap stages with resources and sample projects
  • Generate a fresh project idea for any stage
  • Chat with Robo, the robotics assistant
  • Export a chat transcript (md, json, jsonl, yaml, html)

Quick Start:
  export GEMINI_API_KEY=...    # or ROBO_API_KEY
  robo stages                  # List the roadmap
  robo show 2                  # View a stage
  robo idea 4                  # Ask for a project idea
  robo chat                    # Open the interactive screen`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
		if err != nil {
			return err
		}
		cfg = loaded

		internal.SetLogLevel(internal.ParseLogLevel(cfg.Log.Level))
		if verbose {
			internal.SetVerbose(true)
		}
		if cfg.Log.Format == "json" {
			internal.SetLogOutput(zapcore.Lock(os.Stderr), "json")
		}
		if cfg.File != "" {
			internal.LogDebug("Using config file %s", cfg.File)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		internal.SyncLogger()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadCatalog loads the catalog named by the configuration
func loadCatalog() (*roadmap.Catalog, error) {
	cat, err := roadmap.Load(cfg.Catalog)
	if err != nil {
		return nil, err
	}
	internal.LogDebug("Catalog %s has %d stage(s)", cat.Source(), cat.Len())
	return cat, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.config/robo/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.String("catalog", "", "Roadmap catalog file (.yaml or .db); built-in roadmap when empty")
	flags.String("backend", config.DefaultBackend, "Generation backend: rest, genai or openai")
	flags.String("model", config.DefaultModel, "Model ID")
	flags.String("language", config.DefaultLanguage, "Language the assistant answers in")
	flags.String("base-url", config.DefaultBaseURL, "Generation service base URL")
	flags.Duration("timeout", time.Duration(0), "Per-request timeout (0 uses the transport default)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
