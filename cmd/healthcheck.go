package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdgqassim/robo-roadmap/internal/controller"
	"github.com/gdgqassim/robo-roadmap/internal/gemini"
	"github.com/spf13/cobra"
)

var (
	healthcheckPing bool
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check configuration, catalog and generation backend",
	Long: `Check the health of robo by verifying:
  • Configuration sources
  • API key presence
  • Roadmap catalog loading
  • Generation backend construction
  • With --ping, one real generation request

This command is useful for debugging setup issues, especially in CI/CD environments.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHealthcheck(cmd.Context(), cmd.OutOrStdout(), verbose, healthcheckPing)
	},
}

func runHealthcheck(ctx context.Context, out io.Writer, detailed, ping bool) error {
	fmt.Fprintln(out, sectionStyle.Render("🔍 Robo Health Check"))
	fmt.Fprintln(out)

	// Step 1: configuration
	fmt.Fprintln(out, infoStyle.Render("Step 1: Loading configuration..."))
	fmt.Fprintln(out, successStyle.Render("✅ Configuration valid"))
	if detailed {
		shown := cfg.Redacted()
		file := shown.File
		if file == "" {
			file = "(none)"
		}
		fmt.Fprintf(out, "   Config file: %s\n", file)
		fmt.Fprintf(out, "   Backend: %s\n", shown.Backend)
		fmt.Fprintf(out, "   Model: %s\n", shown.Model)
		fmt.Fprintf(out, "   Base URL: %s\n", shown.BaseURL)
		fmt.Fprintf(out, "   Language: %s\n", shown.Language)
		if shown.Timeout > 0 {
			fmt.Fprintf(out, "   Timeout: %s\n", shown.Timeout)
		}
	}
	fmt.Fprintln(out)

	// Step 2: credential
	fmt.Fprintln(out, infoStyle.Render("Step 2: Checking API key..."))
	hasKey := cfg.HasAPIKey()
	if hasKey {
		fmt.Fprintln(out, successStyle.Render("✅ API key configured"))
		if detailed {
			fmt.Fprintf(out, "   Key: %s\n", cfg.Redacted().APIKey)
		}
	} else {
		fmt.Fprintln(out, warningStyle.Render("⚠️  No API key configured"))
		fmt.Fprintln(out, "   Set ROBO_API_KEY or GEMINI_API_KEY, or api_key in the config file.")
		fmt.Fprintln(out, "   Ideas and chat replies will show [service unavailable].")
	}
	fmt.Fprintln(out)

	// Step 3: catalog
	fmt.Fprintln(out, infoStyle.Render("Step 3: Loading roadmap catalog..."))
	cat, err := loadCatalog()
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render("❌ Failed to load catalog:"), err)
		return fmt.Errorf("health check failed: %w", err)
	}
	fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Found %d stage(s)", cat.Len())))
	if detailed {
		fmt.Fprintf(out, "   Source: %s\n", cat.Source())
	}
	fmt.Fprintln(out)

	// Step 4: backend
	fmt.Fprintln(out, infoStyle.Render("Step 4: Creating generation backend..."))
	client, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		fmt.Fprintln(out, errorStyle.Render("❌ Failed to create backend:"), err)
		return fmt.Errorf("health check failed: %w", err)
	}
	if client.Available() {
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Backend %s ready", client.BackendName())))
	} else {
		fmt.Fprintln(out, warningStyle.Render("⚠️  Backend disabled without an API key"))
	}
	fmt.Fprintln(out)

	// Step 5: optional round trip
	if ping {
		fmt.Fprintln(out, infoStyle.Render("Step 5: Sending a test request..."))
		ctrl := controller.New(cat, client, cfg.Language)
		ctrl.SetInput("Reply with one short sentence to confirm you are online.")
		res, _ := ctrl.Send(ctx)
		if res.Failed() {
			fmt.Fprintln(out, errorStyle.Render("❌ "+res.Display()))
			return fmt.Errorf("health check failed: %s", res.Kind)
		}
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Service answered (%s)", res.Kind)))
		fmt.Fprintln(out)
	}

	// Summary
	fmt.Fprintln(out, sectionStyle.Render("📊 Summary"))
	fmt.Fprintln(out)
	if hasKey {
		fmt.Fprintln(out, successStyle.Render("✅ Health check passed!"))
	} else {
		fmt.Fprintln(out, warningStyle.Render("⚠️  Roadmap available, generation disabled"))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckPing, "ping", false, "Send one real generation request")
}
