package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/gdgqassim/robo-roadmap/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isolate hides the developer's config and credentials from the command under test
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"ROBO_API_KEY", "GEMINI_API_KEY", "ROBO_BASE_URL", "ROBO_MODEL", "ROBO_BACKEND", "ROBO_LANGUAGE", "ROBO_CATALOG", "ROBO_TIMEOUT"} {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

// withFakeService points the commands at a fake generation server with a key
func withFakeService(t *testing.T, fake *testutil.FakeGemini) {
	t.Helper()
	t.Setenv("ROBO_API_KEY", "test-key")
	t.Setenv("ROBO_BASE_URL", fake.URL)
}

// resetFlags restores every flag so state does not leak between Execute calls
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}
