package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gdgqassim/robo-roadmap/testutil"
)

func TestIdeaCommand(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondText("Build a line-following robot with two IR sensors."))
	withFakeService(t, fake)

	out, err := executeCommand(t, "--language", "Arabic", "idea", "4")
	if err != nil {
		t.Fatalf("idea error = %v", err)
	}
	if !strings.Contains(out, "line-following robot") {
		t.Errorf("output missing idea:\n%s", out)
	}

	reqs := fake.Requests()
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	var body struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
		SystemInstruction json.RawMessage `json:"systemInstruction"`
	}
	testutil.JSONUnmarshal(t, reqs[0].Body, &body)
	prompt := body.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Motors and Sensors") || !strings.Contains(prompt, "Arabic") {
		t.Errorf("prompt = %q", prompt)
	}
	if body.SystemInstruction != nil {
		t.Error("idea requests carry no system instruction")
	}
}

func TestIdeaCommand_ServerFault(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondError(http.StatusForbidden, "permission denied"))
	withFakeService(t, fake)

	out, err := executeCommand(t, "idea", "1")
	if err == nil {
		t.Fatal("expected error on server fault")
	}
	if !strings.Contains(out, "[server error]: permission denied") {
		t.Errorf("output missing fault:\n%s", out)
	}
}

func TestIdeaCommand_NoKey(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondText("never"))
	t.Setenv("ROBO_BASE_URL", fake.URL)

	out, err := executeCommand(t, "idea", "1")
	if err == nil {
		t.Fatal("expected error without key")
	}
	if !strings.Contains(out, "[service unavailable]") {
		t.Errorf("output missing unavailable marker:\n%s", out)
	}
	if fake.Count() != 0 {
		t.Error("no request without a key")
	}
}

func TestIdeaCommand_UnknownStage(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, "idea", "lasers"); err == nil {
		t.Error("expected error for unknown stage")
	}
}

func TestIdeaCommand_Interrupted(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondText("too late"))
	withFakeService(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ideaCmd.SetContext(ctx)
	t.Cleanup(func() { ideaCmd.SetContext(context.Background()) })

	out, err := executeCommand(t, "idea", "2")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("idea error = %v, want context.Canceled", err)
	}
	if !strings.Contains(out, "[network error]") {
		t.Errorf("output missing fault:\n%s", out)
	}
	if strings.Contains(out, "too late") {
		t.Errorf("interrupted idea printed an answer:\n%s", out)
	}
}
