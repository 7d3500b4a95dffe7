package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdgqassim/robo-roadmap/internal"
	"github.com/gdgqassim/robo-roadmap/testutil"
)

func TestAskCommand(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondText("Start with an Arduino Uno and a breadboard."))
	withFakeService(t, fake)

	out, err := executeCommand(t, "ask", "how", "do", "I", "start?")
	if err != nil {
		t.Fatalf("ask error = %v", err)
	}
	if !strings.Contains(out, "Arduino Uno") {
		t.Errorf("output missing reply:\n%s", out)
	}

	reqs := fake.Requests()
	if len(reqs) != 1 {
		t.Fatalf("got %d requests, want 1", len(reqs))
	}
	body := string(reqs[0].Body)
	if !strings.Contains(body, "how do I start?") || !strings.Contains(body, "systemInstruction") {
		t.Errorf("request body = %s", body)
	}
}

func TestAskCommand_Export(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondText("Use a servo."))
	withFakeService(t, fake)
	path := filepath.Join(t.TempDir(), "chat.json")

	if _, err := executeCommand(t, "ask", "--export", path, "what moves an arm?"); err != nil {
		t.Fatalf("ask error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	var session internal.Session
	testutil.JSONUnmarshal(t, data, &session)
	if session.Source != "ask" || len(session.Messages) != 3 {
		t.Fatalf("session = %+v", session)
	}
	wantActors := []string{internal.ActorAssistant, internal.ActorUser, internal.ActorAssistant}
	for i, want := range wantActors {
		if session.Messages[i].Actor != want {
			t.Errorf("message %d actor = %q, want %q", i, session.Messages[i].Actor, want)
		}
	}
	if session.Messages[2].Content != "Use a servo." {
		t.Errorf("reply = %q", session.Messages[2].Content)
	}
}

func TestAskCommand_TransportFault(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondText("unused"))
	withFakeService(t, fake)
	fake.Close()

	out, err := executeCommand(t, "ask", "hello")
	if err == nil {
		t.Fatal("expected error on transport fault")
	}
	if !strings.Contains(out, "[network error]") {
		t.Errorf("output missing fault:\n%s", out)
	}
}

func TestAskCommand_BlankMessage(t *testing.T) {
	isolate(t)
	if _, err := executeCommand(t, "ask", "   "); err == nil {
		t.Error("expected error for blank message")
	}
}

func TestAskCommand_Interrupted(t *testing.T) {
	isolate(t)
	fake := testutil.NewFakeGemini(t, testutil.RespondText("too late"))
	withFakeService(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	askCmd.SetContext(ctx)
	t.Cleanup(func() { askCmd.SetContext(context.Background()) })

	out, err := executeCommand(t, "ask", "hello")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("ask error = %v, want context.Canceled", err)
	}
	if !strings.Contains(out, "[network error]") {
		t.Errorf("output missing fault:\n%s", out)
	}
}
