package internal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestShowProgress(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		message string
		fn      func() error
		wantErr bool
	}{
		{
			name:    "successful function",
			message: "Generating idea",
			fn: func() error {
				return nil
			},
			wantErr: false,
		},
		{
			name:    "function with error",
			message: "Generating idea",
			fn: func() error {
				return errors.New("test error")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ShowProgress(ctx, tt.message, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("ShowProgress() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShowProgressSpinner(t *testing.T) {
	var buf bytes.Buffer
	err := showProgressSpinner(context.Background(), &buf, "Asking Robo", func() error {
		time.Sleep(250 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("showProgressSpinner() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Asking Robo") {
		t.Errorf("output should contain message, got %q", out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("output should end with success mark, got %q", out)
	}
}

func TestShowProgressSpinner_Error(t *testing.T) {
	var buf bytes.Buffer
	want := errors.New("boom")
	err := showProgressSpinner(context.Background(), &buf, "Asking Robo", func() error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("showProgressSpinner() error = %v, want %v", err, want)
	}
	if !strings.Contains(buf.String(), "✗") {
		t.Errorf("output should contain failure mark, got %q", buf.String())
	}
}

func TestShowProgressSpinner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	release := make(chan struct{})
	defer close(release)

	var buf bytes.Buffer
	err := showProgressSpinner(ctx, &buf, "Waiting", func() error {
		<-release
		return nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("showProgressSpinner() error = %v, want deadline exceeded", err)
	}
}

func TestShowProgressSpinner_CancelWaitsForFn(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	started := make(chan struct{})

	var result string
	go func() {
		<-started
		cancel()
	}()
	err := showProgressSpinner(ctx, &buf, "Asking Robo", func() error {
		close(started)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		result = "finished"
		return ctx.Err()
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("showProgressSpinner() error = %v, want context.Canceled", err)
	}
	if result != "finished" {
		t.Errorf("fn still running after return, result = %q", result)
	}
	if !strings.Contains(buf.String(), "✗") {
		t.Errorf("output should contain failure mark, got %q", buf.String())
	}
}
