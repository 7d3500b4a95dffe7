package cmd

import (
	"strings"
	"testing"

	"github.com/gdgqassim/robo-roadmap/internal/roadmap"
)

func TestShowCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr bool
	}{
		{"by id", []string{"show", "2"}, []string{"# 2. Microcontrollers", "## Resources", "## Sample project", "> 💡"}, false},
		{"by title prefix", []string{"show", "motors"}, []string{"# 4. Motors and Sensors"}, false},
		{"without stage", []string{"show"}, nil, true},
		{"unknown stage", []string{"show", "99"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("show error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestStageMarkdown(t *testing.T) {
	md := stageMarkdown(roadmap.Stage{
		ID:          3,
		Title:       "Programming",
		Difficulty:  "intermediate",
		Description: "Code things",
		Project:     "Blink",
		Resources: []roadmap.Resource{
			{Type: "video", Title: "Linked", URL: "https://example.com"},
			{Type: "article", Title: "Placeholder", URL: "#"},
		},
	})
	for _, want := range []string{"# 3. Programming", "*video*: [Linked](https://example.com)", "*article*: Placeholder\n"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "💡") {
		t.Error("no hint line expected")
	}
}
