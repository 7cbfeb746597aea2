package services

import (
	"strings"
	"testing"

	"github.com/kaanb/courseboard/internal/app/models"
)

func TestProjectRosterCSVEmpty(t *testing.T) {
	if got := ProjectRosterCSV(nil); got != "" {
		t.Errorf("empty roster = %q, want empty string", got)
	}
	if got := ProjectRosterCSV([]*models.User{}); got != "" {
		t.Errorf("empty roster = %q, want empty string", got)
	}
}

func TestProjectRosterCSVLineCount(t *testing.T) {
	students := []*models.User{
		{ID: 1, Name: "Ada Lovelace", Email: "ada@example.edu"},
		{ID: 2, Name: "Alan Turing", Email: "alan@example.edu"},
		{ID: 3, Name: "Grace Hopper", Email: "grace@example.edu"},
	}

	out := ProjectRosterCSV(students)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != len(students)+1 {
		t.Fatalf("got %d lines, want %d (header plus one per student)", len(lines), len(students)+1)
	}
	if lines[0] != `"id","name","email"` {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != `"1","Ada Lovelace","ada@example.edu"` {
		t.Errorf("first row = %q", lines[1])
	}
}

func TestProjectRosterCSVEscaping(t *testing.T) {
	students := []*models.User{
		{ID: 7, Name: `Bobby "Tables", Jr.`, Email: "bobby@example.edu"},
	}

	out := ProjectRosterCSV(students)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	// Embedded quotes are backslash-escaped and the whole value stays one
	// field, so the comma inside the name cannot split the row.
	want := `"7","Bobby \"Tables\", Jr.","bobby@example.edu"`
	if lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestProjectRosterCSVEveryValueQuoted(t *testing.T) {
	out := ProjectRosterCSV([]*models.User{{ID: 12, Name: "N", Email: "n@e"}})
	row := strings.Split(strings.TrimSuffix(out, "\n"), "\n")[1]
	for _, field := range strings.Split(row, ",") {
		if !strings.HasPrefix(field, `"`) || !strings.HasSuffix(field, `"`) {
			t.Errorf("field %q is not quoted", field)
		}
	}
}
