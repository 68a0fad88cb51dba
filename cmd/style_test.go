package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"termselect/internal/config"
	"termselect/models"
)

func TestRunStyle(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "style.yaml")

	styleBase = ""
	if err := runStyle(styleCmd, []string{out}); err != nil {
		t.Fatalf("runStyle() error = %v", err)
	}
	got, err := config.LoadStyle(out, models.Style{})
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if got != models.DefaultStyle() {
		t.Errorf("written style = %+v, want defaults", got)
	}
}

func TestRunStyle_From(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "partial.yaml")
	out := filepath.Join(dir, "full.yaml")
	if err := os.WriteFile(base, []byte("highlight_fg: \"5\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	styleBase = base
	defer func() { styleBase = "" }()
	if err := runStyle(styleCmd, []string{out}); err != nil {
		t.Fatalf("runStyle() error = %v", err)
	}

	got, err := config.LoadStyle(out, models.Style{})
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	want := models.DefaultStyle()
	want.HighlightFg = "5"
	if got != want {
		t.Errorf("written style = %+v, want %+v", got, want)
	}
}
