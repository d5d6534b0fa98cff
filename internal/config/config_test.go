package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"seqpost-core/cds"
)

func flags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(KeyLogLevel, "info", "")
	fs.String(KeyCountTemplate, "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return fs
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestDefaults(t *testing.T) {
	s, err := Load("", flags(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LogLevel != "info" || s.CountTemplate != cds.DefaultCountTemplate || s.ConfigFile != "" {
		t.Fatalf("unexpected defaults %+v", s)
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	fn := writeConfig(t, "seqpost.yaml", "log-level: debug\ncount-template: \"{{.Count}} coding sequences\"\n")
	s, err := Load(fn, flags(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LogLevel != "debug" || s.CountTemplate != "{{.Count}} coding sequences" {
		t.Fatalf("file values not applied: %+v", s)
	}
	if s.ConfigFile != fn {
		t.Errorf("ConfigFile = %q, want %q", s.ConfigFile, fn)
	}
}

func TestFlagsOverrideFile(t *testing.T) {
	fn := writeConfig(t, "seqpost.json", `{"log-level": "debug"}`)
	s, err := Load(fn, flags(t, "--log-level", "error"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.LogLevel != "error" {
		t.Fatalf("flag should win, got %q", s.LogLevel)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml"), nil); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
