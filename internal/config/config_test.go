package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("LAYERKIT_HOME", home)
	Reset()
	t.Cleanup(Reset)
	return home
}

func TestDirHonorsEnv(t *testing.T) {
	home := setupHome(t)
	if got := Dir(); got != home {
		t.Errorf("Dir() = %q, want %q", got, home)
	}
	if got := FilePath(); got != filepath.Join(home, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestResolveDefaults(t *testing.T) {
	setupHome(t)
	Load()

	s := Resolve()
	if s.BaseDir != "" || s.CreateFiles || s.LayoutFile != "" {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want %q", s.LogFormat, "console")
	}
}

func TestSetWritesFileAndReloads(t *testing.T) {
	home := setupHome(t)
	Load()

	if err := Set(KeyBaseDir, "/tmp/project"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := Set(KeyCreateFiles, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "base_dir: /tmp/project") {
		t.Errorf("config file missing base_dir:\n%s", data)
	}

	Reset()
	Load()
	s := Resolve()
	if s.BaseDir != "/tmp/project" {
		t.Errorf("BaseDir = %q, want %q", s.BaseDir, "/tmp/project")
	}
	if !s.CreateFiles {
		t.Error("CreateFiles = false, want true")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	setupHome(t)
	Load()
	if err := Set(KeyLogFormat, "text"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	t.Setenv("LAYERKIT_LOG_FORMAT", "json")
	Reset()
	Load()
	if got := Get(KeyLogFormat); got != "json" {
		t.Errorf("Get(%q) = %q, want %q", KeyLogFormat, got, "json")
	}
}

func TestBindFlagsPrecedence(t *testing.T) {
	setupHome(t)
	t.Setenv("LAYERKIT_BASE_DIR", "from-env")
	Load()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("base-dir", "", "")
	fs.Bool("files", false, "")
	fs.String("unrelated", "", "")
	if err := BindFlags(fs); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if got := Resolve().BaseDir; got != "from-env" {
		t.Errorf("BaseDir before flag = %q, want %q", got, "from-env")
	}

	if err := fs.Parse([]string{"--base-dir", "from-flag", "--files"}); err != nil {
		t.Fatal(err)
	}
	s := Resolve()
	if s.BaseDir != "from-flag" {
		t.Errorf("BaseDir = %q, want %q", s.BaseDir, "from-flag")
	}
	if !s.CreateFiles {
		t.Error("CreateFiles = false, want true")
	}
}

func TestIsKnownKey(t *testing.T) {
	if !IsKnownKey(KeyLayout) {
		t.Errorf("IsKnownKey(%q) = false", KeyLayout)
	}
	if IsKnownKey("mirror_url") {
		t.Error("IsKnownKey(\"mirror_url\") = true")
	}
}
