package config

// Notes:
// - LoadConfig: tests path vs name resolution, strict decoding, and
//   validation of enumerated values
// - Search-path behavior is exercised via t.Chdir into a temp directory

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Loading and Validation
// ---------------------------------------------------------------------------

func TestLoadConfig_FromPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, t.TempDir(), "conf.yaml", `
output:
  defaultDir: /tmp/out
page:
  size: a4
  orientation: landscape
  margin: 1.0
css:
  style: minimal
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Output.DefaultDir != "/tmp/out" {
		t.Errorf("defaultDir = %q", cfg.Output.DefaultDir)
	}
	if cfg.Page.Size != "a4" || cfg.Page.Orientation != "landscape" || cfg.Page.Margin != 1.0 {
		t.Errorf("page = %+v", cfg.Page)
	}
	if cfg.CSS.Style != "minimal" {
		t.Errorf("css.style = %q", cfg.CSS.Style)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	badYAML := writeConfig(t, dir, "bad.yaml", "page: [not a map")
	unknownKey := writeConfig(t, dir, "unknown.yaml", "page:\n  papersize: a4\n")
	badSize := writeConfig(t, dir, "size.yaml", "page:\n  size: tabloid\n")
	badOrientation := writeConfig(t, dir, "orient.yaml", "page:\n  orientation: diagonal\n")
	negMargin := writeConfig(t, dir, "margin.yaml", "page:\n  margin: -1\n")

	tests := []struct {
		name       string
		nameOrPath string
		wantErr    error
		wantMsg    string
	}{
		{
			name:       "empty name",
			nameOrPath: "",
			wantErr:    ErrEmptyConfigName,
		},
		{
			name:       "missing file path",
			nameOrPath: filepath.Join(dir, "missing.yaml"),
			wantErr:    ErrConfigNotFound,
		},
		{
			name:       "invalid YAML",
			nameOrPath: badYAML,
			wantErr:    ErrConfigParse,
		},
		{
			name:       "unknown key rejected",
			nameOrPath: unknownKey,
			wantErr:    ErrConfigParse,
		},
		{
			name:       "invalid page size",
			nameOrPath: badSize,
			wantMsg:    "page.size",
		},
		{
			name:       "invalid orientation",
			nameOrPath: badOrientation,
			wantMsg:    "page.orientation",
		},
		{
			name:       "negative margin",
			nameOrPath: negMargin,
			wantMsg:    "page.margin",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadConfig(tt.nameOrPath)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadConfig_ByName(t *testing.T) {
	// Not parallel: changes working directory.
	dir := t.TempDir()
	writeConfig(t, dir, "myconf.yml", "page:\n  size: letter\n")
	chdir(t, dir)

	cfg, err := LoadConfig("myconf")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Page.Size != "letter" {
		t.Errorf("page.size = %q", cfg.Page.Size)
	}
}

func TestLoadConfig_NameNotFoundListsTriedPaths(t *testing.T) {
	// Not parallel: changes working directory.
	chdir(t, t.TempDir())

	_, err := LoadConfig("nosuchconfig")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "nosuchconfig.yaml") {
		t.Errorf("error should list tried paths, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Defaults
// ---------------------------------------------------------------------------

func TestDefaultConfig_Validates(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate_CaseInsensitive(t *testing.T) {
	t.Parallel()

	cfg := &Config{Page: PageConfig{Size: "A4", Orientation: "Landscape"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil for mixed case", err)
	}
}
