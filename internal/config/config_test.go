package config

import (
	"os"
	"path/filepath"
	"testing"

	"devapi/internal/domain"
)

// TestLoadDefaults verifies the built-in defaults with no inputs at all
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", "", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIName != domain.DefaultAPIName {
		t.Errorf("Expected name %q, got %q", domain.DefaultAPIName, cfg.APIName)
	}
	if cfg.Host != "127.0.0.1" {
		t.Errorf("Expected loopback host, got %q", cfg.Host)
	}
	if cfg.Port != 8000 {
		t.Errorf("Expected default port 8000, got %d", cfg.Port)
	}
}

// TestLoadConfigFile verifies that a YAML config file is loaded correctly
func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  host: "0.0.0.0"
  port: 9100

api:
  name: "Demo API"

dataset:
  override_path: "/tmp/samples.json"
`

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath, "", nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected host '0.0.0.0', got %q", cfg.Host)
	}
	if cfg.Port != 9100 {
		t.Errorf("Expected port 9100, got %d", cfg.Port)
	}
	if cfg.APIName != "Demo API" {
		t.Errorf("Expected name 'Demo API', got %q", cfg.APIName)
	}
	if cfg.DatasetPath != "/tmp/samples.json" {
		t.Errorf("Dataset override path not loaded, got %q", cfg.DatasetPath)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "", nil); err == nil {
		t.Errorf("Expected error for missing explicit config file")
	}
}

// TestLoadPortArgument verifies the positional port argument semantics
func TestLoadPortArgument(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"valid port", []string{"9001"}, 9001},
		{"non-numeric falls back", []string{"banana"}, 8000},
		{"zero falls back", []string{"0"}, 8000},
		{"negative falls back", []string{"-5"}, 8000},
		{"too large falls back", []string{"70000"}, 8000},
		{"max port", []string{"65535"}, 65535},
		{"no argument", nil, 8000},
	}

	for _, tc := range tests {
		cfg, err := Load("", "", tc.args)
		if err != nil {
			t.Fatalf("%s: Load failed: %v", tc.name, err)
		}
		if cfg.Port != tc.want {
			t.Errorf("%s: expected port %d, got %d", tc.name, tc.want, cfg.Port)
		}
	}
}

// TestLoadEnvironment verifies env overrides and their precedence
func TestLoadEnvironment(t *testing.T) {
	t.Setenv("API_NAME", "Env API")
	t.Setenv("API_PORT", "9200")
	t.Setenv("DISABLE_NUMERIC", "1")

	cfg, err := Load("", "", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.APIName != "Env API" {
		t.Errorf("Expected env name to win, got %q", cfg.APIName)
	}
	if cfg.Port != 9200 {
		t.Errorf("Expected env port 9200, got %d", cfg.Port)
	}
	if !cfg.DisableNumeric {
		t.Errorf("Expected DISABLE_NUMERIC to be honored")
	}
	if cfg.DisableRecords {
		t.Errorf("DISABLE_RECORDS should default to false")
	}

	// Positional argument outranks the environment.
	cfg, err = Load("", "", []string{"9300"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9300 {
		t.Errorf("Expected positional port to win, got %d", cfg.Port)
	}

	// A bad positional argument falls back to the environment value.
	cfg, err = Load("", "", []string{"not-a-port"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 9200 {
		t.Errorf("Expected fallback to env port 9200, got %d", cfg.Port)
	}
}

func TestLoadHostFlag(t *testing.T) {
	cfg, err := Load("", "0.0.0.0", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Errorf("Expected -host flag to win, got %q", cfg.Host)
	}
}
