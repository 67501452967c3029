package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Report.Output != "personality_chakra_report.pdf" {
		t.Errorf("default output = %q", cfg.Report.Output)
	}
	if cfg.Report.Format != "pdf" {
		t.Errorf("default format = %q, want pdf", cfg.Report.Format)
	}
	if cfg.Service.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Service.Port)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string // empty: don't create a file
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "non-existent file returns defaults",
			yaml: "",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Report.Format != "pdf" {
					t.Errorf("format = %q, want default pdf", cfg.Report.Format)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
report:
  items_file: custom-items.yaml
  format: json
service:
  port: "9090"
  api_key: hunter2
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Report.ItemsFile != "custom-items.yaml" {
					t.Errorf("items_file = %q", cfg.Report.ItemsFile)
				}
				if cfg.Report.Format != "json" {
					t.Errorf("format = %q, want json", cfg.Report.Format)
				}
				if cfg.Report.Output != "personality_chakra_report.pdf" {
					t.Errorf("output = %q, want untouched default", cfg.Report.Output)
				}
				if cfg.Service.Port != "9090" || cfg.Service.APIKey != "hunter2" {
					t.Errorf("service = %+v", cfg.Service)
				}
			},
		},
		{
			name:    "malformed YAML fails",
			yaml:    "report: [not a mapping",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if tt.yaml != "" {
				if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
					t.Fatalf("writing fixture: %v", err)
				}
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfgDir := filepath.Join(root, ".chakrascan")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfgPath := filepath.Join(cfgDir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("report: {}\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if got := FindConfigFile(nested); got != cfgPath {
		t.Errorf("FindConfigFile = %q, want %q", got, cfgPath)
	}
	if got := FindConfigFile(filepath.Join(os.TempDir(), "definitely-nowhere")); got != "" {
		t.Errorf("FindConfigFile in empty tree = %q, want empty", got)
	}
}
