package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("DATA_BACKEND", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DataFile != "./data/transactions.json" {
		t.Errorf("Expected default data file, got %q", cfg.DataFile)
	}
	if cfg.DataBackend != "file" {
		t.Errorf("Expected default backend 'file', got %q", cfg.DataBackend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_BACKEND", "memory")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %q", cfg.Port)
	}
	if cfg.DataBackend != "memory" {
		t.Errorf("Expected backend 'memory', got %q", cfg.DataBackend)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid file backend", Config{Port: "8080", DataFile: "x.json", DataBackend: "file"}, false},
		{"valid memory backend", Config{Port: "8080", DataBackend: "memory"}, false},
		{"non-numeric port", Config{Port: "abc", DataFile: "x.json", DataBackend: "file"}, true},
		{"port out of range", Config{Port: "70000", DataFile: "x.json", DataBackend: "file"}, true},
		{"unknown backend", Config{Port: "8080", DataBackend: "postgres"}, true},
		{"file backend without path", Config{Port: "8080", DataBackend: "file"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("Expected an error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}
