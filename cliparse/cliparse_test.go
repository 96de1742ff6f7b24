// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "DATABASE_TYPE", "LOG_LEVEL", "IMPORT_SOURCE", "BRIDGE_CONFIG"} {
		t.Setenv(key, "")
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := ParseFlags([]string{"list"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected env database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := ParseFlags([]string{"-d", "file:test.db", "-t", "sqlite", "import", "club.pbn"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("CLI should override env: expected file:test.db, got %q", cfg.DatabaseURL)
	}
	if cfg.Command != CmdImport {
		t.Errorf("expected import command, got %q", cfg.Command)
	}
	if len(cfg.Args) != 1 || cfg.Args[0] != "club.pbn" {
		t.Errorf("unexpected args %v", cfg.Args)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{"parse", "club.pbn"})
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "PBN Upload", cfg.Source)
	assert.Empty(t, cfg.DatabaseURL, "parse runs without a database")
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bridge.yaml")
	err := os.WriteFile(path, []byte("database_url: file:club.db\nlog_level: warn\nsource: Club Archive\n"), 0o644)
	require.NoError(t, err)

	t.Setenv("LOG_LEVEL", "error")

	cfg, err := ParseFlags([]string{"-config", path, "stats"})
	require.NoError(t, err)

	assert.Equal(t, "file:club.db", cfg.DatabaseURL)
	assert.Equal(t, "error", cfg.LogLevel, "env beats the config file")
	assert.Equal(t, "Club Archive", cfg.Source)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: []string{"-d", "file:x.db"}},
		{name: "unknown command", args: []string{"-d", "file:x.db", "serve"}},
		{name: "missing file", args: []string{"-d", "file:x.db", "import"}},
		{name: "too many args", args: []string{"-d", "file:x.db", "export", "id", "out.pbn", "extra"}},
		{name: "no database", args: []string{"list"}},
		{name: "bad database type", args: []string{"-d", "x", "-t", "mysql", "list"}},
		{name: "bad log level", args: []string{"-d", "x", "-log-level", "loud", "list"}},
		{name: "missing config file", args: []string{"-config", "/nonexistent/bridge.yaml", "parse", "x.pbn"}},
		{name: "unknown flag", args: []string{"-z", "list"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
