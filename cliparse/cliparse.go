package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Commands understood by the CLI
const (
	CmdParse  = "parse"
	CmdImport = "import"
	CmdExport = "export"
	CmdList   = "list"
	CmdStats  = "stats"
	CmdDelete = "delete"
)

var commandArgs = map[string][2]int{
	CmdParse:  {1, 1},
	CmdImport: {1, 1},
	CmdExport: {1, 2},
	CmdList:   {0, 0},
	CmdStats:  {0, 0},
	CmdDelete: {1, 1},
}

type Config struct {
	DatabaseURL  string `yaml:"database_url"`
	DatabaseType string `yaml:"database_type"`
	LogLevel     string `yaml:"log_level"`
	Source       string `yaml:"source"`
	ConfigFile   string `yaml:"-"`

	Command string   `yaml:"-"`
	Args    []string `yaml:"-"`
}

// ParseFlags reads flags, then fills anything unset from the environment,
// then from the YAML config file, then from defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("bridge-boards", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Source, "source", "", "Source label stored with imported tournaments")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	fromEnv(&cfg.DatabaseURL, "DATABASE_URL")
	fromEnv(&cfg.DatabaseType, "DATABASE_TYPE")
	fromEnv(&cfg.LogLevel, "LOG_LEVEL")
	fromEnv(&cfg.Source, "IMPORT_SOURCE")
	fromEnv(&cfg.ConfigFile, "BRIDGE_CONFIG")

	if cfg.ConfigFile != "" {
		file, err := loadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		fill(&cfg.DatabaseURL, file.DatabaseURL)
		fill(&cfg.DatabaseType, file.DatabaseType)
		fill(&cfg.LogLevel, file.LogLevel)
		fill(&cfg.Source, file.Source)
	}

	fill(&cfg.DatabaseType, "sqlite")
	fill(&cfg.LogLevel, "info")
	fill(&cfg.Source, "PBN Upload")

	// Positional arguments: <command> [args...]
	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, errors.New("command required (parse, import, export, list, stats, delete)")
	}
	cfg.Command, cfg.Args = rest[0], rest[1:]

	bounds, ok := commandArgs[cfg.Command]
	if !ok {
		return Config{}, fmt.Errorf("unknown command %q", cfg.Command)
	}
	if len(cfg.Args) < bounds[0] || len(cfg.Args) > bounds[1] {
		return Config{}, fmt.Errorf("%s: wrong number of arguments", cfg.Command)
	}

	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("invalid database type %q (use sqlite or postgres)", cfg.DatabaseType)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}

	// parse never touches the database
	if cfg.DatabaseURL == "" && cfg.Command != CmdParse {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	return cfg, nil
}

func fromEnv(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
