// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - DatabaseURL: SQLite file or PostgreSQL connection string (required except for parse)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - LogLevel: debug, info, warn or error (default: info)
  - Source: label stored with imported tournaments (default: PBN Upload)
  - Command, Args: the positional command and its arguments

# CLI Flags

	-d          Database URL
	-t          Database type
	-log-level  Log level
	-source     Import source label
	-config     YAML config file

# Environment Variables

Flags fall back to environment variables:

	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	LOG_LEVEL     → -log-level
	IMPORT_SOURCE → -source
	BRIDGE_CONFIG → -config

# Config File

Anything still unset is read from the YAML file named by -config:

	database_url: file:bridge.db
	database_type: sqlite
	log_level: info
	source: PBN Upload

CLI flags take precedence over environment variables, which take precedence
over the config file.

# Commands

	parse  <file.pbn>
	import <file.pbn>
	export <tournament-id> [out.pbn]
	list
	stats
	delete <tournament-id>

# Validation

ParseFlags returns an error if:

  - the command is missing, unknown or has the wrong number of arguments
  - the database URL is missing for any command but parse
  - the database type or log level is not one of the allowed values
*/
package cliparse
