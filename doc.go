// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Command bridge-boards imports bridge tournament hand records from PBN
(Portable Bridge Notation) files into the club database and exports them back.

# Running

The database comes from environment variables, a .env file, a YAML config
file or CLI flags:

	DATABASE_URL=file:bridge.db go run . import tuesday.pbn

Or with flags:

	go run . -t postgres -d "postgres://..." list

# Commands

	parse  <file.pbn>               decode a file and print what would be stored
	import <file.pbn>               store the tournament and its boards
	export <tournament-id> [out]    write a stored tournament as PBN
	list                            list stored tournaments, newest first
	stats                           tournament and board totals
	delete <tournament-id>          remove a tournament and its boards

Output is JSON on stdout (PBN for export); logs go to stderr.

# Import Rules

  - Event, Date and at least one board are required; Site defaults to "Unknown Venue"
  - boards with a bad Deal or Dealer tag are skipped and reported, the rest are stored
  - a tournament with the same name and date as a stored one is rejected
  - only .pbn files up to 5 MiB are read

# Architecture

  - pbn: PBN parsing, deal decoding, date conversion and serialization
  - importer: import/export flow, skip reporting, duplicate check
  - db: driver selection, schema creation, tournament store
  - models: JSON output types
  - cliparse: configuration parsing
  - testutil: test database and fixtures

See package documentation for each component.
*/
package main
