// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package importer moves tournaments between PBN files and the database.

# Importing

A Service is built from a Repository (normally *db.Store), the source label
stored with each tournament, and a logger:

	svc := importer.NewService(db.NewStore(conn), models.SourcePBNUpload, slog.Default())
	summary, err := svc.ImportFile(ctx, "tuesday.pbn")

An import either stores the tournament or stores nothing:

  - missing Event or Date, no boards, or a bad date: error wrapping pbn.ErrIncompleteTournament or pbn.ErrInvalidDateFormat
  - every board failed to decode: error wrapping pbn.ErrIncompleteTournament
  - same name and date already stored: *ConflictError (wraps ErrDuplicateTournament)

Boards whose Deal or Dealer tag cannot be decoded are skipped. Each one is
logged with its number and listed in ImportSummary.Skipped, and the summary
reports boards_created against total_boards.

ImportFile only accepts .pbn files up to MaxFileSize (5 MiB).

# Exporting

Export writes a stored tournament back to PBN:

	err := svc.Export(ctx, tournamentID, os.Stdout)

# Previewing

Preview parses text without touching storage and returns the decoded boards.
*/
package importer
