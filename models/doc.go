// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON output types of the bridge-boards commands.

# Response Types

  - ImportSummary: stored tournament plus boards_created / total_boards
  - ParseReport: dry-run result of a parse, including decoded boards
  - DeleteResponse: name and number of boards removed
  - ErrorResponse: error, message and the conflicting tournament if any

# Domain Types

  - TournamentSummary: stored tournament with its board count
  - SkippedBoard: board number and the reason it was not imported
  - Stats: totals and the most recently imported tournaments

# Constants

Default tournament source:

	SourcePBNUpload = "PBN Upload"
*/
package models
