package models

import (
	"time"

	"github.com/danielhkuo/bridge-boards/pbn"
)

// Tournament source constants
const (
	SourcePBNUpload = "PBN Upload"
)

// Response types

// SkippedBoard is a board left out of an import because it failed to decode.
type SkippedBoard struct {
	BoardNumber int    `json:"board_number"`
	Reason      string `json:"reason"`
}

type ImportedTournament struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Venue         string    `json:"venue"`
	Date          time.Time `json:"date"`
	BoardsCreated int       `json:"boards_created"`
	TotalBoards   int       `json:"total_boards"`
}

type ImportSummary struct {
	Message    string             `json:"message"`
	Tournament ImportedTournament `json:"tournament"`
	Skipped    []SkippedBoard     `json:"skipped"`
}

// ParseReport is the dry-run view of a file: what an import would store.
type ParseReport struct {
	Event         string         `json:"event"`
	Site          string         `json:"site"`
	Date          time.Time      `json:"date"`
	BoardsCreated int            `json:"boards_created"`
	TotalBoards   int            `json:"total_boards"`
	Boards        []pbn.Board    `json:"boards"`
	Skipped       []SkippedBoard `json:"skipped"`
}

type DeletedTournament struct {
	Name          string `json:"name"`
	BoardsDeleted int    `json:"boards_deleted"`
}

type DeleteResponse struct {
	Message string            `json:"message"`
	Deleted DeletedTournament `json:"deleted"`
}

// Domain types

type TournamentSummary struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Venue      string    `json:"venue"`
	Date       time.Time `json:"date"`
	Source     string    `json:"source"`
	BoardCount int       `json:"board_count"`
}

type Stats struct {
	TotalTournaments  int                 `json:"total_tournaments"`
	TotalBoards       int                 `json:"total_boards"`
	RecentTournaments []TournamentSummary `json:"recent_tournaments"`
}

// Error response

type ErrorResponse struct {
	Error              string             `json:"error"`
	Message            string             `json:"message,omitempty"`
	ExistingTournament *TournamentSummary `json:"existing_tournament,omitempty"`
}
