// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/bridge-boards/models"
	"github.com/danielhkuo/bridge-boards/pbn"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// dateLayout is how tournament dates are stored: a calendar date with no
// time of day, so lookups do not depend on the server's time zone.
const dateLayout = "2006-01-02"

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// FindTournament returns the tournament with the given name and date.
func (s *Store) FindTournament(ctx context.Context, name string, date time.Time) (*models.TournamentSummary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT t.id, t.name, t.venue, t.date, t.source, COUNT(b.id)
		FROM tournament t
		LEFT JOIN board b ON b.tournament_id = t.id
		WHERE t.name = $1 AND t.date = $2
		GROUP BY t.id, t.name, t.venue, t.date, t.source
	`, name, date.UTC().Format(dateLayout))

	summary, err := scanSummary(row)
	if err == sql.ErrNoRows {
		return nil, ErrTournamentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tournament: %w", err)
	}
	return summary, nil
}

// CreateTournament stores the tournament and all of its boards in one
// transaction and returns the new tournament ID.
func (s *Store) CreateTournament(ctx context.Context, t *pbn.Tournament, source string) (string, error) {
	tournamentID := uuid.NewString()
	createdAt := s.now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tournament (id, name, venue, date, source, is_processed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, tournamentID, t.Event, t.Site, t.Date.UTC().Format(dateLayout), source, true, createdAt)
	if err != nil {
		return "", fmt.Errorf("failed to insert tournament: %w", err)
	}

	for _, b := range t.Boards {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO board (id, tournament_id, board_number, dealer, vulnerability, deal,
			                   north_hand, east_hand, south_hand, west_hand, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, uuid.NewString(), tournamentID, b.Number, string(b.Dealer), string(b.Vulnerability), b.Deal,
			b.Hands.North, b.Hands.East, b.Hands.South, b.Hands.West, createdAt)
		if err != nil {
			return "", fmt.Errorf("failed to insert board %d: %w", b.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tournamentID, nil
}

// GetTournament loads a tournament with its boards ordered by number.
func (s *Store) GetTournament(ctx context.Context, id string) (*pbn.Tournament, error) {
	var t pbn.Tournament
	var date string
	err := s.db.QueryRowContext(ctx, `
		SELECT name, venue, date FROM tournament WHERE id = $1
	`, id).Scan(&t.Event, &t.Site, &date)
	if err == sql.ErrNoRows {
		return nil, ErrTournamentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tournament: %w", err)
	}

	if t.Date, err = time.Parse(dateLayout, date); err != nil {
		return nil, fmt.Errorf("tournament %s has bad date %q: %w", id, date, err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT board_number, dealer, vulnerability, deal,
		       north_hand, east_hand, south_hand, west_hand
		FROM board
		WHERE tournament_id = $1
		ORDER BY board_number
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	t.Boards = []pbn.Board{}
	for rows.Next() {
		var b pbn.Board
		var dealer, vuln string
		if err := rows.Scan(&b.Number, &dealer, &vuln, &b.Deal,
			&b.Hands.North, &b.Hands.East, &b.Hands.South, &b.Hands.West); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		b.Dealer = pbn.Seat(dealer)
		b.Vulnerability = pbn.Vulnerability(vuln)
		t.Boards = append(t.Boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read boards: %w", err)
	}

	return &t, nil
}

// ListTournaments returns every tournament, newest date first.
func (s *Store) ListTournaments(ctx context.Context) ([]models.TournamentSummary, error) {
	return s.querySummaries(ctx, `
		SELECT t.id, t.name, t.venue, t.date, t.source, COUNT(b.id)
		FROM tournament t
		LEFT JOIN board b ON b.tournament_id = t.id
		GROUP BY t.id, t.name, t.venue, t.date, t.source
		ORDER BY t.date DESC, t.name
	`)
}

// Stats returns tournament and board totals plus the most recently imported tournaments.
func (s *Store) Stats(ctx context.Context, recent int) (*models.Stats, error) {
	var stats models.Stats

	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tournament`).Scan(&stats.TotalTournaments)
	if err != nil {
		return nil, fmt.Errorf("failed to count tournaments: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM board`).Scan(&stats.TotalBoards)
	if err != nil {
		return nil, fmt.Errorf("failed to count boards: %w", err)
	}

	stats.RecentTournaments, err = s.querySummaries(ctx, `
		SELECT t.id, t.name, t.venue, t.date, t.source, COUNT(b.id)
		FROM tournament t
		LEFT JOIN board b ON b.tournament_id = t.id
		GROUP BY t.id, t.name, t.venue, t.date, t.source, t.created_at
		ORDER BY t.created_at DESC, t.name
		LIMIT $1
	`, recent)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// DeleteTournament removes a tournament and its boards.
func (s *Store) DeleteTournament(ctx context.Context, id string) (*models.TournamentSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	summary, err := scanSummary(tx.QueryRowContext(ctx, `
		SELECT t.id, t.name, t.venue, t.date, t.source, COUNT(b.id)
		FROM tournament t
		LEFT JOIN board b ON b.tournament_id = t.id
		WHERE t.id = $1
		GROUP BY t.id, t.name, t.venue, t.date, t.source
	`, id))
	if err == sql.ErrNoRows {
		return nil, ErrTournamentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query tournament: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM board WHERE tournament_id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete boards: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tournament WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("failed to delete tournament: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return summary, nil
}

func (s *Store) querySummaries(ctx context.Context, query string, args ...any) ([]models.TournamentSummary, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer rows.Close()

	summaries := []models.TournamentSummary{}
	for rows.Next() {
		summary, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		summaries = append(summaries, *summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tournaments: %w", err)
	}

	return summaries, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSummary(row scanner) (*models.TournamentSummary, error) {
	var summary models.TournamentSummary
	var date string
	if err := row.Scan(&summary.ID, &summary.Name, &summary.Venue, &date, &summary.Source, &summary.BoardCount); err != nil {
		return nil, err
	}

	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("tournament %s has bad date %q: %w", summary.ID, date, err)
	}
	summary.Date = d

	return &summary, nil
}
