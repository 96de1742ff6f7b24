// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/danielhkuo/bridge-boards/db"
	"github.com/danielhkuo/bridge-boards/models"
	"github.com/danielhkuo/bridge-boards/pbn"
)

// MaxFileSize is the largest PBN file ImportFile accepts.
const MaxFileSize = 5 << 20

var (
	ErrDuplicateTournament = errors.New("tournament with this name and date already exists")
	ErrNotPBN              = errors.New("only PBN files are allowed")
	ErrFileTooLarge        = errors.New("PBN file is too large")
)

// ConflictError is returned when a tournament with the same name and date
// is already stored.
type ConflictError struct {
	Existing models.TournamentSummary
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %q on %s (id %s)", ErrDuplicateTournament,
		e.Existing.Name, e.Existing.Date.Format("2006-01-02"), e.Existing.ID)
}

func (e *ConflictError) Unwrap() error { return ErrDuplicateTournament }

// Repository is the storage the importer writes to. *db.Store implements it.
type Repository interface {
	FindTournament(ctx context.Context, name string, date time.Time) (*models.TournamentSummary, error)
	CreateTournament(ctx context.Context, t *pbn.Tournament, source string) (string, error)
	GetTournament(ctx context.Context, id string) (*pbn.Tournament, error)
}

type Service struct {
	repo   Repository
	source string
	logger *slog.Logger
}

// NewService creates an importer that tags stored tournaments with source.
// A nil logger uses slog.Default().
func NewService(repo Repository, source string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if source == "" {
		source = models.SourcePBNUpload
	}
	return &Service{repo: repo, source: source, logger: logger}
}

// ImportFile reads a .pbn file from disk and imports it.
func (s *Service) ImportFile(ctx context.Context, path string) (*models.ImportSummary, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	s.logger.Info("importing PBN file", "path", path, "bytes", len(text))
	return s.Import(ctx, text)
}

// Import parses PBN text and stores the tournament with every board that
// decoded. Boards that fail to decode are skipped and listed in the summary.
// Nothing is stored when the tournament itself is invalid or already exists.
func (s *Service) Import(ctx context.Context, text string) (*models.ImportSummary, error) {
	res, err := pbn.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid PBN file: %w", err)
	}

	t := &res.Tournament
	s.logger.Info("parsed tournament", "event", t.Event, "date", pbn.FormatDate(t.Date), "boards", res.Total())

	skipped := skippedBoards(res)
	for _, sb := range skipped {
		s.logger.Warn("board skipped", "event", t.Event, "board", sb.BoardNumber, "reason", sb.Reason)
	}

	if res.Created() == 0 {
		return nil, fmt.Errorf("invalid PBN file: %w: none of %d boards could be decoded",
			pbn.ErrIncompleteTournament, res.Total())
	}

	existing, err := s.repo.FindTournament(ctx, t.Event, t.Date)
	if err == nil {
		s.logger.Info("tournament already exists", "event", t.Event, "tournament_id", existing.ID)
		return nil, &ConflictError{Existing: *existing}
	}
	if !errors.Is(err, db.ErrTournamentNotFound) {
		return nil, fmt.Errorf("failed to check for existing tournament: %w", err)
	}

	id, err := s.repo.CreateTournament(ctx, t, s.source)
	if err != nil {
		// A concurrent import may have stored the same (name, date) since the check above.
		if existing, findErr := s.repo.FindTournament(ctx, t.Event, t.Date); findErr == nil {
			s.logger.Info("tournament already exists", "event", t.Event, "tournament_id", existing.ID)
			return nil, &ConflictError{Existing: *existing}
		}
		return nil, fmt.Errorf("failed to store tournament: %w", err)
	}

	s.logger.Info("tournament created", "tournament_id", id, "event", t.Event,
		"boards_created", res.Created(), "total_boards", res.Total())

	return &models.ImportSummary{
		Message: "PBN file imported successfully",
		Tournament: models.ImportedTournament{
			ID:            id,
			Name:          t.Event,
			Venue:         t.Site,
			Date:          t.Date,
			BoardsCreated: res.Created(),
			TotalBoards:   res.Total(),
		},
		Skipped: skipped,
	}, nil
}

// Export writes a stored tournament as PBN text.
func (s *Service) Export(ctx context.Context, id string, w io.Writer) error {
	t, err := s.repo.GetTournament(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load tournament %s: %w", id, err)
	}

	if err := pbn.Write(w, t); err != nil {
		return err
	}

	s.logger.Info("tournament exported", "tournament_id", id, "boards", len(t.Boards))
	return nil
}

// Preview parses PBN text without storing anything.
func Preview(text string) (*models.ParseReport, error) {
	res, err := pbn.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("invalid PBN file: %w", err)
	}

	return &models.ParseReport{
		Event:         res.Tournament.Event,
		Site:          res.Tournament.Site,
		Date:          res.Tournament.Date,
		BoardsCreated: res.Created(),
		TotalBoards:   res.Total(),
		Boards:        res.Tournament.Boards,
		Skipped:       skippedBoards(res),
	}, nil
}

// ReadFile reads a PBN file after checking its extension and size.
func ReadFile(path string) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pbn") {
		return "", fmt.Errorf("%w: %s", ErrNotPBN, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrFileTooLarge, info.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(data), nil
}

func skippedBoards(res *pbn.Result) []models.SkippedBoard {
	skipped := []models.SkippedBoard{}
	for _, o := range res.Skipped() {
		skipped = append(skipped, models.SkippedBoard{
			BoardNumber: o.Number,
			Reason:      o.Err.Error(),
		})
	}
	return skipped
}
