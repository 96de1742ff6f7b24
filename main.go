package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/bridge-boards/cliparse"
	"github.com/danielhkuo/bridge-boards/db"
	"github.com/danielhkuo/bridge-boards/importer"
	"github.com/danielhkuo/bridge-boards/models"
	"github.com/danielhkuo/bridge-boards/pbn"
)

// recentTournaments is how many tournaments the stats command lists.
const recentTournaments = 5

func main() {
	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(2)
	}

	slog.SetDefault(newLogger(os.Stderr, cfg.LogLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
	}()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.Error("command failed", "command", cfg.Command, "error", err)
		writeJSON(os.Stdout, errorResponse(err))
		cancel()
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// run executes the configured command and writes its JSON or PBN output to out.
func run(ctx context.Context, cfg cliparse.Config, out io.Writer) error {
	if cfg.Command == cliparse.CmdParse {
		text, err := importer.ReadFile(cfg.Args[0])
		if err != nil {
			return err
		}
		report, err := importer.Preview(text)
		if err != nil {
			return err
		}
		return writeJSON(out, report)
	}

	// Connect to the database
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer conn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(conn); err != nil {
		return err
	}
	slog.Debug("Database schema ready", "type", cfg.DatabaseType)

	store := db.NewStore(conn)
	svc := importer.NewService(store, cfg.Source, slog.Default())

	switch cfg.Command {
	case cliparse.CmdImport:
		summary, err := svc.ImportFile(ctx, cfg.Args[0])
		if err != nil {
			return err
		}
		return writeJSON(out, summary)

	case cliparse.CmdExport:
		if len(cfg.Args) == 1 {
			return svc.Export(ctx, cfg.Args[0], out)
		}
		return exportToFile(ctx, svc, cfg.Args[0], cfg.Args[1])

	case cliparse.CmdList:
		tournaments, err := store.ListTournaments(ctx)
		if err != nil {
			return err
		}
		return writeJSON(out, tournaments)

	case cliparse.CmdStats:
		stats, err := store.Stats(ctx, recentTournaments)
		if err != nil {
			return err
		}
		return writeJSON(out, stats)

	case cliparse.CmdDelete:
		deleted, err := store.DeleteTournament(ctx, cfg.Args[0])
		if err != nil {
			return err
		}
		slog.Info("tournament deleted", "tournament_id", deleted.ID, "name", deleted.Name, "boards", deleted.BoardCount)
		return writeJSON(out, models.DeleteResponse{
			Message: "Tournament deleted successfully",
			Deleted: models.DeletedTournament{
				Name:          deleted.Name,
				BoardsDeleted: deleted.BoardCount,
			},
		})
	}

	return fmt.Errorf("unknown command %q", cfg.Command)
}

func exportToFile(ctx context.Context, svc *importer.Service, id, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := svc.Export(ctx, id, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// errorResponse classifies err for the JSON error output.
func errorResponse(err error) models.ErrorResponse {
	resp := models.ErrorResponse{Error: "internal_error", Message: err.Error()}

	var conflict *importer.ConflictError
	switch {
	case errors.As(err, &conflict):
		resp.Error = "conflict"
		resp.ExistingTournament = &conflict.Existing
	case errors.Is(err, db.ErrTournamentNotFound):
		resp.Error = "not_found"
	case errors.Is(err, importer.ErrNotPBN), errors.Is(err, importer.ErrFileTooLarge):
		resp.Error = "invalid_file"
	case errors.Is(err, pbn.ErrIncompleteTournament), errors.Is(err, pbn.ErrInvalidDateFormat):
		resp.Error = "invalid_pbn"
	}

	return resp
}
