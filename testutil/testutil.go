// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/danielhkuo/bridge-boards/cliparse"
	"github.com/danielhkuo/bridge-boards/db"
	"github.com/danielhkuo/bridge-boards/pbn"
)

// SamplePBN is a three-board file in the shape clubs export.
const SamplePBN = `[Event "Tuesday Night Duplicate"]
[Site "Local Club"]
[Date "2025.06.17"]

[Board "1"]
[Dealer "N"]
[Vulnerable "-"]
[Deal "N:KQ95.A743.A2.Q42 J74.J985.Q543.K7 A832.KQ2.K876.A3 T6.T6.JT9.JT9865"]

[Board "2"]
[Dealer "E"]
[Vulnerable "NS"]
[Deal "E:AKQJ.T98.765.432 T98.765.432.AKQJ 765.432.AKQJ.T98 432.AKQJ.T98.765"]

[Board "3"]
[Dealer "S"]
[Vulnerable "EW"]
[Deal "S:J74.J985.Q543.K7 A832.KQ2.K876.A3 T6.T6.JT9.JT9865 KQ95.A743.A2.Q42"]
`

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	url := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	conn, err := db.Open(db.TypeSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the in-memory database alive and avoids
	// shared-cache table locks between pooled connections.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		DatabaseURL:  "file:test.db?mode=memory",
		DatabaseType: db.TypeSQLite,
		LogLevel:     "info",
		Source:       "PBN Upload",
	}
}

// WritePBNFile writes text to name inside a temporary directory and returns its path.
func WritePBNFile(t *testing.T, name, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// CreateTestTournament stores a parsed copy of SamplePBN and returns its ID.
func CreateTestTournament(t *testing.T, store *db.Store) string {
	t.Helper()

	res, err := pbn.Parse(SamplePBN)
	if err != nil {
		t.Fatalf("Failed to parse sample: %v", err)
	}

	id, err := store.CreateTournament(context.Background(), &res.Tournament, "PBN Upload")
	if err != nil {
		t.Fatalf("Failed to create test tournament: %v", err)
	}
	return id
}

const ranks = "AKQJT98765432"

// RandomTournament builds a tournament of legal random deals from seed.
// Each board's Deal lists the hands from a random starting seat.
func RandomTournament(seed uint64, boards int) pbn.Tournament {
	f := gofakeit.New(seed)

	date := f.DateRange(
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2030, time.December, 31, 0, 0, 0, 0, time.UTC),
	).UTC()

	t := pbn.Tournament{
		Event: f.City() + " Pairs",
		Site:  f.Company(),
		Date:  time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}

	vulns := []pbn.Vulnerability{pbn.VulNone, pbn.VulNS, pbn.VulEW, pbn.VulBoth}

	for n := 1; n <= boards; n++ {
		hands := randomHands(f)
		t.Boards = append(t.Boards, pbn.Board{
			Number:        n,
			Dealer:        pbn.Rotation[f.Number(0, 3)],
			Vulnerability: vulns[f.Number(0, len(vulns)-1)],
			Deal:          hands.EncodeDeal(pbn.Rotation[f.Number(0, 3)]),
			Hands:         hands,
		})
	}

	return t
}

// randomHands shuffles a 52-card deck and deals 13 cards to each seat.
func randomHands(f *gofakeit.Faker) pbn.Hands {
	type card struct{ suit, rank int }

	deck := make([]card, 0, 52)
	for s := 0; s < 4; s++ {
		for r := 0; r < len(ranks); r++ {
			deck = append(deck, card{suit: s, rank: r})
		}
	}
	f.ShuffleAnySlice(deck)

	var hands pbn.Hands
	for i, seat := range pbn.Rotation {
		held := deck[i*13 : (i+1)*13]
		sort.Slice(held, func(a, b int) bool {
			if held[a].suit != held[b].suit {
				return held[a].suit < held[b].suit
			}
			return held[a].rank < held[b].rank
		})

		var suits [4]strings.Builder
		for _, c := range held {
			suits[c.suit].WriteByte(ranks[c.rank])
		}
		hand := suits[0].String() + "." + suits[1].String() + "." + suits[2].String() + "." + suits[3].String()

		switch seat {
		case pbn.North:
			hands.North = hand
		case pbn.East:
			hands.East = hand
		case pbn.South:
			hands.South = hand
		case pbn.West:
			hands.West = hand
		}
	}

	return hands
}
