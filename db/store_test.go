// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/bridge-boards/db"
	"github.com/danielhkuo/bridge-boards/pbn"
	"github.com/danielhkuo/bridge-boards/testutil"
)

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	// SetupTestDB already created it once
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("second CreateSchema failed: %v", err)
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := db.Open("mysql", "whatever")
	assert.Error(t, err)
}

func TestCreateAndGetTournament(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	want := testutil.RandomTournament(11, 8)

	id, err := store.CreateTournament(ctx, &want, "PBN Upload")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetTournament(ctx, id)
	require.NoError(t, err)

	if diff := cmp.Diff(&want, got); diff != "" {
		t.Errorf("GetTournament() mismatch (-want +got):\n%s", diff)
	}

	var source string
	var processed bool
	err = conn.QueryRow(`SELECT source, is_processed FROM tournament WHERE id = $1`, id).Scan(&source, &processed)
	require.NoError(t, err)
	assert.Equal(t, "PBN Upload", source)
	assert.True(t, processed)
}

func TestGetTournament_BoardsInNumberOrder(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	tour := testutil.RandomTournament(5, 3)
	tour.Boards[0].Number, tour.Boards[2].Number = 3, 1

	id, err := store.CreateTournament(ctx, &tour, "PBN Upload")
	require.NoError(t, err)

	got, err := store.GetTournament(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Boards, 3)
	for i, b := range got.Boards {
		assert.Equal(t, i+1, b.Number)
	}
}

func TestGetTournament_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)

	_, err := store.GetTournament(context.Background(), "missing")
	if !errors.Is(err, db.ErrTournamentNotFound) {
		t.Errorf("expected ErrTournamentNotFound, got %v", err)
	}
}

func TestFindTournament(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	id := testutil.CreateTestTournament(t, store)
	date := time.Date(2025, time.June, 17, 0, 0, 0, 0, time.UTC)

	found, err := store.FindTournament(ctx, "Tuesday Night Duplicate", date)
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Local Club", found.Venue)
	assert.Equal(t, 3, found.BoardCount)
	assert.True(t, date.Equal(found.Date))

	_, err = store.FindTournament(ctx, "Tuesday Night Duplicate", date.AddDate(0, 0, 7))
	assert.ErrorIs(t, err, db.ErrTournamentNotFound)

	_, err = store.FindTournament(ctx, "Wednesday Teams", date)
	assert.ErrorIs(t, err, db.ErrTournamentNotFound)
}

func TestCreateTournament_DuplicateNameAndDate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)

	testutil.CreateTestTournament(t, store)

	res, err := pbn.Parse(testutil.SamplePBN)
	require.NoError(t, err)

	_, err = store.CreateTournament(context.Background(), &res.Tournament, "PBN Upload")
	assert.Error(t, err, "the (name, date) pair is unique")
}

func TestCreateTournament_RollsBackOnBoardFailure(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	tour := testutil.RandomTournament(9, 2)
	tour.Boards[1].Number = tour.Boards[0].Number

	_, err := store.CreateTournament(ctx, &tour, "PBN Upload")
	require.Error(t, err)

	_, err = store.FindTournament(ctx, tour.Event, tour.Date)
	assert.ErrorIs(t, err, db.ErrTournamentNotFound, "tournament row must not survive a failed board insert")

	var boards int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM board`).Scan(&boards))
	assert.Zero(t, boards)
}

func TestListTournaments(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	empty, err := store.ListTournaments(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty, "empty list encodes as [] not null")
	assert.Empty(t, empty)

	older := testutil.RandomTournament(1, 2)
	older.Date = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	newer := testutil.RandomTournament(2, 4)
	newer.Date = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, tour := range []*pbn.Tournament{&older, &newer} {
		_, err := store.CreateTournament(ctx, tour, "PBN Upload")
		require.NoError(t, err)
	}

	list, err := store.ListTournaments(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, newer.Event, list[0].Name)
	assert.Equal(t, 4, list[0].BoardCount)
	assert.Equal(t, older.Event, list[1].Name)
	assert.Equal(t, 2, list[1].BoardCount)
}

func TestStats(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	for seed := uint64(1); seed <= 3; seed++ {
		tour := testutil.RandomTournament(seed*100, int(seed))
		_, err := store.CreateTournament(ctx, &tour, "PBN Upload")
		require.NoError(t, err)
	}

	stats, err := store.Stats(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalTournaments)
	assert.Equal(t, 6, stats.TotalBoards)
	assert.Len(t, stats.RecentTournaments, 2)
}

func TestDeleteTournament(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	id := testutil.CreateTestTournament(t, store)

	deleted, err := store.DeleteTournament(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Tuesday Night Duplicate", deleted.Name)
	assert.Equal(t, 3, deleted.BoardCount)

	_, err = store.GetTournament(ctx, id)
	assert.ErrorIs(t, err, db.ErrTournamentNotFound)

	var boards int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM board`).Scan(&boards))
	assert.Zero(t, boards)

	_, err = store.DeleteTournament(ctx, id)
	assert.ErrorIs(t, err, db.ErrTournamentNotFound)
}

func TestDeleteTournament_CascadesBoards(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)

	id := testutil.CreateTestTournament(t, store)

	// Removing the parent row directly relies on ON DELETE CASCADE
	_, err := conn.Exec(`DELETE FROM tournament WHERE id = $1`, id)
	require.NoError(t, err)

	var boards int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM board WHERE tournament_id = $1`, id).Scan(&boards))
	assert.Zero(t, boards)
}

func TestBoardConstraints(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	store := db.NewStore(conn)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(b *pbn.Board)
	}{
		{name: "non-positive number", mutate: func(b *pbn.Board) { b.Number = 0 }},
		{name: "unknown dealer", mutate: func(b *pbn.Board) { b.Dealer = "X" }},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tour := testutil.RandomTournament(uint64(500+i), 1)
			tt.mutate(&tour.Boards[0])

			_, err := store.CreateTournament(ctx, &tour, "PBN Upload")
			assert.Error(t, err)
		})
	}
}
