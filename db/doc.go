// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database, creates the schema and stores imported
tournaments.

# Connecting

Open picks the driver from the database type and pings the server:

	conn, err := db.Open(db.TypeSQLite, "file:bridge.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite connections get foreign key enforcement turned on through the DSN.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - tournament: name, venue, date (YYYY-MM-DD text), import source
  - board: board number, dealer, vulnerability, raw deal and one column per hand

# Relationships

	tournament 1──* board

Boards use ON DELETE CASCADE. A tournament is unique per (name, date) and a
board number is unique within its tournament.

# Store

Store wraps *sql.DB with the queries the importer needs:

	store := db.NewStore(conn)
	id, err := store.CreateTournament(ctx, &t, "PBN Upload")
	t, err := store.GetTournament(ctx, id)

Lookups that find nothing return ErrTournamentNotFound.
*/
package db
