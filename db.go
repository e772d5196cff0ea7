package main

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

const memoryDatabase = ":memory:"

// openDatabase opens the sqlite database at path, or a private in-memory
// database when path is empty.
func openDatabase(path string) (*sql.DB, error) {
	if path == "" {
		path = memoryDatabase
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// every connection to :memory: is a separate database
	if path == memoryDatabase || strings.Contains(path, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return db, nil
}
