package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"ansuads/internal/config/configs"
)

// Open opens the embedded SQLite database described by cfg and verifies the
// connection. WAL keeps a second process from ever truncating the whole
// file, and the busy timeout serializes writers instead of failing them.
// The pool is capped at one connection; a single connection also keeps a
// :memory: database alive across queries. The caller must close the
// returned handle.
func Open(cfg configs.SQLite) (*sql.DB, error) {
	dsn := cfg.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}
