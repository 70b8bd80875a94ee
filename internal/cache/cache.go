package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache is a sqlite-backed store of synonym candidates keyed by word.
// Candidates are stored tab-joined; none of them can contain a tab because
// they come from single-word API entries.
type Cache struct {
	db *sql.DB
}

// Open opens the cache database at path, creating it and its schema if
// needed.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS synonyms (
		word       TEXT PRIMARY KEY,
		candidates TEXT NOT NULL,
		fetched_at INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached candidates for word. ok is false on a miss. A word
// cached with no candidates is a hit with an empty list.
func (c *Cache) Get(word string) (candidates []string, ok bool, err error) {
	var joined string
	err = c.db.QueryRow(`SELECT candidates FROM synonyms WHERE word = ?`, word).Scan(&joined)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache lookup failed: %w", err)
	}
	if joined == "" {
		return nil, true, nil
	}
	return strings.Split(joined, "\t"), true, nil
}

// Put stores candidates for word, replacing any previous entry.
func (c *Cache) Put(word string, candidates []string) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO synonyms (word, candidates, fetched_at) VALUES (?, ?, ?)`,
		word, strings.Join(candidates, "\t"), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache store failed: %w", err)
	}
	return nil
}
