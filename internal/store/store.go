// Package store persists profiles, goals, and log entries in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"calring/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Store is a SQLite-backed data store. Safe for concurrent use; SQLite's
// WAL mode handles the reader/writer interleaving.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendEntry inserts a log entry. A missing ID gets a fresh UUID; a missing
// timestamp gets the current time. The stored entry is returned.
func (s *Store) AppendEntry(e model.LogEntry) (model.LogEntry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.LoggedAt.IsZero() {
		e.LoggedAt = time.Now()
	}

	_, err := s.db.Exec(`INSERT INTO entries
		(id, user_id, type, name, logged_at, cals, protein, fiber, sugar, fat)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, string(e.Type), e.Name, e.LoggedAt.UTC().Format(time.RFC3339),
		e.Cals, e.Protein, e.Fiber, e.Sugar, e.Fat,
	)
	if err != nil {
		return model.LogEntry{}, fmt.Errorf("inserting entry: %w", err)
	}
	return e, nil
}

// EntriesForUser returns all of a user's entries, newest first.
func (s *Store) EntriesForUser(userID string) ([]model.LogEntry, error) {
	rows, err := s.db.Query(`SELECT id, user_id, type, name, logged_at,
		cals, protein, fiber, sugar, fat
		FROM entries WHERE user_id = ? ORDER BY logged_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []model.LogEntry
	for rows.Next() {
		var e model.LogEntry
		var typ, loggedAt string
		if err := rows.Scan(&e.ID, &e.UserID, &typ, &e.Name, &loggedAt,
			&e.Cals, &e.Protein, &e.Fiber, &e.Sugar, &e.Fat); err != nil {
			return nil, err
		}
		e.Type = model.EntryType(typ)
		if t, err := time.Parse(time.RFC3339, loggedAt); err == nil {
			e.LoggedAt = t.Local()
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteEntries removes entries by ID for the given user. The result maps
// each requested ID to whether a row was actually deleted, so callers can
// report unknown IDs instead of silently succeeding.
func (s *Store) DeleteEntries(userID string, ids []string) (map[string]bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	deleted := make(map[string]bool, len(ids))
	for _, id := range ids {
		res, err := tx.Exec("DELETE FROM entries WHERE id = ? AND user_id = ?", id, userID)
		if err != nil {
			return nil, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, err
		}
		deleted[id] = n > 0
	}

	return deleted, tx.Commit()
}

// Profile returns the stored profile for a user, or ErrNotFound.
func (s *Store) Profile(userID string) (model.Profile, error) {
	var p model.Profile
	var gender string
	err := s.db.QueryRow(`SELECT weight_lbs, height_inches, age, gender, activity_multiplier
		FROM profiles WHERE user_id = ?`, userID).
		Scan(&p.WeightLbs, &p.HeightInches, &p.Age, &gender, &p.ActivityMultiplier)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, ErrNotFound
	}
	if err != nil {
		return model.Profile{}, err
	}
	p.Gender = model.Gender(gender)
	return p, nil
}

// SaveProfile upserts a user's profile.
func (s *Store) SaveProfile(userID string, p model.Profile) error {
	if !p.Valid() {
		return model.ErrInvalidProfile
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO profiles
		(user_id, weight_lbs, height_inches, age, gender, activity_multiplier, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, p.WeightLbs, p.HeightInches, p.Age, string(p.Gender), p.ActivityMultiplier,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// Goal returns the stored goal for a user, or ErrNotFound.
func (s *Store) Goal(userID string) (model.Goal, error) {
	var g model.Goal
	err := s.db.QueryRow(`SELECT target_weight_lbs, daily_deficit_kcal
		FROM goals WHERE user_id = ?`, userID).
		Scan(&g.TargetWeightLbs, &g.DailyDeficitKcal)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, ErrNotFound
	}
	if err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

// SaveGoal overwrites a user's goal wholesale.
func (s *Store) SaveGoal(userID string, g model.Goal) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO goals
		(user_id, target_weight_lbs, daily_deficit_kcal, updated_at)
		VALUES (?, ?, ?, ?)`,
		userID, g.TargetWeightLbs, g.DailyDeficitKcal,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}
	return nil
}

// ClearGoal removes a user's goal if one exists.
func (s *Store) ClearGoal(userID string) error {
	_, err := s.db.Exec("DELETE FROM goals WHERE user_id = ?", userID)
	return err
}

// EntryCount returns the number of stored entries for a user.
func (s *Store) EntryCount(userID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM entries WHERE user_id = ?", userID).Scan(&count)
	return count, err
}
