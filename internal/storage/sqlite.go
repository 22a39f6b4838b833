// Package storage keeps the results of finished games for the current
// session. It uses the pure-Go modernc.org/sqlite driver with an in-memory
// database, so nothing outlives the process.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory session database.
type Store struct {
	db *sql.DB
}

// Result is a single finished game.
type Result struct {
	ID          int64
	GameID      string // Random UUID assigned on save
	Score       int
	Rounds      int
	AvgPerRound float64
	PlayedAt    time.Time
}

// Stats aggregates all results of the session.
type Stats struct {
	Games       int
	Best        int
	AvgScore    float64
	TotalRounds int
}

// Open creates an empty in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: gets its own database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			avg_per_round REAL NOT NULL,
			played_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_score ON results(score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_played_at ON results(played_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. All results are discarded.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns it with ID, GameID and
// PlayedAt filled in.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.GameID == "" {
		r.GameID = uuid.New().String()
	}
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (game_id, score, rounds, avg_per_round, played_at)
		 VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Score, r.Rounds, r.AvgPerRound, r.PlayedAt.UnixNano(),
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	r.ID = id

	return r, nil
}

// Recent returns the latest results, newest first.
func (s *Store) Recent(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, score, rounds, avg_per_round, played_at
		 FROM results
		 ORDER BY played_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// Top returns the best results. Equal scores keep the earlier game first.
func (s *Store) Top(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, game_id, score, rounds, avg_per_round, played_at
		 FROM results
		 ORDER BY score DESC, played_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var playedAt int64
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &r.Rounds, &r.AvgPerRound, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.PlayedAt = time.Unix(0, playedAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Best returns the highest score of the session, or 0 if none.
func (s *Store) Best() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM results").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats returns aggregated figures for the session.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(rounds), 0)
		 FROM results`,
	).Scan(&st.Games, &st.Best, &st.AvgScore, &st.TotalRounds)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}
