package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/okian/scorebook/internal/domain/model"
)

// SQLiteStore persists accounts and rosters in a SQLite database.
// Roster order relies on rowid, which grows monotonically with
// inserts.
type SQLiteStore struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS accounts (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE COLLATE NOCASE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	sport         TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS players (
	id            TEXT PRIMARY KEY,
	coach_id      TEXT NOT NULL REFERENCES accounts(id),
	name          TEXT NOT NULL,
	email         TEXT NOT NULL DEFAULT '',
	sport         TEXT NOT NULL DEFAULT '',
	current_score REAL NOT NULL DEFAULT 0,
	match_count   INTEGER NOT NULL DEFAULT 0,
	total_score   REAL NOT NULL DEFAULT 0,
	average_score REAL NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_players_coach ON players(coach_id);
`

// NewSQLiteStore opens (creating if needed) the database at path and
// applies the schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) CreateAccount(ctx context.Context, acc model.Account) (model.Account, error) {
	if acc.ID == "" {
		acc.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (id, name, email, password_hash, role, sport) VALUES (?,?,?,?,?,?)`,
		acc.ID, acc.Name, acc.Email, acc.PasswordHash, string(acc.Role), string(acc.Sport),
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return model.Account{}, ErrEmailTaken
		}
		return model.Account{}, fmt.Errorf("insert account: %w", err)
	}
	return acc, nil
}

func (s *SQLiteStore) Account(ctx context.Context, id string) (model.Account, error) {
	return s.scanAccount(s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role, sport FROM accounts WHERE id = ?`, id))
}

func (s *SQLiteStore) AccountByEmail(ctx context.Context, email string) (model.Account, error) {
	return s.scanAccount(s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, role, sport FROM accounts WHERE email = ? COLLATE NOCASE LIMIT 1`, email))
}

func (s *SQLiteStore) scanAccount(row *sql.Row) (model.Account, error) {
	var acc model.Account
	var role, sport string
	err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &role, &sport)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("scan account: %w", err)
	}
	acc.Role = model.Role(role)
	acc.Sport = model.Sport(sport)
	return acc, nil
}

func (s *SQLiteStore) AddPlayer(ctx context.Context, coachID string, rec model.PlayerRecord) (model.PlayerRecord, error) {
	if err := s.requireCoach(ctx, coachID); err != nil {
		return model.PlayerRecord{}, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO players (id, coach_id, name, email, sport, current_score, match_count, total_score, average_score)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		rec.ID, coachID, rec.Name, rec.Email, string(rec.Sport),
		rec.CurrentScore, rec.MatchCount, rec.TotalScore, rec.AverageScore,
	)
	if err != nil {
		return model.PlayerRecord{}, fmt.Errorf("insert player: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) Roster(ctx context.Context, coachID string) ([]model.PlayerRecord, error) {
	if err := s.requireCoach(ctx, coachID); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, sport, current_score, match_count, total_score, average_score
		 FROM players WHERE coach_id = ? ORDER BY rowid`, coachID)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	defer rows.Close()

	roster := []model.PlayerRecord{}
	for rows.Next() {
		var rec model.PlayerRecord
		var sport string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &sport,
			&rec.CurrentScore, &rec.MatchCount, &rec.TotalScore, &rec.AverageScore); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		rec.Sport = model.Sport(sport)
		roster = append(roster, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roster: %w", err)
	}
	return roster, nil
}

func (s *SQLiteStore) RecordMatch(ctx context.Context, playerID string, score float64) (model.PlayerRecord, error) {
	rec, err := s.Player(ctx, playerID)
	if err != nil {
		return model.PlayerRecord{}, err
	}
	rec = foldMatch(rec, score)
	_, err = s.db.ExecContext(ctx,
		`UPDATE players SET current_score = ?, match_count = ?, total_score = ?, average_score = ? WHERE id = ?`,
		rec.CurrentScore, rec.MatchCount, rec.TotalScore, rec.AverageScore, rec.ID,
	)
	if err != nil {
		return model.PlayerRecord{}, fmt.Errorf("update player: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) Player(ctx context.Context, id string) (model.PlayerRecord, error) {
	var rec model.PlayerRecord
	var sport string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, sport, current_score, match_count, total_score, average_score
		 FROM players WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Name, &rec.Email, &sport,
			&rec.CurrentScore, &rec.MatchCount, &rec.TotalScore, &rec.AverageScore)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PlayerRecord{}, ErrPlayerNotFound
	}
	if err != nil {
		return model.PlayerRecord{}, fmt.Errorf("scan player: %w", err)
	}
	rec.Sport = model.Sport(sport)
	return rec, nil
}

func (s *SQLiteStore) Counts(ctx context.Context) (int, int) {
	var accounts, players int
	_ = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&accounts)
	_ = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&players)
	return accounts, players
}

func (s *SQLiteStore) requireCoach(ctx context.Context, coachID string) error {
	var role string
	err := s.db.QueryRowContext(ctx, `SELECT role FROM accounts WHERE id = ?`, coachID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && model.Role(role) != model.RoleCoach) {
		return ErrCoachNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup coach: %w", err)
	}
	return nil
}
