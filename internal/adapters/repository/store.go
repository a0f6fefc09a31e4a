// Package repository defines the storage contract for accounts and
// rosters, with in-memory and SQLite implementations.
package repository

import (
	"context"

	"github.com/okian/scorebook/internal/domain/model"
)

// Store provides access to persisted accounts and player records.
// The aggregation and reporting pipeline only ever reads roster
// snapshots; all mutation happens through this interface.
type Store interface {
	// CreateAccount persists an accepted registration. Returns
	// ErrEmailTaken when the email is already registered
	// (case-insensitive).
	CreateAccount(ctx context.Context, acc model.Account) (model.Account, error)

	// Account returns the account with the given id, or
	// ErrAccountNotFound.
	Account(ctx context.Context, id string) (model.Account, error)

	// AccountByEmail looks an account up by email, case-insensitive.
	AccountByEmail(ctx context.Context, email string) (model.Account, error)

	// AddPlayer appends a player to a coach's roster, assigning an id
	// when the record has none. Returns ErrCoachNotFound when the
	// coach id does not belong to a coach account.
	AddPlayer(ctx context.Context, coachID string, rec model.PlayerRecord) (model.PlayerRecord, error)

	// Roster returns the coach's players in insertion order. The
	// order is stable: report rows and top-performer tie-breaks
	// depend on it.
	Roster(ctx context.Context, coachID string) ([]model.PlayerRecord, error)

	// RecordMatch folds one match score into a player's cumulative
	// state and returns the updated snapshot. Returns
	// ErrPlayerNotFound for unknown players.
	RecordMatch(ctx context.Context, playerID string, score float64) (model.PlayerRecord, error)

	// Player returns a single player snapshot, or ErrPlayerNotFound.
	Player(ctx context.Context, id string) (model.PlayerRecord, error)

	// Counts returns the number of accounts and players tracked,
	// for monitoring.
	Counts(ctx context.Context) (accounts, players int)
}
