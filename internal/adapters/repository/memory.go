package repository

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/scorebook/internal/domain/model"
)

// MemoryStore is a mutex-guarded in-memory Store. It is the default
// backend when no database path is configured, and the backend of
// choice in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]model.Account
	players  map[string]model.PlayerRecord
	// rosters keeps player ids per coach in insertion order.
	rosters map[string][]string
	// coachOf maps player id back to the owning coach.
	coachOf map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]model.Account),
		players:  make(map[string]model.PlayerRecord),
		rosters:  make(map[string][]string),
		coachOf:  make(map[string]string),
	}
}

func (s *MemoryStore) CreateAccount(_ context.Context, acc model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if strings.EqualFold(existing.Email, acc.Email) {
			return model.Account{}, ErrEmailTaken
		}
	}
	if acc.ID == "" {
		acc.ID = uuid.NewString()
	}
	s.accounts[acc.ID] = acc
	return acc, nil
}

func (s *MemoryStore) Account(_ context.Context, id string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return model.Account{}, ErrAccountNotFound
	}
	return acc, nil
}

func (s *MemoryStore) AccountByEmail(_ context.Context, email string) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, acc := range s.accounts {
		if strings.EqualFold(acc.Email, email) {
			return acc, nil
		}
	}
	return model.Account{}, ErrAccountNotFound
}

func (s *MemoryStore) AddPlayer(_ context.Context, coachID string, rec model.PlayerRecord) (model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	coach, ok := s.accounts[coachID]
	if !ok || coach.Role != model.RoleCoach {
		return model.PlayerRecord{}, ErrCoachNotFound
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.players[rec.ID] = rec
	s.rosters[coachID] = append(s.rosters[coachID], rec.ID)
	s.coachOf[rec.ID] = coachID
	return rec, nil
}

func (s *MemoryStore) Roster(_ context.Context, coachID string) ([]model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coach, ok := s.accounts[coachID]
	if !ok || coach.Role != model.RoleCoach {
		return nil, ErrCoachNotFound
	}
	ids := s.rosters[coachID]
	roster := make([]model.PlayerRecord, 0, len(ids))
	for _, id := range ids {
		roster = append(roster, s.players[id])
	}
	return roster, nil
}

func (s *MemoryStore) RecordMatch(_ context.Context, playerID string, score float64) (model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.players[playerID]
	if !ok {
		return model.PlayerRecord{}, ErrPlayerNotFound
	}
	rec = foldMatch(rec, score)
	s.players[playerID] = rec
	return rec, nil
}

func (s *MemoryStore) Player(_ context.Context, id string) (model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.players[id]
	if !ok {
		return model.PlayerRecord{}, ErrPlayerNotFound
	}
	return rec, nil
}

func (s *MemoryStore) Counts(_ context.Context) (int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.accounts), len(s.players)
}

// foldMatch applies one match score to a player's cumulative state.
// The running average is kept at 2 decimals so exported rows match
// the team average precision.
func foldMatch(rec model.PlayerRecord, score float64) model.PlayerRecord {
	rec.MatchCount++
	rec.TotalScore += score
	rec.CurrentScore = score
	rec.AverageScore = math.Round(rec.TotalScore/float64(rec.MatchCount)*100) / 100
	return rec
}
