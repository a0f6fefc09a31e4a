// Package service wires the domain engines to storage and implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/okian/scorebook/internal/adapters/repository"
	"github.com/okian/scorebook/internal/domain/aggregate"
	"github.com/okian/scorebook/internal/domain/model"
	"github.com/okian/scorebook/internal/domain/report"
	"github.com/okian/scorebook/internal/domain/validation"
	"github.com/okian/scorebook/pkg/logger"
	"github.com/okian/scorebook/pkg/metrics"
)

// Service exposes team summaries, CSV reports, registration and
// roster mutation on top of a Store. The domain engines it calls are
// pure; the service supplies them consistent snapshots and the clock.
type Service struct {
	mu sync.RWMutex

	store repository.Store
	clock clockwork.Clock

	dbPath     string
	bcryptCost int

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore injects a storage backend, bypassing the db_path
// selection in Start. Used by tests and callers that manage their
// own store lifecycle.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDBPath selects the SQLite backend at the given path. Empty
// keeps the in-memory store.
func WithDBPath(path string) Option {
	return func(s *Service) {
		s.dbPath = path
	}
}

// WithBcryptCost sets the password hashing work factor.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithClock injects the clock used for report metadata.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock:      clockwork.NewRealClock(),
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the storage backend.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		if s.dbPath != "" {
			store, err := repository.NewSQLiteStore(s.dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			s.store = store
			s.logger.Info(ctx, "using sqlite store", logger.String("path", s.dbPath))
		} else {
			s.store = repository.NewMemoryStore()
			s.logger.Info(ctx, "using in-memory store")
		}
	}

	s.started = true
	s.logger.Info(ctx, "scorebook service started")
	return nil
}

// Stop releases the storage backend.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if closer, ok := s.store.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "scorebook service stopped")
}

// Register validates a candidate and, when it passes, stores the
// account with a bcrypt-hashed password. A non-empty Result means
// the candidate was rejected; that is a normal outcome, not an
// error.
func (s *Service) Register(ctx context.Context, c model.RegistrationCandidate) (model.Account, validation.Result, error) {
	errs := validation.Validate(c)
	if !errs.Valid() {
		fields := make([]string, 0, len(errs))
		for field := range errs {
			fields = append(fields, field)
		}
		metrics.RecordRegistrationRejected(fields)
		s.logger.Debug(ctx, "registration rejected",
			logger.String("email", c.Email),
			logger.Int("failedFields", len(errs)),
		)
		return model.Account{}, errs, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), s.bcryptCost)
	if err != nil {
		return model.Account{}, nil, fmt.Errorf("hash password: %w", err)
	}
	acc, err := s.store.CreateAccount(ctx, model.NewAccount(uuid.NewString(), c, string(hash)))
	if err != nil {
		return model.Account{}, nil, err
	}

	metrics.RecordRegistrationAccepted()
	s.updateStoreGauges(ctx)
	s.logger.Info(ctx, "account registered",
		logger.String("id", acc.ID),
		logger.String("role", string(acc.Role)),
	)
	return acc, nil, nil
}

// TeamSummary aggregates the coach's roster snapshot.
func (s *Service) TeamSummary(ctx context.Context, coachID string) (model.TeamSummary, error) {
	roster, err := s.store.Roster(ctx, coachID)
	if err != nil {
		return model.TeamSummary{}, err
	}
	metrics.RecordSummaryComputed()
	return aggregate.Summarize(roster), nil
}

// Report aggregates the coach's roster and serializes it as a CSV
// document, returning the document and its suggested filename.
func (s *Service) Report(ctx context.Context, coachID string) (string, string, error) {
	coach, err := s.store.Account(ctx, coachID)
	if err != nil {
		return "", "", err
	}
	roster, err := s.store.Roster(ctx, coachID)
	if err != nil {
		return "", "", err
	}

	now := s.clock.Now()
	doc := report.Serialize(aggregate.Summarize(roster), roster, report.Metadata{
		GeneratedBy: coach.Name,
		GeneratedAt: now,
	})
	metrics.RecordReportGenerated(len(doc))
	s.logger.Info(ctx, "report generated",
		logger.String("coachID", coachID),
		logger.Int("players", len(roster)),
	)
	return doc, report.Filename(now), nil
}

// Roster returns the coach's players in insertion order.
func (s *Service) Roster(ctx context.Context, coachID string) ([]model.PlayerRecord, error) {
	return s.store.Roster(ctx, coachID)
}

// AddPlayer appends a player to the coach's roster. The sport, when
// supplied, must be one of the known enumeration.
func (s *Service) AddPlayer(ctx context.Context, coachID string, rec model.PlayerRecord) (model.PlayerRecord, error) {
	if rec.Sport != "" && !model.KnownSport(rec.Sport) {
		return model.PlayerRecord{}, fmt.Errorf("%w: %s", ErrUnknownSport, rec.Sport)
	}
	added, err := s.store.AddPlayer(ctx, coachID, rec)
	if err != nil {
		return model.PlayerRecord{}, err
	}
	s.updateStoreGauges(ctx)
	return added, nil
}

// RecordMatch folds one match score into a player's cumulative state.
func (s *Service) RecordMatch(ctx context.Context, playerID string, score float64) (model.PlayerRecord, error) {
	rec, err := s.store.RecordMatch(ctx, playerID, score)
	if err != nil {
		return model.PlayerRecord{}, err
	}
	metrics.RecordMatchRecorded()
	return rec, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}
	if s.started {
		accounts, players := s.store.Counts(context.Background())
		stats["accounts"] = accounts
		stats["players"] = players
		metrics.UpdateAccountsTracked(accounts)
		metrics.UpdatePlayersTracked(players)
	}
	return stats
}

func (s *Service) updateStoreGauges(ctx context.Context) {
	accounts, players := s.store.Counts(ctx)
	metrics.UpdateAccountsTracked(accounts)
	metrics.UpdatePlayersTracked(players)
}
