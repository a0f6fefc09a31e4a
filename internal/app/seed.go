package service

import (
	"context"

	"github.com/okian/scorebook/internal/domain/model"
	"github.com/okian/scorebook/pkg/logger"
)

// SeedDemo loads a demo coach with a small roster so the summary and
// report endpoints have something to show on a fresh instance. It is
// a no-op when the demo coach already exists.
func (s *Service) SeedDemo(ctx context.Context) error {
	const demoEmail = "demo-coach@scorebook.local"

	if _, err := s.store.AccountByEmail(ctx, demoEmail); err == nil {
		return nil
	}

	coach, _, err := s.Register(ctx, model.RegistrationCandidate{
		Name:            "Demo Coach",
		Email:           demoEmail,
		Password:        "demo-pass",
		ConfirmPassword: "demo-pass",
		Role:            model.RoleCoach,
	})
	if err != nil {
		return err
	}

	players := []model.PlayerRecord{
		{Name: "Asha Rao", Email: "asha@scorebook.local", Sport: model.SportCricket},
		{Name: "Leo Park", Email: "leo@scorebook.local", Sport: model.SportFootball},
		{Name: "Mia Torres", Email: "mia@scorebook.local", Sport: model.SportBasketball},
	}
	scores := [][]float64{
		{82, 91, 78},
		{64, 70},
		{55},
	}
	for i, p := range players {
		added, err := s.AddPlayer(ctx, coach.ID, p)
		if err != nil {
			return err
		}
		for _, score := range scores[i] {
			if _, err := s.RecordMatch(ctx, added.ID, score); err != nil {
				return err
			}
		}
	}

	s.logger.Info(ctx, "demo roster seeded",
		logger.String("coachID", coach.ID),
		logger.Int("players", len(players)),
	)
	return nil
}
