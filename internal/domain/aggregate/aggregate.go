// Package aggregate computes team summaries over roster snapshots.
package aggregate

import (
	"math"

	"github.com/okian/scorebook/internal/domain/model"
)

// Summarize folds a roster snapshot into a TeamSummary. The input
// order matters: when two players tie on average score, the one
// appearing earlier in the roster stays the top performer.
//
// Records are never rejected. A player whose cumulative fields were
// never filled in carries zero values and simply contributes no
// weight, so a roster of partial records still aggregates cleanly.
func Summarize(records []model.PlayerRecord) model.TeamSummary {
	if len(records) == 0 {
		return model.TeamSummary{}
	}

	summary := model.TeamSummary{TotalPlayers: len(records)}

	var totalScore float64
	for _, rec := range records {
		summary.TotalMatches += rec.MatchCount
		totalScore += rec.TotalScore
	}
	if summary.TotalMatches > 0 {
		summary.AverageScore = round2(totalScore / float64(summary.TotalMatches))
	}

	// Players without a recorded match are not eligible as top
	// performer regardless of their scores.
	for i := range records {
		rec := &records[i]
		if rec.MatchCount <= 0 {
			continue
		}
		if summary.TopPerformer == nil || rec.AverageScore > summary.TopPerformer.AverageScore {
			best := *rec
			summary.TopPerformer = &best
		}
	}

	return summary
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
