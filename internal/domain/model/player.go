// Package model contains domain models passed between layers.
package model

// Sport is the closed set of sports a player can be registered for.
type Sport string

// Supported sports.
const (
	SportCricket    Sport = "cricket"
	SportFootball   Sport = "football"
	SportBasketball Sport = "basketball"
)

// KnownSport reports whether s is one of the supported sports.
func KnownSport(s Sport) bool {
	switch s {
	case SportCricket, SportFootball, SportBasketball:
		return true
	}
	return false
}

// PlayerRecord is a snapshot of one player's accumulated performance
// state. The core reads these snapshots and never mutates them; the
// storage adapter owns their lifecycle. Numeric zero values stand in
// for fields the source data never supplied, so a partially filled
// record is still aggregatable.
type PlayerRecord struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Sport        Sport   `json:"sport"`
	CurrentScore float64 `json:"current_score"`
	MatchCount   int     `json:"match_count"`
	TotalScore   float64 `json:"total_score"`
	AverageScore float64 `json:"average_score"`
}

// TeamSummary is derived from a roster snapshot on every aggregation
// call and is never persisted.
type TeamSummary struct {
	TotalPlayers int     `json:"total_players"`
	AverageScore float64 `json:"average_score"`
	TotalMatches int     `json:"total_matches"`
	// TopPerformer is nil when no roster member has played a match.
	TopPerformer *PlayerRecord `json:"top_performer,omitempty"`
}
