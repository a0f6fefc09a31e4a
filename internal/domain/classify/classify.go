// Package classify maps numeric scores to qualitative performance
// tiers using fixed thresholds.
package classify

// Tier identifies a performance bucket.
type Tier string

// Performance tiers, from best to worst.
const (
	TierExcellent        Tier = "excellent"
	TierGood             Tier = "good"
	TierNeedsImprovement Tier = "needs-improvement"
)

// Threshold constants. Lower bounds are inclusive.
const (
	excellentMin = 80
	goodMin      = 60
)

// Result pairs a tier with the label shown in exported reports.
type Result struct {
	Tier  Tier
	Label string
}

// Classify buckets a score into one of three tiers. Scores outside
// the nominal 0-100 range fall through to the same buckets; there is
// no clamping and no error path.
func Classify(score float64) Result {
	switch {
	case score >= excellentMin:
		return Result{Tier: TierExcellent, Label: "Excellent"}
	case score >= goodMin:
		return Result{Tier: TierGood, Label: "Good"}
	default:
		return Result{Tier: TierNeedsImprovement, Label: "Needs Improvement"}
	}
}
