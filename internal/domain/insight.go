package domain

import "time"

// Confidence levels used by convention in SleepFactor. Not enforced: the
// model is instructed to use these but the value is stored as returned.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// Metrics holds descriptive statistics over a user's log history.
// Recomputed from the full collection on each request; never persisted
// on its own. A zero TotalLogs means the collection was empty.
// @Description Aggregated sleep statistics.
type Metrics struct {
	// Mean sleep duration in hours, rounded to 2 decimals
	AverageSleepDuration float64 `json:"average_sleep_duration" example:"7.25"`
	// Sample standard deviation of bedtime (minutes after midnight)
	BedtimeConsistencyMinutes float64 `json:"bedtime_consistency_minutes" example:"42.43"`
	// Mean stress level, rounded to 2 decimals
	AverageStressLevel float64 `json:"average_stress_level" example:"4.33"`
	// Number of entries in the collection
	TotalLogs int `json:"total_logs" example:"14"`
}

// SleepFactor is one model-identified factor impacting sleep quality.
// Raw carries the unparsed model reply when the factor was synthesized
// from a malformed response.
// @Description A factor impacting sleep quality with a confidence level.
type SleepFactor struct {
	Factor     string `json:"factor" example:"High evening caffeine intake"`
	Confidence string `json:"confidence" example:"High"`
	Raw        string `json:"raw,omitempty"`
}

// Insight is the AI-generated coaching summary for a user. One live copy
// per user; regenerating overwrites the previous one.
// @Description AI coaching insight built from a user's sleep history.
type Insight struct {
	UserID            string        `json:"user_id" example:"u1"`
	GeneratedAt       time.Time     `json:"generated_at" example:"2024-01-16T07:05:00Z"`
	Metrics           Metrics       `json:"metrics"`
	IdentifiedFactors []SleepFactor `json:"identified_factors"`
	CoachingTip       string        `json:"coaching_tip" example:"Try moving your last coffee before 14:00."`
	// Predicted improvement score from 1 (poor) to 10 (excellent)
	SleepImprovementScore int `json:"sleep_improvement_score" example:"6"`
}
