package service

import (
	"math"
	"time"

	"github.com/dreamwell/sleep-coach/internal/domain"
)

// MetricsService computes descriptive statistics over a log collection.
type MetricsService interface {
	// Aggregate is a pure function of its input snapshot. A collection
	// with zero entries yields the zero Metrics (TotalLogs == 0).
	Aggregate(logs []domain.SleepLogEntry) domain.Metrics
}

type metricsService struct{}

// NewMetricsService creates a new MetricsService.
func NewMetricsService() MetricsService {
	return &metricsService{}
}

func (s *metricsService) Aggregate(logs []domain.SleepLogEntry) domain.Metrics {
	if len(logs) == 0 {
		return domain.Metrics{}
	}

	var durations, stresses, bedtimes []float64
	for _, entry := range logs {
		durations = append(durations, entry.Duration)
		stresses = append(stresses, float64(entry.StressLevel))
		// Entries are validated upstream, but skip rather than crash
		// on a bedtime that fails to parse.
		if minutes, ok := bedtimeMinutes(entry.Bedtime); ok {
			bedtimes = append(bedtimes, float64(minutes))
		}
	}

	metrics := domain.Metrics{
		TotalLogs: len(logs),
	}
	if len(durations) > 0 {
		metrics.AverageSleepDuration = round2(mean(durations))
	}
	if len(stresses) > 0 {
		metrics.AverageStressLevel = round2(mean(stresses))
	}
	if len(bedtimes) > 1 {
		metrics.BedtimeConsistencyMinutes = round2(sampleStdDev(bedtimes))
	}
	return metrics
}

// bedtimeMinutes converts an HH:MM bedtime to minutes after midnight.
func bedtimeMinutes(bedtime string) (int, bool) {
	t, err := time.Parse("15:04", bedtime)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev computes the sample standard deviation (n-1 divisor).
// Callers must pass at least 2 values.
func sampleStdDev(values []float64) float64 {
	m := mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
