package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dreamwell/sleep-coach/internal/domain"
	"github.com/dreamwell/sleep-coach/internal/llm"
	"github.com/dreamwell/sleep-coach/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MinLogsForAnalysis is the minimum number of entries before the
// pipeline will run.
const MinLogsForAnalysis = 3

const defaultImprovementScore = 5

const factorsPromptTemplate = `You are a sleep data analyst. Given the following sleep logs and metrics, identify the top 1-2 factors most likely impacting sleep quality. For each factor, provide a confidence level (High, Medium, Low). Respond ONLY with a JSON array of objects: {"factor": string, "confidence": string}.

Sleep Logs:
%s

Metrics:
%s
`

const recommendPromptTemplate = `You are a sleep coach. Given these impact factors and metrics, generate a single, personalized, empathetic coaching tip focusing on the most critical area for improvement, and predict a sleep improvement score (1-10, 1=poor, 10=excellent). Respond ONLY with a JSON object: {"coaching_tip": string, "sleep_improvement_score": int}.

Impact Factors:
%s

Metrics:
%s
`

// InsightsService runs the two-stage analysis pipeline and owns the
// latest-insight record per user.
type InsightsService interface {
	// Analyze runs the pipeline for a user's full log collection.
	// Fails with domain.ErrInsufficientData below MinLogsForAnalysis
	// and domain.ErrAIProvider when the chat model is unreachable.
	Analyze(ctx context.Context, userID string) (*domain.Insight, error)
	// Latest returns the stored insight, or domain.ErrNotFound.
	Latest(ctx context.Context, userID string) (*domain.Insight, error)
}

type insightsService struct {
	metricsService MetricsService
	chatModel      llm.ChatModel
	logRepo        repository.SleepLogRepository
	insightRepo    repository.InsightRepository

	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

// NewInsightsService creates a new InsightsService.
func NewInsightsService(
	metricsService MetricsService,
	chatModel llm.ChatModel,
	logRepo repository.SleepLogRepository,
	insightRepo repository.InsightRepository,
) InsightsService {
	return &insightsService{
		metricsService: metricsService,
		chatModel:      chatModel,
		logRepo:        logRepo,
		insightRepo:    insightRepo,
		userLocks:      make(map[string]*sync.Mutex),
	}
}

// userLock returns the per-user mutex, creating it on first use.
// Concurrent Analyze calls for one user serialize on it so the stored
// insight is always the result of a complete run.
func (s *insightsService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	return lock
}

func (s *insightsService) Analyze(ctx context.Context, userID string) (*domain.Insight, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	tracer := otel.Tracer("sleep-coach-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Analyze",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	logs, err := s.logRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("logs.count", len(logs)))

	if len(logs) < MinLogsForAnalysis {
		return nil, domain.ErrInsufficientData
	}

	metrics := s.metricsService.Aggregate(logs)

	logsJSON, err := json.MarshalIndent(logs, "", "  ")
	if err != nil {
		return nil, err
	}
	metricsJSON, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return nil, err
	}

	// Stage 1: factor identification
	factors, err := s.identifyFactors(ctx, tracer, logsJSON, metricsJSON)
	if err != nil {
		return nil, err
	}

	// Stage 2: coaching recommendation, dependent on stage 1's output
	tip, score, err := s.recommend(ctx, tracer, factors, metricsJSON)
	if err != nil {
		return nil, err
	}

	insight := domain.Insight{
		UserID:                userID,
		GeneratedAt:           time.Now().UTC(),
		Metrics:               metrics,
		IdentifiedFactors:     factors,
		CoachingTip:           tip,
		SleepImprovementScore: score,
	}

	if err := s.insightRepo.Save(ctx, insight); err != nil {
		return nil, err
	}
	return &insight, nil
}

// identifyFactors asks the model for impact factors. A provider failure
// is terminal; a malformed reply degrades to a single Unknown factor
// carrying the raw text.
func (s *insightsService) identifyFactors(ctx context.Context, tracer trace.Tracer, logsJSON, metricsJSON []byte) ([]domain.SleepFactor, error) {
	ctx, span := tracer.Start(ctx, "InsightsService.identifyFactors")
	defer span.End()

	prompt := fmt.Sprintf(factorsPromptTemplate, logsJSON, metricsJSON)
	text, err := s.chatModel.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to identify impact factors: %w", domain.ErrAIProvider)
	}

	var factors []domain.SleepFactor
	if err := json.Unmarshal([]byte(text), &factors); err != nil {
		span.SetAttributes(attribute.Bool("factors.degraded", true))
		factors = []domain.SleepFactor{{
			Factor:     "Unknown",
			Confidence: domain.ConfidenceLow,
			Raw:        text,
		}}
	}
	return factors, nil
}

// recommend asks the model for a coaching tip and improvement score.
// A provider failure is terminal; a malformed reply degrades to the raw
// text as the tip with a default score.
func (s *insightsService) recommend(ctx context.Context, tracer trace.Tracer, factors []domain.SleepFactor, metricsJSON []byte) (string, int, error) {
	ctx, span := tracer.Start(ctx, "InsightsService.recommend")
	defer span.End()

	factorsJSON, err := json.MarshalIndent(factors, "", "  ")
	if err != nil {
		return "", 0, err
	}

	prompt := fmt.Sprintf(recommendPromptTemplate, factorsJSON, metricsJSON)
	text, err := s.chatModel.Complete(ctx, prompt)
	if err != nil {
		return "", 0, fmt.Errorf("failed to generate recommendation: %w", domain.ErrAIProvider)
	}

	var rec struct {
		CoachingTip           string `json:"coaching_tip"`
		SleepImprovementScore int    `json:"sleep_improvement_score"`
	}
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		span.SetAttributes(attribute.Bool("recommendation.degraded", true))
		return text, defaultImprovementScore, nil
	}

	if rec.CoachingTip == "" {
		rec.CoachingTip = "No tip generated."
	}
	if rec.SleepImprovementScore == 0 {
		rec.SleepImprovementScore = defaultImprovementScore
	}
	return rec.CoachingTip, rec.SleepImprovementScore, nil
}

func (s *insightsService) Latest(ctx context.Context, userID string) (*domain.Insight, error) {
	return s.insightRepo.Latest(ctx, userID)
}
