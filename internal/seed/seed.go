package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/dreamwell/sleep-coach/internal/domain"
	"github.com/dreamwell/sleep-coach/internal/repository"
	"github.com/google/uuid"
)

const seededDays = 14

// Run seeds the log store with sample entries for demo users. Users that
// already have entries are left alone, so repeated startups don't grow
// the fixtures.
func Run(ctx context.Context, logRepo repository.SleepLogRepository) error {
	users := []string{
		uuid.MustParse("11111111-1111-1111-1111-111111111111").String(),
		uuid.MustParse("22222222-2222-2222-2222-222222222222").String(),
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, userID := range users {
		existing, err := logRepo.List(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to check logs for %s: %w", userID, err)
		}
		if len(existing) > 0 {
			continue
		}
		if err := seedUser(ctx, logRepo, userID, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedUser(ctx context.Context, logRepo repository.SleepLogRepository, userID string, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := seededDays - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		wake := fmt.Sprintf("%02d:%02d", 6+rng.Intn(2), rng.Intn(60))

		entry := domain.SleepLogEntry{
			Date:           date.Format("2006-01-02"),
			Duration:       6 + rng.Float64()*3,
			Bedtime:        fmt.Sprintf("%02d:%02d", 22+rng.Intn(2), rng.Intn(60)),
			WakeTime:       &wake,
			CaffeineIntake: float64(rng.Intn(4)),
			StressLevel:    1 + rng.Intn(10),
			ScreenTime:     rng.Float64() * 3,
		}
		if err := logRepo.Append(ctx, userID, entry); err != nil {
			return fmt.Errorf("failed to seed log for %s: %w", userID, err)
		}
	}
	return nil
}
