package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/models"
	"github.com/google/uuid"
)

var (
	demoWeights  = []float64{92.0, 91.2, 90.5, 90.0, 89.5, 89.0}
	demoWorkouts = []struct {
		Type     string
		Duration int
		Calories int
		Notes    string
	}{
		{"Chest + Triceps", 55, 420, "Heavy bench day"},
		{"HIIT Cardio", 30, 350, "Sprint intervals"},
		{"Back + Biceps", 50, 380, "Deadlift PR!"},
	}
)

// seedDemoData gives a new account six weekly weigh-ins ending today and a
// workout on each of the last three days.
func (s *Services) seedDemoData(ctx context.Context, userID string) error {
	today := s.clock.Now().UTC().Truncate(24 * time.Hour)

	for i, w := range demoWeights {
		at := today.AddDate(0, 0, -7*(len(demoWeights)-1-i)).Add(8 * time.Hour)
		entry := models.WeightLog{
			ID:        uuid.NewString(),
			UserID:    userID,
			Weight:    w,
			Date:      at.Format(helpers.DateLayout),
			Timestamp: at,
		}
		if err := s.store.WeightLogs.Insert(ctx, entry); err != nil {
			return fmt.Errorf("seed weight log: %w", err)
		}
	}

	for i, w := range demoWorkouts {
		at := today.AddDate(0, 0, i-(len(demoWorkouts)-1)).Add(10 * time.Hour)
		workout := models.Workout{
			ID:        uuid.NewString(),
			UserID:    userID,
			Type:      w.Type,
			Duration:  w.Duration,
			Calories:  w.Calories,
			Notes:     w.Notes,
			Date:      at.Format(helpers.DateLayout),
			Timestamp: at,
		}
		if err := s.store.Workouts.Insert(ctx, workout); err != nil {
			return fmt.Errorf("seed workout: %w", err)
		}
	}

	s.log.WithField("user_id", userID).Info("seeded demo data")
	return nil
}
