package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

const (
	listLimit   = 100
	heatmapDays = 84
)

type WorkoutInput struct {
	Type     string `json:"type" validate:"required,max=100"`
	Duration int    `json:"duration" validate:"gte=0"`
	Calories int    `json:"calories" validate:"gte=0"`
	Notes    string `json:"notes" validate:"max=1000"`
}

func (s *Services) AddWorkout(ctx context.Context, userID string, in WorkoutInput) (*models.Workout, error) {
	in.Type = strings.TrimSpace(in.Type)
	if err := check(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.clock.Now()
	w := models.Workout{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      in.Type,
		Duration:  in.Duration,
		Calories:  in.Calories,
		Notes:     in.Notes,
		Date:      now.Format(helpers.DateLayout),
		Timestamp: now,
	}
	if err := s.store.Workouts.Insert(ctx, w); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}
	s.notifier.Notify(userID, "workouts", w.Date)
	return &w, nil
}

// ListWorkouts returns the newest workouts first.
func (s *Services) ListWorkouts(ctx context.Context, userID string) ([]models.Workout, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	workouts, err := s.store.Workouts.List(ctx, userID, repository.Query{Limit: listLimit})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

func (s *Services) DeleteWorkout(ctx context.Context, userID, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.store.Workouts.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Workout not found")
		}
		return fmt.Errorf("delete workout: %w", err)
	}
	s.notifier.Notify(userID, "workouts", "")
	return nil
}

// Heatmap buckets the workouts of the last 84 days, today included. Days
// without workouts are reported as zeros.
func (s *Services) Heatmap(ctx context.Context, userID string) ([]models.HeatmapDay, error) {
	today := s.clock.Now().UTC().Truncate(24 * time.Hour)
	start := today.AddDate(0, 0, -(heatmapDays - 1))

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	workouts, err := s.store.Workouts.List(ctx, userID, repository.Query{
		From: start.Format(helpers.DateLayout),
		To:   today.Format(helpers.DateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	byDate := make(map[string]*models.HeatmapDay)
	for _, w := range workouts {
		day, ok := byDate[w.Date]
		if !ok {
			day = &models.HeatmapDay{Date: w.Date}
			byDate[w.Date] = day
		}
		day.Count++
		day.Calories += w.Calories
		day.Duration += w.Duration
	}

	grid := make([]models.HeatmapDay, heatmapDays)
	for i := range grid {
		date := start.AddDate(0, 0, i).Format(helpers.DateLayout)
		if day, ok := byDate[date]; ok {
			grid[i] = *day
		} else {
			grid[i] = models.HeatmapDay{Date: date}
		}
	}
	return grid, nil
}
