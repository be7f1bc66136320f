package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

const weightLogLimit = 1000

type WeightInput struct {
	Weight float64 `json:"weight" validate:"gt=0,lt=500"`
}

func (s *Services) newWeightLog(userID string, weight float64) models.WeightLog {
	now := s.clock.Now()
	return models.WeightLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Weight:    weight,
		Date:      now.Format(helpers.DateLayout),
		Timestamp: now,
	}
}

// AddWeight logs a weight for today and mirrors it onto the profile.
func (s *Services) AddWeight(ctx context.Context, userID string, in WeightInput) (*models.WeightLog, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entry := s.newWeightLog(userID, in.Weight)
	if err := s.store.WeightLogs.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert weight log: %w", err)
	}
	weight := in.Weight
	if _, err := s.store.Profiles.Update(ctx, userID, models.ProfileUpdate{Weight: &weight}); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("update profile weight: %w", err)
	}
	s.notifier.Notify(userID, "weight_logs", entry.Date)
	return &entry, nil
}

// ListWeightLogs returns the newest weightLogLimit logs, oldest first.
func (s *Services) ListWeightLogs(ctx context.Context, userID string) ([]models.WeightLog, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	logs, err := s.store.WeightLogs.List(ctx, userID, repository.Query{Limit: weightLogLimit})
	if err != nil {
		return nil, fmt.Errorf("list weight logs: %w", err)
	}
	slices.Reverse(logs)
	return logs, nil
}
