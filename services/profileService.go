package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
)

// Profile defaults for a new account.
const (
	defaultWeight    = 90.0
	defaultHeightCm  = 175.0
	defaultAge       = 30
	defaultCalTarget = 1800
	defaultGoalKg    = 80.0
)

func defaultProfile(userID, name string) *models.Profile {
	return &models.Profile{
		UserID:    userID,
		Name:      name,
		Weight:    defaultWeight,
		HeightCm:  defaultHeightCm,
		Age:       defaultAge,
		Gender:    models.GenderMale,
		CalTarget: defaultCalTarget,
		GoalKg:    defaultGoalKg,
	}
}

func (s *Services) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.store.Profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Profile not found")
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// UpdateProfile applies the set fields. A new weight is also appended to the
// weight log under today's date.
func (s *Services) UpdateProfile(ctx context.Context, userID string, update models.ProfileUpdate) (*models.Profile, error) {
	if err := check(update); err != nil {
		return nil, err
	}
	if len(update.Fields()) == 0 {
		return s.GetProfile(ctx, userID)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	p, err := s.store.Profiles.Update(ctx, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Profile not found")
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.notifier.Notify(userID, "profile", "")

	if update.Weight != nil {
		entry := s.newWeightLog(userID, *update.Weight)
		if err := s.store.WeightLogs.Insert(ctx, entry); err != nil {
			return nil, fmt.Errorf("insert weight log: %w", err)
		}
		s.notifier.Notify(userID, "weight_logs", entry.Date)
	}
	return p, nil
}
