package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

type StepsInput struct {
	Steps int    `json:"steps" validate:"gte=0"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type WaterInput struct {
	Glasses int    `json:"glasses" validate:"gte=0"`
	Date    string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// LogSteps stores the step count for a day, replacing any earlier count.
func (s *Services) LogSteps(ctx context.Context, userID string, in StepsInput) (*models.StepsEntry, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(in.Date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entry, err := s.store.Steps.Put(ctx, models.StepsEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Steps:     in.Steps,
		Date:      date,
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("put steps: %w", err)
	}
	s.notifier.Notify(userID, "steps", date)
	return &entry, nil
}

// ListSteps returns the newest days first.
func (s *Services) ListSteps(ctx context.Context, userID string) ([]models.StepsEntry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out, err := s.store.Steps.List(ctx, userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list steps: %w", err)
	}
	return out, nil
}

// SetWater stores the glass count for a day, replacing any earlier count.
func (s *Services) SetWater(ctx context.Context, userID string, in WaterInput) (*models.WaterEntry, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(in.Date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entry, err := s.store.Water.Put(ctx, models.WaterEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Glasses:   in.Glasses,
		Date:      date,
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("put water: %w", err)
	}
	s.notifier.Notify(userID, "water", date)
	return &entry, nil
}

// GetWater returns the day's entry, or zero glasses when nothing was logged.
func (s *Services) GetWater(ctx context.Context, userID, date string) (*models.WaterEntry, error) {
	date, err := s.dateOrToday(date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entry, err := s.store.Water.Get(ctx, repository.DayKey{UserID: userID, Date: date})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.WaterEntry{UserID: userID, Date: date}, nil
		}
		return nil, fmt.Errorf("load water: %w", err)
	}
	return &entry, nil
}
