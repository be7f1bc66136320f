package services

import (
	"context"
	"fmt"

	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

type MeasurementInput struct {
	Waist *float64 `json:"waist" validate:"omitempty,gt=0"`
	Chest *float64 `json:"chest" validate:"omitempty,gt=0"`
	Hips  *float64 `json:"hips" validate:"omitempty,gt=0"`
	Arms  *float64 `json:"arms" validate:"omitempty,gt=0"`
}

func (s *Services) AddMeasurement(ctx context.Context, userID string, in MeasurementInput) (*models.Measurement, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	m := models.Measurement{
		ID:     uuid.NewString(),
		UserID: userID,
		Waist:  in.Waist,
		Chest:  in.Chest,
		Hips:   in.Hips,
		Arms:   in.Arms,
		Date:   s.today(),
	}
	if err := s.store.Measurements.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("insert measurement: %w", err)
	}
	s.notifier.Notify(userID, "measurements", m.Date)
	return &m, nil
}

func (s *Services) ListMeasurements(ctx context.Context, userID string) ([]models.Measurement, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out, err := s.store.Measurements.List(ctx, userID, repository.Query{Limit: listLimit})
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return out, nil
}
