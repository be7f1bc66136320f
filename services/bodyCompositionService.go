package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

const bodyCompositionLimit = 20

type BodyCompositionInput struct {
	Waist float64  `json:"waist" validate:"gt=0"`
	Neck  float64  `json:"neck" validate:"gt=0"`
	Hip   *float64 `json:"hip" validate:"omitempty,gt=0"`
}

type threshold struct {
	below    float64
	category string
}

var (
	maleBodyFat = []threshold{
		{6, models.BodyFatEssential},
		{14, models.BodyFatAthletic},
		{18, models.BodyFatFitness},
		{25, models.BodyFatAverage},
	}
	femaleBodyFat = []threshold{
		{14, models.BodyFatEssential},
		{21, models.BodyFatAthletic},
		{25, models.BodyFatFitness},
		{32, models.BodyFatAverage},
	}
)

// BodyFat estimates body fat percent with the U.S. Navy method, clamped to
// [2, 60] and rounded to one decimal. Female estimates use hip; a missing hip
// counts as 0.
func BodyFat(gender string, waist, neck, hip, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, invalid("profile height must be greater than 0")
	}
	var bf float64
	if gender == models.GenderMale {
		span := waist - neck
		if span <= 0 {
			return 0, invalid("waist must be larger than neck")
		}
		bf = 86.010*math.Log10(span) - 70.041*math.Log10(heightCm) + 36.76
	} else {
		span := waist + hip - neck
		if span <= 0 {
			return 0, invalid("waist plus hip must be larger than neck")
		}
		bf = 163.205*math.Log10(span) - 97.684*math.Log10(heightCm) - 78.387
	}
	return math.Max(2, math.Min(round1(bf), 60)), nil
}

// BodyFatCategory returns the first category whose bound exceeds bf.
func BodyFatCategory(gender string, bf float64) string {
	table := femaleBodyFat
	if gender == models.GenderMale {
		table = maleBodyFat
	}
	for _, t := range table {
		if bf < t.below {
			return t.category
		}
	}
	return models.BodyFatAboveAverage
}

func (s *Services) CalculateBodyComposition(ctx context.Context, userID string, in BodyCompositionInput) (*models.BodyCompositionResult, error) {
	if err := check(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	profile, err := s.store.Profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("Profile not found")
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	bf, err := BodyFat(profile.Gender, in.Waist, in.Neck, valueOrZero(in.Hip), profile.HeightCm)
	if err != nil {
		return nil, err
	}
	category := BodyFatCategory(profile.Gender, bf)

	rec := models.BodyComposition{
		ID:       uuid.NewString(),
		UserID:   userID,
		BodyFat:  bf,
		Category: category,
		Waist:    in.Waist,
		Neck:     in.Neck,
		Hip:      in.Hip,
		Date:     s.today(),
	}
	if err := s.store.BodyComposition.Insert(ctx, rec); err != nil {
		return nil, fmt.Errorf("insert body composition: %w", err)
	}
	s.notifier.Notify(userID, "body_comp", rec.Date)

	return &models.BodyCompositionResult{
		BodyFat:  bf,
		Category: category,
		LeanMass: round1(profile.Weight * (1 - bf/100)),
		FatMass:  round1(profile.Weight * (bf / 100)),
	}, nil
}

// ListBodyComposition returns the 20 most recent records, newest first.
func (s *Services) ListBodyComposition(ctx context.Context, userID string) ([]models.BodyComposition, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	out, err := s.store.BodyComposition.List(ctx, userID, repository.Query{Limit: bodyCompositionLimit})
	if err != nil {
		return nil, fmt.Errorf("list body composition: %w", err)
	}
	return out, nil
}
