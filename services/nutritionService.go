package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

type NutritionInput struct {
	Mode     string   `json:"mode"`
	Calories *float64 `json:"calories" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein" validate:"omitempty,gte=0"`
	Fat      *float64 `json:"fat" validate:"omitempty,gte=0"`
	Date     string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// MacroCalories is 4 kcal per gram of carbs and protein and 9 per gram of
// fat, rounded to a whole kcal.
func MacroCalories(carbs, protein, fat float64) float64 {
	return math.Round(carbs*4 + protein*4 + fat*9)
}

// ManualTotal derives the day's total. Mode "macros" computes calories from
// the macros; any other mode takes calories as given with zero macros.
func ManualTotal(in NutritionInput) models.NutritionTotal {
	if in.Mode == models.NutritionModeMacros {
		c, p, f := valueOrZero(in.Carbs), valueOrZero(in.Protein), valueOrZero(in.Fat)
		return models.NutritionTotal{Calories: MacroCalories(c, p, f), Carbs: c, Protein: p, Fat: f}
	}
	return models.NutritionTotal{Calories: valueOrZero(in.Calories)}
}

// LogNutritionManual replaces the day's nutrition with a single manual meal.
func (s *Services) LogNutritionManual(ctx context.Context, userID string, in NutritionInput) (*models.NutritionResult, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(in.Date)
	if err != nil {
		return nil, err
	}

	total := ManualTotal(in)
	entry := models.NutritionEntry{
		ID:     uuid.NewString(),
		UserID: userID,
		Date:   date,
		Meals: []models.Meal{{
			Name:     models.ManualEntryMealName,
			Calories: total.Calories,
			Carbs:    total.Carbs,
			Protein:  total.Protein,
			Fat:      total.Fat,
		}},
		Total:     total,
		Source:    models.NutritionSourceManual,
		UpdatedAt: s.clock.Now(),
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.store.Nutrition.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("put nutrition: %w", err)
	}
	s.notifier.Notify(userID, "nutrition", date)
	return &models.NutritionResult{Total: total, Date: date, Source: models.NutritionSourceManual}, nil
}

// CopyNutritionFromYesterday clones the previous day's record onto date.
func (s *Services) CopyNutritionFromYesterday(ctx context.Context, userID, date string) (*models.NutritionResult, error) {
	date, err := s.dateOrToday(date)
	if err != nil {
		return nil, err
	}
	yesterday, err := helpers.ShiftDate(date, -1)
	if err != nil {
		return nil, invalid("date must be a date in YYYY-MM-DD form")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	prev, err := s.store.Nutrition.Get(ctx, repository.DayKey{UserID: userID, Date: yesterday})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load nutrition: %w", err)
	}
	if err != nil || prev.Total.Calories == 0 {
		return nil, notFound("No nutrition data found for previous day")
	}

	meals := make([]models.Meal, len(prev.Meals))
	copy(meals, prev.Meals)
	clone := models.NutritionEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		Meals:     meals,
		Total:     prev.Total,
		Source:    models.NutritionSourceCopied,
		UpdatedAt: s.clock.Now(),
	}
	if _, err := s.store.Nutrition.Put(ctx, clone); err != nil {
		return nil, fmt.Errorf("put nutrition: %w", err)
	}
	s.notifier.Notify(userID, "nutrition", date)
	return &models.NutritionResult{
		Total:    prev.Total,
		Date:     date,
		Source:   models.NutritionSourceCopied,
		FromDate: yesterday,
	}, nil
}

// GetNutrition returns the day's record, or no meals and zero totals.
func (s *Services) GetNutrition(ctx context.Context, userID, date string) (*models.NutritionEntry, error) {
	date, err := s.dateOrToday(date)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	entry, err := s.store.Nutrition.Get(ctx, repository.DayKey{UserID: userID, Date: date})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.NutritionEntry{UserID: userID, Date: date, Meals: []models.Meal{}}, nil
		}
		return nil, fmt.Errorf("load nutrition: %w", err)
	}
	if entry.Meals == nil {
		entry.Meals = []models.Meal{}
	}
	return &entry, nil
}
