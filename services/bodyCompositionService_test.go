package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adityab94/FitForge/models"
)

func TestBodyFat(t *testing.T) {
	tests := []struct {
		name     string
		gender   string
		waist    float64
		neck     float64
		hip      float64
		height   float64
		want     float64
		category string
	}{
		{"male above average", models.GenderMale, 88, 38, 0, 175, 25.8, models.BodyFatAboveAverage},
		{"male average", models.GenderMale, 80, 38, 0, 180, 18.4, models.BodyFatAverage},
		{"male athletic", models.GenderMale, 75, 38, 0, 180, 13.7, models.BodyFatAthletic},
		{"female with hip", models.GenderFemale, 60, 33, 85, 172, 37.7, models.BodyFatAboveAverage},
		{"female without hip clamps low", models.GenderFemale, 70, 34, 0, 168, 2, models.BodyFatEssential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bf, err := BodyFat(tt.gender, tt.waist, tt.neck, tt.hip, tt.height)
			if err != nil {
				t.Fatal(err)
			}
			if bf != tt.want {
				t.Fatalf("BodyFat = %v, want %v", bf, tt.want)
			}
			if got := BodyFatCategory(tt.gender, bf); got != tt.category {
				t.Fatalf("category = %s, want %s", got, tt.category)
			}
		})
	}
}

func TestBodyFatRejectsImpossibleInput(t *testing.T) {
	if _, err := BodyFat(models.GenderMale, 38, 40, 0, 175); !errors.Is(err, ErrValidation) {
		t.Fatalf("neck over waist err = %v", err)
	}
	if _, err := BodyFat(models.GenderFemale, 10, 40, 20, 165); !errors.Is(err, ErrValidation) {
		t.Fatalf("neck over waist plus hip err = %v", err)
	}
	if _, err := BodyFat(models.GenderMale, 90, 40, 0, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero height err = %v", err)
	}
}

func TestBodyFatCategoryBounds(t *testing.T) {
	if got := BodyFatCategory(models.GenderMale, 6); got != models.BodyFatAthletic {
		t.Fatalf("male 6%% = %s", got)
	}
	if got := BodyFatCategory(models.GenderFemale, 24.9); got != models.BodyFatFitness {
		t.Fatalf("female 24.9%% = %s", got)
	}
	if got := BodyFatCategory(models.GenderFemale, 32); got != models.BodyFatAboveAverage {
		t.Fatalf("female 32%% = %s", got)
	}
}

func TestCalculateBodyComposition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CalculateBodyComposition(ctx, "u1", BodyCompositionInput{Waist: 88, Neck: 38}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing profile err = %v", err)
	}

	f.withProfile(t, "u1")
	res, err := f.svc.CalculateBodyComposition(ctx, "u1", BodyCompositionInput{Waist: 88, Neck: 38})
	if err != nil {
		t.Fatal(err)
	}
	want := models.BodyCompositionResult{BodyFat: 25.8, Category: models.BodyFatAboveAverage, LeanMass: 66.8, FatMass: 23.2}
	if *res != want {
		t.Fatalf("result = %+v, want %+v", *res, want)
	}

	history, err := f.svc.ListBodyComposition(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Date != "2026-02-19" || history[0].BodyFat != 25.8 {
		t.Fatalf("history = %+v", history)
	}

	if _, err := f.svc.CalculateBodyComposition(ctx, "u1", BodyCompositionInput{Waist: 0, Neck: 38}); !errors.Is(err, ErrValidation) {
		t.Fatalf("zero waist err = %v", err)
	}
}
