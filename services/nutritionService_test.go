package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adityab94/FitForge/models"
)

func TestMacroCalories(t *testing.T) {
	if got := MacroCalories(100, 50, 20); got != 780 {
		t.Fatalf("MacroCalories(100, 50, 20) = %v, want 780", got)
	}
	if got := MacroCalories(10.3, 0, 0.1); got != 42 {
		t.Fatalf("MacroCalories(10.3, 0, 0.1) = %v, want 42", got)
	}
}

func TestManualTotalModes(t *testing.T) {
	macros := ManualTotal(NutritionInput{Mode: models.NutritionModeMacros, Calories: ptr(5000.0), Carbs: ptr(100.0), Protein: ptr(50.0), Fat: ptr(20.0)})
	if macros.Calories != 780 || macros.Carbs != 100 {
		t.Fatalf("macros total = %+v", macros)
	}
	total := ManualTotal(NutritionInput{Mode: models.NutritionModeTotal, Calories: ptr(1650.0), Carbs: ptr(100.0)})
	if total != (models.NutritionTotal{Calories: 1650}) {
		t.Fatalf("calorie total = %+v", total)
	}
}

func TestLogNutritionManualReplacesDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.LogNutritionManual(ctx, "u1", NutritionInput{Mode: "total", Calories: ptr(1500.0)}); err != nil {
		t.Fatal(err)
	}
	res, err := f.svc.LogNutritionManual(ctx, "u1", NutritionInput{Mode: "macros", Carbs: ptr(100.0), Protein: ptr(50.0), Fat: ptr(20.0)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Date != "2026-02-19" || res.Source != models.NutritionSourceManual || res.Total.Calories != 780 {
		t.Fatalf("result = %+v", res)
	}

	day, err := f.svc.GetNutrition(ctx, "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(day.Meals) != 1 || day.Meals[0].Name != models.ManualEntryMealName || day.Total.Calories != 780 {
		t.Fatalf("stored day = %+v", day)
	}

	if _, err := f.svc.LogNutritionManual(ctx, "u1", NutritionInput{Mode: "total", Calories: ptr(-1.0)}); !errors.Is(err, ErrValidation) {
		t.Fatalf("negative calories err = %v", err)
	}
}

func TestLogNutritionWithoutModeTakesCalories(t *testing.T) {
	f := newFixture(t)
	res, err := f.svc.LogNutritionManual(context.Background(), "u1", NutritionInput{Calories: ptr(1650.0), Carbs: ptr(100.0)})
	if err != nil {
		t.Fatal(err)
	}
	if res.Total != (models.NutritionTotal{Calories: 1650}) {
		t.Fatalf("total = %+v, want calories taken as given", res.Total)
	}
}

func TestGetNutritionEmptyDay(t *testing.T) {
	f := newFixture(t)
	day, err := f.svc.GetNutrition(context.Background(), "u1", "2026-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if day.Date != "2026-01-01" || day.Meals == nil || len(day.Meals) != 0 || day.Total.Calories != 0 {
		t.Fatalf("empty day = %+v", day)
	}
}

func TestCopyNutritionFromYesterday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CopyNutritionFromYesterday(ctx, "u1", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("no record err = %v", err)
	}

	if _, err := f.svc.LogNutritionManual(ctx, "u1", NutritionInput{Mode: "total", Calories: ptr(0.0), Date: "2026-02-18"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.CopyNutritionFromYesterday(ctx, "u1", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("zero calorie record err = %v", err)
	}

	if _, err := f.svc.LogNutritionManual(ctx, "u1", NutritionInput{Mode: "total", Calories: ptr(2100.0), Date: "2026-02-18"}); err != nil {
		t.Fatal(err)
	}
	res, err := f.svc.CopyNutritionFromYesterday(ctx, "u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.FromDate != "2026-02-18" || res.Date != "2026-02-19" || res.Source != models.NutritionSourceCopied || res.Total.Calories != 2100 {
		t.Fatalf("copy result = %+v", res)
	}

	today, err := f.svc.GetNutrition(ctx, "u1", "2026-02-19")
	if err != nil {
		t.Fatal(err)
	}
	yesterday, err := f.svc.GetNutrition(ctx, "u1", "2026-02-18")
	if err != nil {
		t.Fatal(err)
	}
	if today.ID == yesterday.ID || len(today.Meals) != 1 || today.Source != models.NutritionSourceCopied {
		t.Fatalf("copied day = %+v", today)
	}

	// Copying across a month boundary.
	if _, err := f.svc.LogNutritionManual(ctx, "u1", NutritionInput{Mode: "total", Calories: ptr(1800.0), Date: "2026-02-28"}); err != nil {
		t.Fatal(err)
	}
	res, err = f.svc.CopyNutritionFromYesterday(ctx, "u1", "2026-03-01")
	if err != nil {
		t.Fatal(err)
	}
	if res.FromDate != "2026-02-28" {
		t.Fatalf("from date = %s", res.FromDate)
	}
}
