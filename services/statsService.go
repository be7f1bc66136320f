package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
)

const (
	activityFactor  = 1.2  // sedentary
	kcalPerKg       = 7700 // energy in one kg of body fat
	gymBonusDeficit = 300  // extra kcal per day from training
	projectionWeeks = 24
	actualPoints    = 6

	strideFactor    = 0.413
	walkingSpeedKmh = 4.8
	walkingMET      = 3.5

	stepsGoal       = 10000
	burnGoal        = 500
	streakGoal      = 7
	untrackedPoints = 12
)

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// BMI is weight over height in metres squared, to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return round1(weightKg / (m * m))
}

// BMICategory maps a BMI onto its label and display colour. Lower bounds are
// inclusive: 25.0 is Overweight.
func BMICategory(bmi float64) (category, color string) {
	switch {
	case bmi < 18.5:
		return "Underweight", "blue"
	case bmi < 25:
		return "Normal", "green"
	case bmi < 30:
		return "Overweight", "orange"
	default:
		return "Obese", "red"
	}
}

// BMR uses the Mifflin-St Jeor equation.
func BMR(weightKg, heightCm float64, age int, gender string) int {
	v := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == models.GenderMale {
		v += 5
	} else {
		v -= 161
	}
	return int(math.Round(v))
}

func TDEE(bmr int) int {
	return int(math.Round(float64(bmr) * activityFactor))
}

// StepsCalories estimates walking energy from a step count: stride from
// height, a 4.8 km/h pace and MET 3.5.
func StepsCalories(steps int, weightKg, heightCm float64) int {
	strideM := heightCm * strideFactor / 100
	distanceKm := float64(steps) * strideM / 1000
	hours := distanceKm / walkingSpeedKmh
	return int(math.Round(walkingMET * weightKg * hours))
}

// WeightStreak counts consecutive logged days ending today or yesterday.
func WeightStreak(dates []string, today string) int {
	ref, err := helpers.ParseDate(today)
	if err != nil {
		return 0
	}

	seen := make(map[string]bool, len(dates))
	unique := make([]string, 0, len(dates))
	for _, d := range dates {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(unique)))

	streak := 0
	prev := ref
	for i, ds := range unique {
		d, err := helpers.ParseDate(ds)
		if err != nil {
			break
		}
		if i == 0 {
			if helpers.DaysBetween(d, ref) > 1 {
				break
			}
		} else if helpers.DaysBetween(d, prev) != 1 {
			break
		}
		streak++
		prev = d
	}
	return streak
}

// WeeklyLoss converts a daily deficit into kg lost per week.
func WeeklyLoss(dailyDeficit int) float64 {
	if dailyDeficit <= 0 {
		return 0
	}
	return float64(dailyDeficit*7) / kcalPerKg
}

// WeeksToGoal is zero when no loss is planned.
func WeeksToGoal(weightToLose, weeklyLoss float64) int {
	if weeklyLoss <= 0 {
		return 0
	}
	return int(math.Round(weightToLose / weeklyLoss))
}

// Projection builds the 24-week chart: up to six logged weights (oldest
// first), then forecasts from the current weight that never go below goal.
func Projection(logs []models.WeightLog, currentWeight, goalKg, weeklyLoss, heightCm float64) []models.ProjectionPoint {
	if len(logs) > actualPoints {
		logs = logs[len(logs)-actualPoints:]
	}
	points := make([]models.ProjectionPoint, 0, projectionWeeks)
	for i, l := range logs {
		points = append(points, models.ProjectionPoint{
			Week:   i + 1,
			Kind:   models.ProjectionActual,
			Weight: l.Weight,
			BMI:    BMI(l.Weight, heightCm),
		})
	}
	current := currentWeight
	for week := len(logs) + 1; week <= projectionWeeks; week++ {
		current = math.Max(current-weeklyLoss, goalKg)
		points = append(points, models.ProjectionPoint{
			Week:   week,
			Kind:   models.ProjectionProjected,
			Weight: round1(current),
			BMI:    BMI(current, heightCm),
		})
	}
	return points
}

type HealthInputs struct {
	BMI          float64
	Steps        int
	BurnedToday  int
	HasNutrition bool
	Eaten        float64
	CalTarget    int
	Streak       int
}

// HealthScore adds five weighted components into a 0-100 score.
func HealthScore(in HealthInputs) int {
	bmiScore := 25.0
	if in.BMI < 18.5 || in.BMI >= 25 {
		bmiScore = math.Max(0, 25-math.Abs(in.BMI-22)*2)
	}
	stepsScore := math.Min(float64(in.Steps)/stepsGoal, 1) * 15
	burnScore := math.Min(float64(in.BurnedToday)/burnGoal, 1) * 10

	nutritionScore := float64(untrackedPoints)
	if in.HasNutrition {
		nutritionScore = 0
		if in.CalTarget > 0 {
			target := float64(in.CalTarget)
			nutritionScore = math.Max(0, 25-math.Abs(in.Eaten-target)/target*25)
		}
	}
	streakScore := math.Min(float64(in.Streak)/streakGoal, 1) * 25

	total := bmiScore + stepsScore + burnScore + nutritionScore + streakScore
	return int(math.Round(math.Max(0, math.Min(total, 100))))
}

// Stats derives the dashboard snapshot for date (today when empty). Records
// of the viewed date feed the energy balance; the streak always counts back
// from the real current date.
func (s *Services) Stats(ctx context.Context, userID, date string) (*models.StatsSnapshot, error) {
	date, err := s.dateOrToday(date)
	if err != nil {
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
	if profile.HeightCm <= 0 {
		return nil, invalid("profile height must be greater than 0")
	}

	weight := profile.Weight
	height := profile.HeightCm

	bmi := BMI(weight, height)
	category, color := BMICategory(bmi)
	bmr := BMR(weight, height, profile.Age, profile.Gender)
	tdee := TDEE(bmr)

	workouts, err := s.store.Workouts.List(ctx, userID, repository.Query{Date: date, Limit: 100})
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	burnedWorkouts := 0
	for _, w := range workouts {
		burnedWorkouts += w.Calories
	}

	key := repository.DayKey{UserID: userID, Date: date}
	steps := 0
	if entry, err := s.store.Steps.Get(ctx, key); err == nil {
		steps = entry.Steps
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load steps: %w", err)
	}
	stepsCalories := StepsCalories(steps, weight, height)
	burnedToday := burnedWorkouts + stepsCalories

	hasNutrition := false
	eaten := 0.0
	if entry, err := s.store.Nutrition.Get(ctx, key); err == nil {
		if entry.Total.Calories != 0 {
			hasNutrition = true
			eaten = entry.Total.Calories
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load nutrition: %w", err)
	}

	// Without a nutrition log the calorie target stands in for intake.
	var deficit float64
	if hasNutrition {
		deficit = float64(tdee+burnedToday) - eaten
	} else {
		deficit = float64(tdee + burnedToday - profile.CalTarget)
	}

	// Every log, newest first: a streak is not bounded by any window.
	logs, err := s.store.WeightLogs.List(ctx, userID, repository.Query{})
	if err != nil {
		return nil, fmt.Errorf("list weight logs: %w", err)
	}
	dates := make([]string, len(logs))
	for i, l := range logs {
		dates[i] = l.Date
	}
	streak := WeightStreak(dates, s.today())

	recent := slices.Clone(logs[:min(len(logs), actualPoints)])
	slices.Reverse(recent)

	weightToLose := math.Max(weight-profile.GoalKg, 0)
	plannedDeficit := tdee - profile.CalTarget
	if plannedDeficit < 0 {
		plannedDeficit = 0
	}
	weeklyLoss := WeeklyLoss(plannedDeficit)
	weeksToGoal := WeeksToGoal(weightToLose, weeklyLoss)
	daysToGoal := weeksToGoal * 7

	gymWeeks := WeeksToGoal(weightToLose, WeeklyLoss(plannedDeficit+gymBonusDeficit))
	gymDaysSaved := daysToGoal - gymWeeks*7
	if gymDaysSaved < 0 {
		gymDaysSaved = 0
	}

	water := 0
	if entry, err := s.store.Water.Get(ctx, key); err == nil {
		water = entry.Glasses
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load water: %w", err)
	}

	return &models.StatsSnapshot{
		BMI:            bmi,
		BMICategory:    category,
		BMIColor:       color,
		BMR:            bmr,
		TDEE:           tdee,
		Deficit:        int(math.Round(deficit)),
		BurnedToday:    burnedToday,
		BurnedWorkouts: burnedWorkouts,
		StepsCalories:  stepsCalories,
		Eaten:          eaten,
		HasNutrition:   hasNutrition,
		Streak:         streak,
		WeightToLose:   round1(weightToLose),
		DaysToGoal:     daysToGoal,
		WeeksToGoal:    weeksToGoal,
		WeeklyLoss:     round2(weeklyLoss),
		Projection:     Projection(recent, weight, profile.GoalKg, weeklyLoss, height),
		GoalKg:         profile.GoalKg,
		CurrentWeight:  weight,
		StepsToday:     steps,
		GymDaysSaved:   gymDaysSaved,
		WaterGlasses:   water,
		HealthScore: HealthScore(HealthInputs{
			BMI:          bmi,
			Steps:        steps,
			BurnedToday:  burnedToday,
			HasNutrition: hasNutrition,
			Eaten:        eaten,
			CalTarget:    profile.CalTarget,
			Streak:       streak,
		}),
		PlannedDailyDeficit: plannedDeficit,
		Date:                date,
	}, nil
}
