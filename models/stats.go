package models

type ProjectionKind string

const (
	ProjectionActual    ProjectionKind = "actual"
	ProjectionProjected ProjectionKind = "projected"
)

// ProjectionPoint is either a logged weight (Kind actual) or a forecast
// (Kind projected) for one week of the 24-week chart.
type ProjectionPoint struct {
	Week   int            `json:"week"`
	Kind   ProjectionKind `json:"kind"`
	Weight float64        `json:"weight"`
	BMI    float64        `json:"bmi"`
}

type StatsSnapshot struct {
	BMI                 float64           `json:"bmi"`
	BMICategory         string            `json:"bmi_category"`
	BMIColor            string            `json:"bmi_color"`
	BMR                 int               `json:"bmr"`
	TDEE                int               `json:"tdee"`
	Deficit             int               `json:"deficit"`
	BurnedToday         int               `json:"burned_today"`
	BurnedWorkouts      int               `json:"burned_workouts"`
	StepsCalories       int               `json:"steps_calories"`
	Eaten               float64           `json:"eaten"`
	HasNutrition        bool              `json:"has_nutrition"`
	Streak              int               `json:"streak"`
	WeightToLose        float64           `json:"weight_to_lose"`
	DaysToGoal          int               `json:"days_to_goal"`
	WeeksToGoal         int               `json:"weeks_to_goal"`
	WeeklyLoss          float64           `json:"weekly_loss"`
	Projection          []ProjectionPoint `json:"projection"`
	GoalKg              float64           `json:"goal_kg"`
	CurrentWeight       float64           `json:"current_weight"`
	StepsToday          int               `json:"steps_today"`
	GymDaysSaved        int               `json:"gym_days_saved"`
	WaterGlasses        int               `json:"water_glasses"`
	HealthScore         int               `json:"health_score"`
	PlannedDailyDeficit int               `json:"planned_daily_deficit"`
	Date                string            `json:"date"`
}
