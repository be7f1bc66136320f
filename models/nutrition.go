package models

import "time"

const (
	NutritionSourceManual = "manual"
	NutritionSourceCopied = "copied_from_yesterday"
	NutritionModeMacros   = "macros"
	NutritionModeTotal    = "total"
	ManualEntryMealName   = "Manual Entry"
)

type Meal struct {
	Name     string  `bson:"name" json:"name"`
	Calories float64 `bson:"calories" json:"calories"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Protein  float64 `bson:"protein" json:"protein"`
	Fat      float64 `bson:"fat" json:"fat"`
}

type NutritionTotal struct {
	Calories float64 `bson:"calories" json:"calories"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Protein  float64 `bson:"protein" json:"protein"`
	Fat      float64 `bson:"fat" json:"fat"`
}

// NutritionEntry is unique per (user_id, date).
type NutritionEntry struct {
	ID        string         `bson:"id" json:"id"`
	UserID    string         `bson:"user_id" json:"user_id"`
	Date      string         `bson:"date" json:"date"`
	Meals     []Meal         `bson:"meals" json:"meals"`
	Total     NutritionTotal `bson:"total" json:"total"`
	Source    string         `bson:"source" json:"source"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updated_at"`
}

func (n NutritionEntry) Owner() string    { return n.UserID }
func (n NutritionEntry) RecordID() string { return n.ID }
func (n NutritionEntry) Day() string      { return n.Date }
func (n NutritionEntry) WithRecordID(id string) NutritionEntry {
	n.ID = id
	return n
}

// NutritionResult is returned by the manual and copy operations.
type NutritionResult struct {
	Total    NutritionTotal `json:"total"`
	Date     string         `json:"date"`
	Source   string         `json:"source"`
	FromDate string         `json:"from_date,omitempty"`
}
