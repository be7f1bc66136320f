package models

import "time"

type Workout struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Type      string    `bson:"type" json:"type"`         // free-form label, e.g. "HIIT Cardio"
	Duration  int       `bson:"duration" json:"duration"` // minutes
	Calories  int       `bson:"calories" json:"calories"`
	Notes     string    `bson:"notes" json:"notes"`
	Date      string    `bson:"date" json:"date"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

func (w Workout) Owner() string    { return w.UserID }
func (w Workout) RecordID() string { return w.ID }
func (w Workout) Day() string      { return w.Date }

// HeatmapDay aggregates the workouts of one calendar day.
type HeatmapDay struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Calories int    `json:"calories"`
	Duration int    `json:"duration"`
}
