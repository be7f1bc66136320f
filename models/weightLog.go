package models

import "time"

type WeightLog struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Weight    float64   `bson:"weight" json:"weight"`
	Date      string    `bson:"date" json:"date"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

func (w WeightLog) Owner() string    { return w.UserID }
func (w WeightLog) RecordID() string { return w.ID }
func (w WeightLog) Day() string      { return w.Date }
