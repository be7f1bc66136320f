package models

import "time"

// StepsEntry and WaterEntry are unique per (user_id, date).
type StepsEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Steps     int       `bson:"steps" json:"steps"`
	Date      string    `bson:"date" json:"date"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (s StepsEntry) Owner() string                     { return s.UserID }
func (s StepsEntry) RecordID() string                  { return s.ID }
func (s StepsEntry) Day() string                       { return s.Date }
func (s StepsEntry) WithRecordID(id string) StepsEntry { s.ID = id; return s }

type WaterEntry struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Glasses   int       `bson:"glasses" json:"glasses"`
	Date      string    `bson:"date" json:"date"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (w WaterEntry) Owner() string                     { return w.UserID }
func (w WaterEntry) RecordID() string                  { return w.ID }
func (w WaterEntry) Day() string                       { return w.Date }
func (w WaterEntry) WithRecordID(id string) WaterEntry { w.ID = id; return w }
