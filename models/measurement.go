package models

type Measurement struct {
	ID     string   `bson:"id" json:"id"`
	UserID string   `bson:"user_id" json:"user_id"`
	Waist  *float64 `bson:"waist,omitempty" json:"waist"`
	Chest  *float64 `bson:"chest,omitempty" json:"chest"`
	Hips   *float64 `bson:"hips,omitempty" json:"hips"`
	Arms   *float64 `bson:"arms,omitempty" json:"arms"`
	Date   string   `bson:"date" json:"date"`
}

func (m Measurement) Owner() string    { return m.UserID }
func (m Measurement) RecordID() string { return m.ID }
func (m Measurement) Day() string      { return m.Date }
