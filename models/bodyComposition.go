package models

const (
	BodyFatEssential    = "Essential"
	BodyFatAthletic     = "Athletic"
	BodyFatFitness      = "Fitness"
	BodyFatAverage      = "Average"
	BodyFatAboveAverage = "Above Average"
)

type BodyComposition struct {
	ID       string   `bson:"id" json:"id"`
	UserID   string   `bson:"user_id" json:"user_id"`
	BodyFat  float64  `bson:"body_fat" json:"body_fat"` // percent, one decimal
	Category string   `bson:"category" json:"category"`
	Waist    float64  `bson:"waist" json:"waist"`
	Neck     float64  `bson:"neck" json:"neck"`
	Hip      *float64 `bson:"hip,omitempty" json:"hip"`
	Date     string   `bson:"date" json:"date"`
}

func (b BodyComposition) Owner() string    { return b.UserID }
func (b BodyComposition) RecordID() string { return b.ID }
func (b BodyComposition) Day() string      { return b.Date }

type BodyCompositionResult struct {
	BodyFat  float64 `json:"body_fat"`
	Category string  `json:"category"`
	LeanMass float64 `json:"lean_mass"`
	FatMass  float64 `json:"fat_mass"`
}
