package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type Profile struct {
	UserID    string    `bson:"user_id" json:"user_id"`
	Name      string    `bson:"name" json:"name"`
	Weight    float64   `bson:"weight" json:"weight"` // kg, mirrors the latest weight log
	HeightCm  float64   `bson:"heightCm" json:"heightCm"`
	Age       int       `bson:"age" json:"age"`
	Gender    string    `bson:"gender" json:"gender"`       // male | female
	CalTarget int       `bson:"calTarget" json:"calTarget"` // kcal per day
	GoalKg    float64   `bson:"goalKg" json:"goalKg"`
	AvatarURL string    `bson:"avatarUrl" json:"avatarUrl"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ProfileUpdate carries a partial profile; nil fields are left untouched.
type ProfileUpdate struct {
	Name      *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Weight    *float64 `json:"weight" validate:"omitempty,gt=0,lt=500"`
	HeightCm  *float64 `json:"heightCm" validate:"omitempty,gt=0,lt=300"`
	Age       *int     `json:"age" validate:"omitempty,gt=0,lt=150"`
	Gender    *string  `json:"gender" validate:"omitempty,oneof=male female"`
	CalTarget *int     `json:"calTarget" validate:"omitempty,gt=0"`
	GoalKg    *float64 `json:"goalKg" validate:"omitempty,gt=0,lt=500"`
	AvatarURL *string  `json:"avatarUrl"`
}

// Fields returns the set fields keyed by their stored names.
func (u ProfileUpdate) Fields() map[string]interface{} {
	set := make(map[string]interface{})
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Weight != nil {
		set["weight"] = *u.Weight
	}
	if u.HeightCm != nil {
		set["heightCm"] = *u.HeightCm
	}
	if u.Age != nil {
		set["age"] = *u.Age
	}
	if u.Gender != nil {
		set["gender"] = *u.Gender
	}
	if u.CalTarget != nil {
		set["calTarget"] = *u.CalTarget
	}
	if u.GoalKg != nil {
		set["goalKg"] = *u.GoalKg
	}
	if u.AvatarURL != nil {
		set["avatarUrl"] = *u.AvatarURL
	}
	return set
}

// Apply copies the set fields onto p.
func (u ProfileUpdate) Apply(p *Profile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.HeightCm != nil {
		p.HeightCm = *u.HeightCm
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.CalTarget != nil {
		p.CalTarget = *u.CalTarget
	}
	if u.GoalKg != nil {
		p.GoalKg = *u.GoalKg
	}
	if u.AvatarURL != nil {
		p.AvatarURL = *u.AvatarURL
	}
}
