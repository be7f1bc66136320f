package models

import (
	"time"
)

type User struct {
	ID           string     `bson:"id" json:"id"`
	Email        string     `bson:"email" json:"email"`
	Name         string     `bson:"name" json:"name"`
	Password     string     `bson:"password" json:"-"`
	AvatarURL    string     `bson:"avatarUrl" json:"avatarUrl"`
	ResetToken   string     `bson:"reset_token,omitempty" json:"-"`
	ResetExpires *time.Time `bson:"reset_expires,omitempty" json:"-"`
	CreatedAt    time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the subset of a user returned to clients.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
}
