package models

import "time"

// PushSubscription is a browser Web Push registration, one per user.
type PushSubscription struct {
	UserID    string            `bson:"user_id" json:"user_id"`
	Endpoint  string            `bson:"endpoint" json:"endpoint"`
	Keys      map[string]string `bson:"keys" json:"keys"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
