package models

import "time"

type ProgressPhoto struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	FileID    string    `bson:"file_id" json:"file_id"`
	Label     string    `bson:"label" json:"label"`
	Date      string    `bson:"date" json:"date"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	URL       string    `bson:"-" json:"url"`
}

func (p ProgressPhoto) Owner() string    { return p.UserID }
func (p ProgressPhoto) RecordID() string { return p.ID }
func (p ProgressPhoto) Day() string      { return p.Date }

// FileURL is the public download path of a stored blob.
func FileURL(fileID string) string {
	return "/api/files/" + fileID
}
