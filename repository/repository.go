package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adityab94/FitForge/models"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Record is a document owned by a single user.
type Record interface {
	Owner() string
	RecordID() string
	Day() string
}

// DailyRecord is a Record stored at most once per (user, date).
type DailyRecord[T any] interface {
	Record
	WithRecordID(id string) T
}

// Query narrows a list to one date or an inclusive date range.
type Query struct {
	Date  string
	From  string
	To    string
	Limit int64
}

// DayKey addresses a daily record.
type DayKey struct {
	UserID string
	Date   string
}

// Records is an append-only per-user collection.
type Records[T Record] interface {
	Insert(ctx context.Context, rec T) error
	// List returns the newest records first; Limit keeps the newest.
	List(ctx context.Context, userID string, q Query) ([]T, error)
	Get(ctx context.Context, userID, id string) (T, error)
	// Delete removes the record only when it belongs to userID.
	Delete(ctx context.Context, userID, id string) error
}

// DailyStore is a map keyed by (user, date). Put overwrites whatever is
// stored under the key, keeping the stored record id, or creates the entry.
// Concurrent puts to one key are last-write-wins.
type DailyStore[T DailyRecord[T]] interface {
	Put(ctx context.Context, rec T) (T, error)
	Get(ctx context.Context, key DayKey) (T, error)
	List(ctx context.Context, userID string, limit int64) ([]T, error)
}

type Users interface {
	Create(ctx context.Context, u *models.User) error
	ByID(ctx context.Context, id string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	ByResetToken(ctx context.Context, token string) (*models.User, error)
	SetAvatar(ctx context.Context, id, url string) error
	SetResetToken(ctx context.Context, id, token string, expires time.Time) error
	// SetPassword stores a new hash and clears any reset token.
	SetPassword(ctx context.Context, id, hash string) error
}

type Profiles interface {
	Create(ctx context.Context, p *models.Profile) error
	Get(ctx context.Context, userID string) (*models.Profile, error)
	Update(ctx context.Context, userID string, u models.ProfileUpdate) (*models.Profile, error)
}

type Subscriptions interface {
	Put(ctx context.Context, sub models.PushSubscription) error
	Get(ctx context.Context, userID string) (*models.PushSubscription, error)
}

// Store bundles every collection the services read and write.
type Store struct {
	Users           Users
	Profiles        Profiles
	WeightLogs      Records[models.WeightLog]
	Workouts        Records[models.Workout]
	Measurements    Records[models.Measurement]
	BodyComposition Records[models.BodyComposition]
	Photos          Records[models.ProgressPhoto]
	Steps           DailyStore[models.StepsEntry]
	Water           DailyStore[models.WaterEntry]
	Nutrition       DailyStore[models.NutritionEntry]
	Subscriptions   Subscriptions

	ping func(ctx context.Context) error
}

// Ping reports whether the backing database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// BlobStore holds uploaded files (avatars, progress photos).
type BlobStore interface {
	Put(ctx context.Context, data []byte, name, contentType string) (string, error)
	Get(ctx context.Context, id string) ([]byte, string, error)
	Delete(ctx context.Context, id string) error
}

const defaultContentType = "application/octet-stream"
