package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/adityab94/FitForge/models"
)

// NewMemoryStore returns a Store kept entirely in process memory. It is used
// for local runs without MongoDB and by the tests.
func NewMemoryStore() *Store {
	return &Store{
		Users:    &memoryUsers{byID: make(map[string]*models.User)},
		Profiles: &memoryProfiles{byUser: make(map[string]*models.Profile)},
		WeightLogs: newMemoryRecords(func(a, b models.WeightLog) bool {
			if a.Date != b.Date {
				return a.Date > b.Date
			}
			return a.Timestamp.After(b.Timestamp)
		}),
		Workouts: newMemoryRecords(func(a, b models.Workout) bool {
			return a.Timestamp.After(b.Timestamp)
		}),
		Measurements: newMemoryRecords(func(a, b models.Measurement) bool {
			return a.Date > b.Date
		}),
		BodyComposition: newMemoryRecords(func(a, b models.BodyComposition) bool {
			return a.Date > b.Date
		}),
		Photos: newMemoryRecords(func(a, b models.ProgressPhoto) bool {
			return a.Timestamp.After(b.Timestamp)
		}),
		Steps:         newMemoryDaily[models.StepsEntry](),
		Water:         newMemoryDaily[models.WaterEntry](),
		Nutrition:     newMemoryDaily[models.NutritionEntry](),
		Subscriptions: &memorySubscriptions{byUser: make(map[string]models.PushSubscription)},
	}
}

type memoryRecords[T Record] struct {
	mu   sync.RWMutex
	rows []T
	less func(a, b T) bool
}

func newMemoryRecords[T Record](less func(a, b T) bool) *memoryRecords[T] {
	return &memoryRecords[T]{less: less}
}

func (m *memoryRecords[T]) Insert(_ context.Context, rec T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, rec)
	return nil
}

func (m *memoryRecords[T]) List(_ context.Context, userID string, q Query) ([]T, error) {
	// Rows are walked newest insert first so ties keep that order.
	m.mu.RLock()
	out := make([]T, 0)
	for i := len(m.rows) - 1; i >= 0; i-- {
		rec := m.rows[i]
		if rec.Owner() != userID || !q.matches(rec.Day()) {
			continue
		}
		out = append(out, rec)
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return m.less(out[i], out[j]) })
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (m *memoryRecords[T]) Get(_ context.Context, userID, id string) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.rows {
		if rec.Owner() == userID && rec.RecordID() == id {
			return rec, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func (m *memoryRecords[T]) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, rec := range m.rows {
		if rec.Owner() == userID && rec.RecordID() == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (q Query) matches(day string) bool {
	if q.Date != "" {
		return day == q.Date
	}
	if q.From != "" && day < q.From {
		return false
	}
	if q.To != "" && day > q.To {
		return false
	}
	return true
}

type memoryDaily[T DailyRecord[T]] struct {
	mu   sync.RWMutex
	rows map[DayKey]T
}

func newMemoryDaily[T DailyRecord[T]]() *memoryDaily[T] {
	return &memoryDaily[T]{rows: make(map[DayKey]T)}
}

func (m *memoryDaily[T]) Put(_ context.Context, rec T) (T, error) {
	key := DayKey{UserID: rec.Owner(), Date: rec.Day()}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.rows[key]; ok {
		rec = rec.WithRecordID(existing.RecordID())
	}
	m.rows[key] = rec
	return rec, nil
}

func (m *memoryDaily[T]) Get(_ context.Context, key DayKey) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.rows[key]
	if !ok {
		return rec, ErrNotFound
	}
	return rec, nil
}

func (m *memoryDaily[T]) List(_ context.Context, userID string, limit int64) ([]T, error) {
	m.mu.RLock()
	out := make([]T, 0)
	for key, rec := range m.rows {
		if key.UserID == userID {
			out = append(out, rec)
		}
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Day() > out[j].Day() })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memoryUsers struct {
	mu   sync.RWMutex
	byID map[string]*models.User
}

func (m *memoryUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	if _, ok := m.byID[u.ID]; ok {
		return ErrDuplicate
	}
	stored := *u
	m.byID[u.ID] = &stored
	return nil
}

func (m *memoryUsers) find(match func(*models.User) bool) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.byID {
		if match(u) {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryUsers) ByID(_ context.Context, id string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.ID == id })
}

func (m *memoryUsers) ByEmail(_ context.Context, email string) (*models.User, error) {
	return m.find(func(u *models.User) bool { return u.Email == email })
}

func (m *memoryUsers) ByResetToken(_ context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	return m.find(func(u *models.User) bool { return u.ResetToken == token })
}

func (m *memoryUsers) update(id string, fn func(*models.User)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	fn(u)
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memoryUsers) SetAvatar(_ context.Context, id, url string) error {
	return m.update(id, func(u *models.User) { u.AvatarURL = url })
}

func (m *memoryUsers) SetResetToken(_ context.Context, id, token string, expires time.Time) error {
	return m.update(id, func(u *models.User) {
		u.ResetToken = token
		u.ResetExpires = &expires
	})
}

func (m *memoryUsers) SetPassword(_ context.Context, id, hash string) error {
	return m.update(id, func(u *models.User) {
		u.Password = hash
		u.ResetToken = ""
		u.ResetExpires = nil
	})
}

type memoryProfiles struct {
	mu     sync.RWMutex
	byUser map[string]*models.Profile
}

func (m *memoryProfiles) Create(_ context.Context, p *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byUser[p.UserID]; ok {
		return ErrDuplicate
	}
	stored := *p
	m.byUser[p.UserID] = &stored
	return nil
}

func (m *memoryProfiles) Get(_ context.Context, userID string) (*models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	found := *p
	return &found, nil
}

func (m *memoryProfiles) Update(_ context.Context, userID string, u models.ProfileUpdate) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	u.Apply(p)
	updated := *p
	return &updated, nil
}

type memorySubscriptions struct {
	mu     sync.RWMutex
	byUser map[string]models.PushSubscription
}

func (m *memorySubscriptions) Put(_ context.Context, sub models.PushSubscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byUser[sub.UserID] = sub
	return nil
}

func (m *memorySubscriptions) Get(_ context.Context, userID string) (*models.PushSubscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sub, ok := m.byUser[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &sub, nil
}
