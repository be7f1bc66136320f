package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/sirupsen/logrus"
)

var testNow = time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

// testClock can be moved forward during a test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type recordedEvent struct {
	userID, collection, date string
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (n *recordingNotifier) Notify(userID, collection, date string) {
	n.mu.Lock()
	n.events = append(n.events, recordedEvent{userID, collection, date})
	n.mu.Unlock()
}

type recordingMailer struct {
	mu     sync.Mutex
	sent   map[string]string
	failed bool
}

func (m *recordingMailer) SendResetEmail(_ context.Context, to, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failed {
		return errors.New("mail relay down")
	}
	if m.sent == nil {
		m.sent = make(map[string]string)
	}
	m.sent[to] = token
	return nil
}

// failingBlobs refuses deletes.
type failingBlobs struct {
	repository.BlobStore
}

func (failingBlobs) Delete(context.Context, string) error {
	return errors.New("bucket unavailable")
}

type fixture struct {
	svc      *Services
	store    *repository.Store
	blobs    repository.BlobStore
	clock    *testClock
	notifier *recordingNotifier
	mailer   *recordingMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	helpers.SetJWTKey("services-test-key")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &fixture{
		store:    repository.NewMemoryStore(),
		blobs:    repository.NewMemoryBlobs(),
		clock:    &testClock{now: testNow},
		notifier: &recordingNotifier{},
		mailer:   &recordingMailer{},
	}
	f.svc = New(Deps{
		Store:    f.store,
		Blobs:    f.blobs,
		Clock:    f.clock,
		Logger:   logger,
		Notifier: f.notifier,
		Mailer:   f.mailer,
		Options:  Options{ExposeResetToken: true},
	})
	return f
}

// withProfile stores the default profile for userID and returns it.
func (f *fixture) withProfile(t *testing.T, userID string) *models.Profile {
	t.Helper()
	p := defaultProfile(userID, "Tester")
	if err := f.store.Profiles.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	return p
}

func (f *fixture) addWeightLog(t *testing.T, userID, date string, weight float64) {
	t.Helper()
	ts, err := helpers.ParseDate(date)
	if err != nil {
		t.Fatal(err)
	}
	err = f.store.WeightLogs.Insert(context.Background(), models.WeightLog{
		ID:        userID + date,
		UserID:    userID,
		Weight:    weight,
		Date:      date,
		Timestamp: ts.Add(8 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func ptr[T any](v T) *T { return &v }
