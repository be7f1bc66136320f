package services

import (
	"context"
	"time"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/repository"
	"github.com/sirupsen/logrus"
)

const defaultStoreTimeout = 10 * time.Second

// Notifier is told about every successful record mutation.
type Notifier interface {
	Notify(userID, collection, date string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, string) {}

type Options struct {
	StoreTimeout     time.Duration
	TokenTTL         time.Duration
	ResetTTL         time.Duration
	SeedDemoData     bool
	ExposeResetToken bool
}

type Deps struct {
	Store    *repository.Store
	Blobs    repository.BlobStore
	Clock    helpers.Clock
	Logger   logrus.FieldLogger
	Mailer   helpers.Mailer
	Notifier Notifier
	Options  Options
}

// Services holds every user scoped operation of the API.
type Services struct {
	store    *repository.Store
	blobs    repository.BlobStore
	clock    helpers.Clock
	log      logrus.FieldLogger
	mailer   helpers.Mailer
	notifier Notifier
	opts     Options
}

func New(d Deps) *Services {
	s := &Services{
		store:    d.Store,
		blobs:    d.Blobs,
		clock:    d.Clock,
		log:      d.Logger,
		mailer:   d.Mailer,
		notifier: d.Notifier,
		opts:     d.Options,
	}
	if s.blobs == nil {
		s.blobs = repository.NewMemoryBlobs()
	}
	if s.clock == nil {
		s.clock = helpers.SystemClock{}
	}
	if s.log == nil {
		s.log = logrus.StandardLogger()
	}
	if s.mailer == nil {
		s.mailer = helpers.LogMailer{Logger: s.log}
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.opts.StoreTimeout <= 0 {
		s.opts.StoreTimeout = defaultStoreTimeout
	}
	if s.opts.TokenTTL <= 0 {
		s.opts.TokenTTL = helpers.DefaultTokenTTL
	}
	if s.opts.ResetTTL <= 0 {
		s.opts.ResetTTL = time.Hour
	}
	return s
}

func (s *Services) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opts.StoreTimeout)
}

func (s *Services) today() string {
	return helpers.Today(s.clock)
}

// dateOrToday returns date, or today's date when date is empty.
func (s *Services) dateOrToday(date string) (string, error) {
	if date == "" {
		return s.today(), nil
	}
	if !helpers.ValidDate(date) {
		return "", invalid("date must be a date in YYYY-MM-DD form")
	}
	return date, nil
}

// Ping reports whether the store is reachable.
func (s *Services) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.Ping(ctx)
}
