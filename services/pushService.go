package services

import (
	"context"
	"fmt"

	"github.com/adityab94/FitForge/models"
)

type PushInput struct {
	Endpoint string            `json:"endpoint" validate:"required,url"`
	Keys     map[string]string `json:"keys" validate:"required"`
}

// Subscribe stores the caller's Web Push registration, replacing any earlier
// one. Nothing is delivered to it from this service.
func (s *Services) Subscribe(ctx context.Context, userID string, in PushInput) error {
	if err := check(in); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sub := models.PushSubscription{
		UserID:    userID,
		Endpoint:  in.Endpoint,
		Keys:      in.Keys,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Subscriptions.Put(ctx, sub); err != nil {
		return fmt.Errorf("put subscription: %w", err)
	}
	return nil
}
