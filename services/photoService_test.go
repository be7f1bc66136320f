package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityab94/FitForge/models"
)

func TestPhotoLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.UploadPhoto(ctx, "u1", PhotoInput{}, Upload{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty upload err = %v", err)
	}

	photo, err := f.svc.UploadPhoto(ctx, "u1", PhotoInput{Label: "Front", Date: "2026-02-01"}, Upload{Data: []byte("jpeg"), ContentType: "image/jpeg"})
	if err != nil {
		t.Fatal(err)
	}
	if photo.Date != "2026-02-01" || photo.URL != models.FileURL(photo.FileID) {
		t.Fatalf("photo = %+v", photo)
	}

	data, contentType, err := f.svc.GetFile(ctx, photo.FileID)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "jpeg" || contentType != "image/jpeg" {
		t.Fatalf("file = %q %s", data, contentType)
	}

	photos, err := f.svc.ListPhotos(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(photos) != 1 || photos[0].URL == "" {
		t.Fatalf("photos = %+v", photos)
	}

	if err := f.svc.DeletePhoto(ctx, "u2", photo.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("other user delete err = %v", err)
	}
	if err := f.svc.DeletePhoto(ctx, "u1", photo.ID); err != nil {
		t.Fatal(err)
	}
	if _, _, err := f.svc.GetFile(ctx, photo.FileID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted file err = %v", err)
	}
}

func TestDeletePhotoSurvivesBlobFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := New(Deps{Store: f.store, Blobs: failingBlobs{f.blobs}, Clock: f.clock, Logger: f.svc.log})

	photo, err := svc.UploadPhoto(ctx, "u1", PhotoInput{Label: "Side"}, Upload{Data: []byte("png")})
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.DeletePhoto(ctx, "u1", photo.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	photos, err := svc.ListPhotos(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(photos) != 0 {
		t.Fatalf("photos left = %+v", photos)
	}
}

func TestUploadAvatar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "secret1", Name: "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	ref, err := f.svc.UploadAvatar(ctx, res.User.ID, Upload{Data: []byte("img")})
	if err != nil {
		t.Fatal(err)
	}
	me, err := f.svc.Me(ctx, res.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	profile, err := f.svc.GetProfile(ctx, res.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	if me.AvatarURL != ref.URL || profile.AvatarURL != ref.URL {
		t.Fatalf("avatar not applied: %s %s %s", ref.URL, me.AvatarURL, profile.AvatarURL)
	}
	_, contentType, err := f.svc.GetFile(ctx, ref.FileID)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "image/png" {
		t.Fatalf("default content type = %s", contentType)
	}

	if _, err := f.svc.UploadAvatar(ctx, "ghost", Upload{Data: []byte("img")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown user err = %v", err)
	}
}

func TestSubscribe(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.svc.Subscribe(ctx, "u1", PushInput{Endpoint: "https://push.example.com/abc", Keys: map[string]string{"p256dh": "k", "auth": "a"}})
	if err != nil {
		t.Fatal(err)
	}
	sub, err := f.store.Subscriptions.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Endpoint != "https://push.example.com/abc" {
		t.Fatalf("subscription = %+v", sub)
	}
	if err := f.svc.Subscribe(ctx, "u1", PushInput{Endpoint: "not a url"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad endpoint err = %v", err)
	}
}

func TestListPhotosKeepsNewestPastListLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var newest *models.ProgressPhoto
	for i := 0; i < listLimit+1; i++ {
		photo, err := f.svc.UploadPhoto(ctx, "u1", PhotoInput{Label: "Front"}, Upload{Data: []byte("png")})
		if err != nil {
			t.Fatal(err)
		}
		newest = photo
		f.clock.Advance(time.Minute)
	}

	photos, err := f.svc.ListPhotos(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(photos) != listLimit {
		t.Fatalf("len = %d, want %d", len(photos), listLimit)
	}
	if photos[len(photos)-1].ID != newest.ID {
		t.Fatalf("newest upload missing, last listed = %+v", photos[len(photos)-1])
	}
	if !photos[0].Timestamp.Before(photos[1].Timestamp) {
		t.Fatalf("photos not oldest first: %v then %v", photos[0].Timestamp, photos[1].Timestamp)
	}
}
