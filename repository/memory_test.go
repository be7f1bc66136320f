package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityab94/FitForge/models"
)

func TestDailyPutKeepsIDAndOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.Steps.Put(ctx, models.StepsEntry{ID: "a", UserID: "u1", Steps: 1000, Date: "2026-02-19"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Steps.Put(ctx, models.StepsEntry{ID: "b", UserID: "u1", Steps: 5000, Date: "2026-02-19"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != "a" || second.ID != "a" {
		t.Fatalf("ids = %s, %s; want the first id kept", first.ID, second.ID)
	}

	all, err := store.Steps.List(ctx, "u1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Steps != 5000 {
		t.Fatalf("got %+v, want one entry with 5000 steps", all)
	}
}

func TestDailyListNewestFirstAndScoped(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, e := range []models.WaterEntry{
		{ID: "1", UserID: "u1", Glasses: 3, Date: "2026-02-17"},
		{ID: "2", UserID: "u1", Glasses: 5, Date: "2026-02-19"},
		{ID: "3", UserID: "u2", Glasses: 8, Date: "2026-02-18"},
	} {
		if _, err := store.Water.Put(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Water.List(ctx, "u1", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Date != "2026-02-19" || got[1].Date != "2026-02-17" {
		t.Fatalf("unexpected order %+v", got)
	}

	if _, err := store.Water.Get(ctx, DayKey{UserID: "u2", Date: "2026-02-19"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRecordsSortQueryAndDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	for i, date := range []string{"2026-02-12", "2026-02-10", "2026-02-11"} {
		w := models.Workout{
			ID:        date,
			UserID:    "u1",
			Type:      "Run",
			Date:      date,
			Timestamp: base.AddDate(0, 0, i),
		}
		if err := store.Workouts.Insert(ctx, w); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.Workouts.List(ctx, "u1", Query{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].ID != "2026-02-11" {
		t.Fatalf("want newest timestamp first, got %+v", all)
	}

	ranged, err := store.Workouts.List(ctx, "u1", Query{From: "2026-02-11", To: "2026-02-12"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ranged) != 2 {
		t.Fatalf("range returned %d rows", len(ranged))
	}

	limited, _ := store.Workouts.List(ctx, "u1", Query{Limit: 1})
	if len(limited) != 1 {
		t.Fatalf("limit returned %d rows", len(limited))
	}

	if err := store.Workouts.Delete(ctx, "u2", "2026-02-10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("cross-user delete err = %v", err)
	}
	if err := store.Workouts.Delete(ctx, "u1", "2026-02-10"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Workouts.Get(ctx, "u1", "2026-02-10"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted workout still readable: %v", err)
	}
}

func TestUsersDuplicateAndReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	u := &models.User{ID: "u1", Email: "a@b.test", Password: "old"}
	if err := store.Users.Create(ctx, u); err != nil {
		t.Fatal(err)
	}
	if err := store.Users.Create(ctx, &models.User{ID: "u2", Email: "a@b.test"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}

	exp := time.Now().Add(time.Hour)
	if err := store.Users.SetResetToken(ctx, "u1", "tok", exp); err != nil {
		t.Fatal(err)
	}
	found, err := store.Users.ByResetToken(ctx, "tok")
	if err != nil || found.ID != "u1" {
		t.Fatalf("ByResetToken = %+v, %v", found, err)
	}
	if err := store.Users.SetPassword(ctx, "u1", "new"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Users.ByResetToken(ctx, "tok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("token should be cleared, err = %v", err)
	}
}

func TestMemoryBlobs(t *testing.T) {
	ctx := context.Background()
	blobs := NewMemoryBlobs()
	id, err := blobs.Put(ctx, []byte("png"), "a.png", "")
	if err != nil {
		t.Fatal(err)
	}
	data, ct, err := blobs.Get(ctx, id)
	if err != nil || string(data) != "png" || ct != defaultContentType {
		t.Fatalf("Get = %q, %q, %v", data, ct, err)
	}
	if err := blobs.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, _, err := blobs.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
