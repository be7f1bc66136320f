package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adityab94/FitForge/helpers"
)

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.Register(ctx, RegisterInput{Email: " Ada@Example.com ", Password: "secret1", Name: "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	if res.User.Email != "ada@example.com" || res.User.Name != "Ada" || res.Token == "" {
		t.Fatalf("register result = %+v", res)
	}
	claims, err := helpers.ValidateToken(res.Token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != res.User.ID {
		t.Fatalf("token subject = %s, want %s", claims.UserID, res.User.ID)
	}

	profile, err := f.svc.GetProfile(ctx, res.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	if profile.Name != "Ada" || profile.Weight != 90 || profile.GoalKg != 80 {
		t.Fatalf("default profile = %+v", profile)
	}
	logs, err := f.svc.ListWeightLogs(ctx, res.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 0 {
		t.Fatalf("unseeded account has %d weight logs", len(logs))
	}

	if _, err := f.svc.Register(ctx, RegisterInput{Email: "ADA@example.com", Password: "another", Name: "Ada 2"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate email err = %v", err)
	}

	login, err := f.svc.Login(ctx, LoginInput{Email: "ada@EXAMPLE.com", Password: "secret1"})
	if err != nil {
		t.Fatal(err)
	}
	if login.User.ID != res.User.ID {
		t.Fatalf("login user = %+v", login.User)
	}
	if _, err := f.svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "wrong-pass"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := f.svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "secret1"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("unknown email err = %v", err)
	}

	me, err := f.svc.Me(ctx, res.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	if me.Email != "ada@example.com" {
		t.Fatalf("me = %+v", me)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tests := []RegisterInput{
		{Email: "not-an-email", Password: "secret1", Name: "A"},
		{Email: "a@example.com", Password: "short", Name: "A"},
		{Email: "a@example.com", Password: "secret1", Name: "   "},
	}
	for _, in := range tests {
		if _, err := f.svc.Register(ctx, in); !errors.Is(err, ErrValidation) {
			t.Errorf("Register(%+v) err = %v, want validation", in, err)
		}
	}
}

func TestRegisterWithDemoData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.svc.RegisterWithDemoData(ctx, RegisterInput{Email: "demo@example.com", Password: "secret1", Name: "Demo"})
	if err != nil {
		t.Fatal(err)
	}
	logs, err := f.svc.ListWeightLogs(ctx, res.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 6 || logs[0].Date != "2026-01-15" || logs[5].Date != "2026-02-19" || logs[5].Weight != 89 {
		t.Fatalf("seeded logs = %+v", logs)
	}
	workouts, err := f.svc.ListWorkouts(ctx, res.User.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(workouts) != 3 || workouts[0].Date != "2026-02-19" || workouts[2].Date != "2026-02-17" {
		t.Fatalf("seeded workouts = %+v", workouts)
	}
}

func TestPasswordReset(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "secret1", Name: "Ada"}); err != nil {
		t.Fatal(err)
	}

	unknown, err := f.svc.ForgotPassword(ctx, ForgotPasswordInput{Email: "ghost@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	known, err := f.svc.ForgotPassword(ctx, ForgotPasswordInput{Email: "ada@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if unknown.Message != known.Message || unknown.ResetToken != "" {
		t.Fatalf("responses differ: %+v vs %+v", unknown, known)
	}
	if known.ResetToken == "" || f.mailer.sent["ada@example.com"] != known.ResetToken {
		t.Fatalf("token not delivered: %+v %v", known, f.mailer.sent)
	}

	if err := f.svc.ResetPassword(ctx, ResetPasswordInput{Token: "bogus", NewPassword: "newpass1"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("bogus token err = %v", err)
	}
	if err := f.svc.ResetPassword(ctx, ResetPasswordInput{Token: known.ResetToken, NewPassword: "newpass1"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "secret1"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("old password still works: %v", err)
	}
	if _, err := f.svc.Login(ctx, LoginInput{Email: "ada@example.com", Password: "newpass1"}); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.ResetPassword(ctx, ResetPasswordInput{Token: known.ResetToken, NewPassword: "again12"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("reused token err = %v", err)
	}
}

func TestPasswordResetExpires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Register(ctx, RegisterInput{Email: "ada@example.com", Password: "secret1", Name: "Ada"}); err != nil {
		t.Fatal(err)
	}
	f.mailer.failed = true
	res, err := f.svc.ForgotPassword(ctx, ForgotPasswordInput{Email: "ada@example.com"})
	if err != nil {
		t.Fatalf("mail failure leaked: %v", err)
	}

	f.clock.Advance(time.Hour + time.Second)
	if err := f.svc.ResetPassword(ctx, ResetPasswordInput{Token: res.ResetToken, NewPassword: "newpass1"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expired token err = %v", err)
	}
}
