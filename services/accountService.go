package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adityab94/FitForge/helpers"
	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

const forgotPasswordMessage = "If that email is registered, a reset code has been sent"

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

type AuthResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

type ForgotPasswordResult struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token,omitempty"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and its default profile and signs a token.
func (s *Services) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	return s.register(ctx, in, s.opts.SeedDemoData)
}

// RegisterWithDemoData is Register that always seeds sample records.
func (s *Services) RegisterWithDemoData(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	return s.register(ctx, in, true)
}

func (s *Services) register(ctx context.Context, in RegisterInput, seed bool) (*AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	if err := check(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if _, err := s.store.Users.ByEmail(ctx, in.Email); err == nil {
		return nil, conflict("Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := s.clock.Now()
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     in.Email,
		Name:      in.Name,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("Email already registered")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	profile := defaultProfile(user.ID, user.Name)
	profile.CreatedAt = now
	if err := s.store.Profiles.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	if seed {
		if err := s.seedDemoData(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return s.authResult(user)
}

func (s *Services) authResult(user *models.User) (*AuthResult, error) {
	token, err := helpers.GenerateToken(user.ID, s.opts.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &AuthResult{Token: token, User: user.Public()}, nil
}

func (s *Services) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.store.Users.ByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, unauthorized("Invalid email or password")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user.Password == "" {
		return nil, unauthorized("Invalid email or password")
	}
	if ok, _ := helpers.VerifyPassword(user.Password, in.Password); !ok {
		return nil, unauthorized("Invalid email or password")
	}
	return s.authResult(user)
}

// Me returns the public view of the caller's account.
func (s *Services) Me(ctx context.Context, userID string) (*models.PublicUser, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.store.Users.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	pub := user.Public()
	return &pub, nil
}

// ForgotPassword answers the same way whether or not the email is known.
func (s *Services) ForgotPassword(ctx context.Context, in ForgotPasswordInput) (*ForgotPasswordResult, error) {
	in.Email = normalizeEmail(in.Email)
	if err := check(in); err != nil {
		return nil, err
	}
	res := &ForgotPasswordResult{Message: forgotPasswordMessage}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.store.Users.ByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return res, nil
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	token, err := helpers.GenerateResetToken()
	if err != nil {
		return nil, fmt.Errorf("generate reset token: %w", err)
	}
	expires := s.clock.Now().Add(s.opts.ResetTTL)
	if err := s.store.Users.SetResetToken(ctx, user.ID, token, expires); err != nil {
		return nil, fmt.Errorf("store reset token: %w", err)
	}
	if err := s.mailer.SendResetEmail(ctx, user.Email, token); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("reset email not sent")
	}
	if s.opts.ExposeResetToken {
		res.ResetToken = token
	}
	return res, nil
}

func (s *Services) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	in.Token = strings.TrimSpace(in.Token)
	if err := check(in); err != nil {
		return err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	user, err := s.store.Users.ByResetToken(ctx, in.Token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalid("Invalid or expired reset token")
		}
		return fmt.Errorf("lookup reset token: %w", err)
	}
	if user.ResetExpires == nil || !s.clock.Now().Before(*user.ResetExpires) {
		return invalid("Invalid or expired reset token")
	}

	hash, err := helpers.HashPassword(in.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.Users.SetPassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	return nil
}
