package services

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/adityab94/FitForge/models"
	"github.com/adityab94/FitForge/repository"
	"github.com/google/uuid"
)

// Upload is a file received from a client.
type Upload struct {
	Data        []byte
	Name        string
	ContentType string
}

func (u Upload) withDefaults(name string) Upload {
	if u.Name == "" {
		u.Name = name
	}
	if u.ContentType == "" {
		u.ContentType = "image/png"
	}
	return u
}

type PhotoInput struct {
	Label string `form:"label" json:"label" validate:"max=200"`
	Date  string `form:"date" json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (s *Services) UploadPhoto(ctx context.Context, userID string, in PhotoInput, file Upload) (*models.ProgressPhoto, error) {
	if err := check(in); err != nil {
		return nil, err
	}
	if len(file.Data) == 0 {
		return nil, invalid("file is required")
	}
	date, err := s.dateOrToday(in.Date)
	if err != nil {
		return nil, err
	}
	file = file.withDefaults("photo.png")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	fileID, err := s.blobs.Put(ctx, file.Data, file.Name, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}
	photo := models.ProgressPhoto{
		ID:        uuid.NewString(),
		UserID:    userID,
		FileID:    fileID,
		Label:     in.Label,
		Date:      date,
		Timestamp: s.clock.Now(),
		URL:       models.FileURL(fileID),
	}
	if err := s.store.Photos.Insert(ctx, photo); err != nil {
		return nil, fmt.Errorf("insert photo: %w", err)
	}
	s.notifier.Notify(userID, "progress_photos", date)
	return &photo, nil
}

// ListPhotos returns the newest listLimit photos, oldest first, with their
// download URLs.
func (s *Services) ListPhotos(ctx context.Context, userID string) ([]models.ProgressPhoto, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	photos, err := s.store.Photos.List(ctx, userID, repository.Query{Limit: listLimit})
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	slices.Reverse(photos)
	for i := range photos {
		photos[i].URL = models.FileURL(photos[i].FileID)
	}
	return photos, nil
}

// DeletePhoto removes the record. A failure to remove the stored file is
// logged and does not fail the call.
func (s *Services) DeletePhoto(ctx context.Context, userID, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	photo, err := s.store.Photos.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Photo not found")
		}
		return fmt.Errorf("load photo: %w", err)
	}
	if photo.FileID != "" {
		if err := s.blobs.Delete(ctx, photo.FileID); err != nil {
			s.log.WithError(err).WithField("file_id", photo.FileID).Warn("blob delete failed")
		}
	}
	if err := s.store.Photos.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("Photo not found")
		}
		return fmt.Errorf("delete photo: %w", err)
	}
	s.notifier.Notify(userID, "progress_photos", photo.Date)
	return nil
}

type FileRef struct {
	FileID string `json:"file_id"`
	URL    string `json:"url"`
}

// UploadAvatar stores the image and points the user and profile at it.
func (s *Services) UploadAvatar(ctx context.Context, userID string, file Upload) (*FileRef, error) {
	if len(file.Data) == 0 {
		return nil, invalid("file is required")
	}
	file = file.withDefaults("avatar.png")

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	fileID, err := s.blobs.Put(ctx, file.Data, file.Name, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("store avatar: %w", err)
	}
	url := models.FileURL(fileID)
	if err := s.store.Users.SetAvatar(ctx, userID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, fmt.Errorf("set user avatar: %w", err)
	}
	if _, err := s.store.Profiles.Update(ctx, userID, models.ProfileUpdate{AvatarURL: &url}); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("set profile avatar: %w", err)
	}
	s.notifier.Notify(userID, "profile", "")
	return &FileRef{FileID: fileID, URL: url}, nil
}

// GetFile returns a stored file and its content type.
func (s *Services) GetFile(ctx context.Context, fileID string) ([]byte, string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	data, contentType, err := s.blobs.Get(ctx, fileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", notFound("File not found")
		}
		return nil, "", fmt.Errorf("load file: %w", err)
	}
	return data, contentType, nil
}
