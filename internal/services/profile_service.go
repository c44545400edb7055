package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/NureDudukovOleksandr/Kozachok/internal/apperror"
	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
	"github.com/NureDudukovOleksandr/Kozachok/internal/store"
)

// ProfileService bridges the client-facing API and the profile document
// store: first-login provisioning, full-document edits and training appends.
// It performs no retries; every failure is surfaced to the caller, who keeps
// its previous in-memory state.
type ProfileService struct {
	store store.ProfileStore
}

func NewProfileService(profileStore store.ProfileStore) *ProfileService {
	return &ProfileService{store: profileStore}
}

// EnsureProvisioned creates an empty profile the first time a user id is
// seen, then returns the stored profile.
//
// The exists-then-create sequence is not atomic: two concurrent first logins
// for the same id can both create. Both writes are the same empty document,
// so the race is benign (last write wins).
func (s *ProfileService) EnsureProvisioned(ctx context.Context, userID, displayName string) (*models.Profile, error) {
	if userID == "" {
		return nil, apperror.NotSignedIn()
	}

	exists, err := s.store.Exists(ctx, userID)
	if err != nil {
		return nil, apperror.Unavailable("check profile", err)
	}
	if !exists {
		if err := s.store.Create(ctx, userID, models.NewProfile(displayName)); err != nil {
			return nil, apperror.Unavailable("create profile", err)
		}
	}

	return s.LoadProfile(ctx, userID)
}

// LoadProfile reads the user's profile document.
func (s *ProfileService) LoadProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, apperror.NotSignedIn()
	}

	profile, err := s.store.Read(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperror.NotFound("profile", userID)
	}
	if err != nil {
		return nil, apperror.Unavailable("load profile", err)
	}
	return profile, nil
}

// SaveProfileEdits replaces the stored document with the caller's copy. On
// failure nothing was written, so the caller's previous copy stays valid.
func (s *ProfileService) SaveProfileEdits(ctx context.Context, userID string, profile *models.Profile) error {
	if userID == "" {
		return apperror.NotSignedIn()
	}
	if profile == nil {
		return apperror.ValidationFailed("profile", "profile body is required")
	}

	if err := s.store.Overwrite(ctx, userID, profile); err != nil {
		return apperror.Unavailable("save profile", err)
	}
	return nil
}

// LogTraining appends one record to the user's history and re-reads the
// profile, since the append primitive does not return the new document
// state. The append is never retried: retrying an ambiguous failure could
// duplicate the record.
func (s *ProfileService) LogTraining(ctx context.Context, userID string, record models.TrainingRecord) (*models.Profile, error) {
	if userID == "" {
		return nil, apperror.NotSignedIn()
	}

	if err := s.store.AppendTraining(ctx, userID, record); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NotFound("profile", userID)
		}
		return nil, apperror.Unavailable("log training", err)
	}

	profile, err := s.LoadProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("training stored but profile refresh failed: %w", err)
	}
	return profile, nil
}
