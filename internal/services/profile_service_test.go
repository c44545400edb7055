package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/NureDudukovOleksandr/Kozachok/internal/apperror"
	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
	"github.com/NureDudukovOleksandr/Kozachok/internal/store"
)

// fakeProfileStore is an in-memory ProfileStore with switchable failures.
type fakeProfileStore struct {
	docs map[string]*models.Profile

	existsErr    error
	createErr    error
	readErr      error
	overwriteErr error
	appendErr    error

	createCalls int
	readCalls   int
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{docs: map[string]*models.Profile{}}
}

func clone(p *models.Profile) *models.Profile {
	copied := *p
	copied.Notifications = map[string]bool{}
	for k, v := range p.Notifications {
		copied.Notifications[k] = v
	}
	copied.TrainingData = append([]models.TrainingRecord{}, p.TrainingData...)
	return &copied
}

func (f *fakeProfileStore) Exists(_ context.Context, userID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.docs[userID]
	return ok, nil
}

func (f *fakeProfileStore) Create(_ context.Context, userID string, profile *models.Profile) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createCalls++
	f.docs[userID] = clone(profile)
	return nil
}

func (f *fakeProfileStore) Read(_ context.Context, userID string) (*models.Profile, error) {
	f.readCalls++
	if f.readErr != nil {
		return nil, f.readErr
	}
	profile, ok := f.docs[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clone(profile), nil
}

func (f *fakeProfileStore) Overwrite(_ context.Context, userID string, profile *models.Profile) error {
	if f.overwriteErr != nil {
		return f.overwriteErr
	}
	f.docs[userID] = clone(profile)
	return nil
}

func (f *fakeProfileStore) AppendTraining(_ context.Context, userID string, record models.TrainingRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	profile, ok := f.docs[userID]
	if !ok {
		return store.ErrNotFound
	}
	profile.TrainingData = append(profile.TrainingData, record)
	return nil
}

func TestEnsureProvisionedCreatesEmptyProfile(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProfileStore()
	service := NewProfileService(fake)

	profile, err := service.EnsureProvisioned(ctx, "uid-1", "Oleksandr")
	if err != nil {
		t.Fatalf("EnsureProvisioned: %v", err)
	}

	if profile.Name != "Oleksandr" {
		t.Errorf("expected display name Oleksandr, got %q", profile.Name)
	}
	if profile.IsAdmin {
		t.Error("new profile must not be admin")
	}
	if len(profile.TrainingData) != 0 {
		t.Errorf("expected empty history, got %d records", len(profile.TrainingData))
	}
	if exists, _ := fake.Exists(ctx, "uid-1"); !exists {
		t.Error("profile was not persisted")
	}
}

func TestEnsureProvisionedUsesPlaceholderName(t *testing.T) {
	ctx := context.Background()
	service := NewProfileService(newFakeProfileStore())

	profile, err := service.EnsureProvisioned(ctx, "uid-1", "")
	if err != nil {
		t.Fatalf("EnsureProvisioned: %v", err)
	}
	if profile.Name != models.DefaultDisplayName {
		t.Errorf("expected placeholder name, got %q", profile.Name)
	}
}

func TestEnsureProvisionedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProfileStore()
	service := NewProfileService(fake)

	first, err := service.EnsureProvisioned(ctx, "uid-1", "Oleksandr")
	if err != nil {
		t.Fatalf("first EnsureProvisioned: %v", err)
	}
	second, err := service.EnsureProvisioned(ctx, "uid-1", "Someone Else")
	if err != nil {
		t.Fatalf("second EnsureProvisioned: %v", err)
	}

	if fake.createCalls != 1 {
		t.Errorf("expected one create, got %d", fake.createCalls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second provisioning changed the profile: %+v vs %+v", first, second)
	}
}

func TestEnsureProvisionedDoesNotCreateOnExistsFailure(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProfileStore()
	fake.existsErr = errors.New("connection reset")
	service := NewProfileService(fake)

	_, err := service.EnsureProvisioned(ctx, "uid-1", "Oleksandr")
	if !errors.Is(err, apperror.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if fake.createCalls != 0 {
		t.Errorf("backend failure must not be treated as absence; got %d creates", fake.createCalls)
	}
}

func TestSaveProfileEditsRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProfileStore()
	service := NewProfileService(fake)

	if _, err := service.EnsureProvisioned(ctx, "uid-1", "Oleksandr"); err != nil {
		t.Fatalf("EnsureProvisioned: %v", err)
	}

	edited := &models.Profile{
		Name:          "Oleksandr D.",
		Birthday:      "12.04.2001",
		Height:        "181",
		Weight:        "82",
		Notifications: map[string]bool{"daily": true},
		TrainingData:  []models.TrainingRecord{{Date: "01.01.2024", Weight: 82}},
	}
	if err := service.SaveProfileEdits(ctx, "uid-1", edited); err != nil {
		t.Fatalf("SaveProfileEdits: %v", err)
	}

	loaded, err := service.LoadProfile(ctx, "uid-1")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if !reflect.DeepEqual(loaded, edited) {
		t.Errorf("round-trip mismatch:\nsaved  %+v\nloaded %+v", edited, loaded)
	}
}

func TestSaveProfileEditsFailureLeavesStoredStateUntouched(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProfileStore()
	service := NewProfileService(fake)

	if _, err := service.EnsureProvisioned(ctx, "uid-1", "Oleksandr"); err != nil {
		t.Fatalf("EnsureProvisioned: %v", err)
	}

	fake.overwriteErr = errors.New("timeout")
	err := service.SaveProfileEdits(ctx, "uid-1", &models.Profile{Name: "Changed"})
	if !errors.Is(err, apperror.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}

	fake.overwriteErr = nil
	loaded, err := service.LoadProfile(ctx, "uid-1")
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if loaded.Name != "Oleksandr" {
		t.Errorf("failed save must not change stored profile, got name %q", loaded.Name)
	}
}

func TestLogTrainingAppendsAndRefreshes(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProfileStore()
	service := NewProfileService(fake)

	if _, err := service.EnsureProvisioned(ctx, "uid-1", "Oleksandr"); err != nil {
		t.Fatalf("EnsureProvisioned: %v", err)
	}

	records := []models.TrainingRecord{
		{Date: "01.01.2024", Weight: 82, TrainingHours: 1},
		{Date: "02.01.2024", Weight: 81.5, TrainingHours: 1.5},
		{Date: "02.01.2024", Weight: 81.5, TrainingHours: 1.5}, // identical records are both kept
	}

	var profile *models.Profile
	var err error
	for _, record := range records {
		profile, err = service.LogTraining(ctx, "uid-1", record)
		if err != nil {
			t.Fatalf("LogTraining: %v", err)
		}
	}

	if len(profile.TrainingData) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(profile.TrainingData))
	}
	for i, record := range records {
		if !reflect.DeepEqual(profile.TrainingData[i], record) {
			t.Errorf("record %d out of append order: %+v", i, profile.TrainingData[i])
		}
	}
}

func TestLogTrainingWithoutProfile(t *testing.T) {
	ctx := context.Background()
	service := NewProfileService(newFakeProfileStore())

	_, err := service.LogTraining(ctx, "uid-unknown", models.TrainingRecord{Date: "01.01.2024"})
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOperationsRequireSignedInUser(t *testing.T) {
	ctx := context.Background()
	fake := newFakeProfileStore()
	fake.existsErr = errors.New("store must not be called")
	fake.readErr = errors.New("store must not be called")
	service := NewProfileService(fake)

	if _, err := service.EnsureProvisioned(ctx, "", "name"); !errors.Is(err, apperror.ErrUnauthenticated) {
		t.Errorf("EnsureProvisioned: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := service.LoadProfile(ctx, ""); !errors.Is(err, apperror.ErrUnauthenticated) {
		t.Errorf("LoadProfile: expected ErrUnauthenticated, got %v", err)
	}
	if err := service.SaveProfileEdits(ctx, "", &models.Profile{}); !errors.Is(err, apperror.ErrUnauthenticated) {
		t.Errorf("SaveProfileEdits: expected ErrUnauthenticated, got %v", err)
	}
	if _, err := service.LogTraining(ctx, "", models.TrainingRecord{}); !errors.Is(err, apperror.ErrUnauthenticated) {
		t.Errorf("LogTraining: expected ErrUnauthenticated, got %v", err)
	}
	if fake.readCalls != 0 {
		t.Errorf("no store call may happen without a user; got %d reads", fake.readCalls)
	}
}
