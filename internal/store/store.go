// Package store defines the document-store contract the rest of the service
// is written against. One profile document per user id; the backing database
// is interchangeable (Postgres JSONB or MongoDB).
package store

import (
	"context"
	"errors"

	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
)

// ErrNotFound is returned by Read and AppendTraining when no document exists
// for the user id. Backend failures are distinct errors and are never mapped
// to ErrNotFound.
var ErrNotFound = errors.New("profile not found")

// ProfileStore is the persistence contract for profile documents.
//
// Create and Overwrite are both full-document replaces and are idempotent.
// AppendTraining must append server-side, without a client read-modify-write,
// so sequential appends never lose a record.
type ProfileStore interface {
	Exists(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, userID string, profile *models.Profile) error
	Read(ctx context.Context, userID string) (*models.Profile, error)
	Overwrite(ctx context.Context, userID string, profile *models.Profile) error
	AppendTraining(ctx context.Context, userID string, record models.TrainingRecord) error
}
