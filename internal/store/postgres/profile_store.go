package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
	"github.com/NureDudukovOleksandr/Kozachok/internal/store"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProfileStore keeps one JSONB document per user id in the profiles table.
type ProfileStore struct {
	db DBTX
}

func NewProfileStore(db DBTX) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Exists(ctx context.Context, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM profiles WHERE user_id = $1)`
	var exists bool
	if err := s.db.QueryRow(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check profile existence: %w", err)
	}
	return exists, nil
}

func (s *ProfileStore) Create(ctx context.Context, userID string, profile *models.Profile) error {
	return s.upsert(ctx, userID, profile)
}

func (s *ProfileStore) Overwrite(ctx context.Context, userID string, profile *models.Profile) error {
	return s.upsert(ctx, userID, profile)
}

func (s *ProfileStore) upsert(ctx context.Context, userID string, profile *models.Profile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, doc)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, userID, doc); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	return nil
}

func (s *ProfileStore) Read(ctx context.Context, userID string) (*models.Profile, error) {
	query := `SELECT doc FROM profiles WHERE user_id = $1`
	var doc []byte
	err := s.db.QueryRow(ctx, query, userID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var profile models.Profile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	profile.Normalize()
	return &profile, nil
}

// AppendTraining pushes one record onto the document's trainingData array in
// a single UPDATE, so there is no client-side read-modify-write to race.
func (s *ProfileStore) AppendTraining(ctx context.Context, userID string, record models.TrainingRecord) error {
	rec, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode training record: %w", err)
	}

	query := `
		UPDATE profiles
		SET doc = jsonb_set(doc, '{trainingData}', COALESCE(doc->'trainingData', '[]'::jsonb) || $2::jsonb),
			updated_at = NOW()
		WHERE user_id = $1
	`
	tag, err := s.db.Exec(ctx, query, userID, rec)
	if err != nil {
		return fmt.Errorf("append training record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
