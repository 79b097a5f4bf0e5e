// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Email
// model (self-reported identity capture).
//
// Error semantics:
//   - CreateEmail returns ErrDuplicate when the address already exists.
//   - UpsertEmail never reports a conflict: it is an explicit
//     INSERT ... ON CONFLICT DO NOTHING, so unrelated storage errors are
//     still surfaced while duplicates are silently skipped.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-listing-optimizer/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that an email row already exists for the address.
var ErrDuplicate = errors.New("duplicate")

// CreateEmail inserts a new identity row. The address must not already
// exist; a unique violation is translated to ErrDuplicate so the service
// layer can map it to a stable conflict response.
func CreateEmail(ctx context.Context, db *gorm.DB, email, name string) (*domain.Email, error) {
	rec := &domain.Email{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rec, nil
}

// UpsertEmail creates the identity row if absent and does nothing when the
// address already exists. It uses a conditional insert rather than a
// try/catch around a plain insert so that only the duplicate case is
// swallowed; any other storage error is returned to the caller.
func UpsertEmail(ctx context.Context, db *gorm.DB, email, name string) error {
	rec := &domain.Email{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(rec).Error
}

// CountEmails returns the total number of captured identities.
func CountEmails(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Email{}).Count(&total).Error
	return total, err
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
//
// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint failed") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key")
}
