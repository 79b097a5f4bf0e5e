// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// Optimization model: the append-only quota ledger.
//
// The ledger follows a "thin repository" approach: no business logic, only
// persistence and query composition. Quota arithmetic (remaining vs. max
// per day) lives in the service layer.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-listing-optimizer/internal/domain"
)

// CountOptimizationsSince returns how many optimization events the given
// email has recorded at or after the since timestamp. No side effects.
// On DB error (storage unavailable), the error is propagated and the
// caller should treat the request as failed.
//
// since is converted to UTC before binding. The SQLite driver stores
// time.Time as text with each value's own offset and compares the
// strings lexicographically, so both sides of the range scan must be in
// the frame CreateOptimization writes, which is UTC.
func CountOptimizationsSince(ctx context.Context, db *gorm.DB, email string, since time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Optimization{}).
		Where("email = ? AND created_at >= ?", email, since.UTC()).
		Count(&total).Error
	return total, err
}

// CreateOptimization appends one immutable event row charging the email's
// daily quota. listingURL may be nil. The row is never updated or removed;
// quota windows are enforced purely by CountOptimizationsSince.
func CreateOptimization(ctx context.Context, db *gorm.DB, email string, listingURL *string) (*domain.Optimization, error) {
	rec := &domain.Optimization{
		ID:         uuid.NewString(),
		Email:      email,
		ListingURL: listingURL,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// TotalOptimizations returns the all-time event count, used by the
// analytics endpoint.
func TotalOptimizations(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Optimization{}).Count(&total).Error
	return total, err
}
