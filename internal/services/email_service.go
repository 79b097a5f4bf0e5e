// Identity capture: the first-time-user flow that registers a
// name/email pair without running an optimization. Validation is
// intentionally weak (name non-empty after trim, email must contain "@");
// the address is an opaque, unverified tenant key, not an account.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-listing-optimizer/internal/domain"
	"github.com/tbourn/go-listing-optimizer/internal/repo"
)

// EmailService persists self-reported identities.
type EmailService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// Register validates and stores an identity, returning the persisted row.
//
// Errors:
//   - ErrNameRequired when the name is blank after trimming.
//   - ErrEmailInvalid when the address does not contain "@".
//   - ErrEmailExists when the address was already captured.
//   - The raw DB error for unexpected storage failures.
func (s *EmailService) Register(ctx context.Context, name, email string) (*domain.Email, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if !strings.Contains(email, "@") {
		return nil, ErrEmailInvalid
	}

	rec, err := repo.CreateEmail(ctx, s.DB, email, name)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return rec, nil
}
