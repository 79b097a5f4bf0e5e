// Aggregate usage counters for the public analytics endpoint.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-listing-optimizer/internal/repo"
)

// Stats holds the public usage counters.
type Stats struct {
	TotalOptimizations int64 `json:"totalOptimizations"`
	TotalEmails        int64 `json:"totalEmails"`
}

// StatsService reads aggregate usage numbers from the ledger.
type StatsService struct {
	DB *gorm.DB
}

// Totals returns the all-time optimization and identity counts.
func (s *StatsService) Totals(ctx context.Context) (*Stats, error) {
	opts, err := repo.TotalOptimizations(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	emails, err := repo.CountEmails(ctx, s.DB)
	if err != nil {
		return nil, err
	}
	return &Stats{TotalOptimizations: opts, TotalEmails: emails}, nil
}
