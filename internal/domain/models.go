// Package domain defines the persistence models for captured emails and
// optimization events. These types are mapped with GORM and form the core
// data layer of the listing optimizer.
package domain

import "time"

// Email represents a self-reported user identity captured on first use.
// The email address is the natural key; no verification is performed and
// rows are never updated or deleted by the application.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Name: free-text display name supplied by the user.
//   - Email: case-sensitive address, unique across the table.
//   - CreatedAt: timestamp managed by GORM.
type Email struct {
	ID        string    `json:"id"         gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name"       gorm:"type:text;not null"`
	Email     string    `json:"email"      gorm:"type:text;not null;uniqueIndex:ux_emails_email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Email.
func (Email) TableName() string { return "emails" }

// Optimization represents one successful optimization run charged against
// the owning email's daily quota. Rows are immutable and never deleted;
// the quota "resets" purely by the time-window query, not by deletion.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - Email: owning address; indexed for the count-since-midnight query.
//     Not a foreign key at the application layer.
//   - ListingURL: optional original listing URL.
//   - CreatedAt: indexed so the daily window scan stays cheap.
type Optimization struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	Email      string    `json:"email"       gorm:"type:text;not null;index:idx_optimizations_email"`
	ListingURL *string   `json:"listing_url,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"  gorm:"index:idx_optimizations_created_at"`
}

// TableName returns the database table name for Optimization.
func (Optimization) TableName() string { return "optimizations" }
