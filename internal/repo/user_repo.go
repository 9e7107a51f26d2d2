// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the User model.
//
// Error semantics:
//   - GetUser returns ErrNotFound when the user does not exist.
//   - EnsureUser and UpsertPremium are single-statement upserts, so a grant
//     and a concurrent entitlement read of the same user observe a consistent
//     before-or-after view, never a torn write.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-moviebot-backend/internal/domain"
)

// EnsureUser inserts a user row on first sight and is a no-op when the row
// already exists (insert-or-ignore; the original JoinedAt and premium state
// are preserved). Called for every observed interaction.
func EnsureUser(ctx context.Context, db *gorm.DB, id int64, displayName string) error {
	u := &domain.User{
		ID:          id,
		DisplayName: displayName,
		JoinedAt:    time.Now().UTC(),
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(u).Error
}

// GetUser fetches a user by ID, or ErrNotFound if missing.
func GetUser(ctx context.Context, db *gorm.DB, id int64) (*domain.User, error) {
	var u domain.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertPremium sets the premium window for a user in one atomic statement,
// creating the row if the user has never been seen. The expiry always
// replaces the previous one; callers compute it from the grant time.
func UpsertPremium(ctx context.Context, db *gorm.DB, id int64, expiresAt time.Time) error {
	u := &domain.User{
		ID:               id,
		JoinedAt:         time.Now().UTC(),
		IsPremium:        true,
		PremiumExpiresAt: &expiresAt,
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_premium", "premium_expires_at"}),
		}).
		Create(u).Error
}

// CountUsers returns the total number of observed users.
func CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.User{}).Count(&total).Error
	return total, err
}

// CountPremiumUsers returns the number of users whose premium window is
// still open at the given instant. Expiry is evaluated here, lazily; rows
// are never swept.
func CountPremiumUsers(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.User{}).
		Where("is_premium = ? AND premium_expires_at IS NOT NULL AND premium_expires_at > ?", true, now).
		Count(&total).Error
	return total, err
}
