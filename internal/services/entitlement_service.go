// Package services – EntitlementService
//
// This file implements the EntitlementService, which owns per-user premium
// windows. Entitlement is a pure read over the stored window: a user is
// entitled iff the premium flag is set, an expiry exists, and the clock is
// before it. Expiry is never swept; it lapses lazily at read time. Grants
// upsert the window in a single atomic statement, and a repeated grant
// replaces the window measured from the grant time — windows never stack.
package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-moviebot-backend/internal/repo"
)

// EntitlementService answers "is this user currently entitled" and applies
// premium grants.
type EntitlementService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB

	// Now returns the current time; tests override it to move the clock.
	Now func() time.Time
}

// NewEntitlementService constructs an EntitlementService on the real clock.
func NewEntitlementService(db *gorm.DB) *EntitlementService {
	return &EntitlementService{DB: db, Now: time.Now}
}

// IsEntitled reports whether the user's premium window is open right now.
// Unknown users, users without the premium flag, and users whose flag is
// set but whose expiry is nil (a valid-but-inert state) are all not
// entitled. Each call reads the store directly; there is no caching.
func (s *EntitlementService) IsEntitled(ctx context.Context, userID int64) (bool, error) {
	u, err := repo.GetUser(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if !u.IsPremium || u.PremiumExpiresAt == nil {
		return false, nil
	}
	return s.Now().UTC().Before(*u.PremiumExpiresAt), nil
}

// Grant opens a premium window of the given number of days for the user,
// creating the account row if needed, and returns the new expiry. The
// window is measured from the grant time, so granting again before expiry
// resets it rather than extending the old one. A non-positive duration is
// rejected with ErrInvalidGrant and nothing is written.
func (s *EntitlementService) Grant(ctx context.Context, userID int64, days int) (time.Time, error) {
	if days <= 0 {
		return time.Time{}, ErrInvalidGrant
	}
	expiry := s.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)
	if err := repo.UpsertPremium(ctx, s.DB, userID, expiry); err != nil {
		return time.Time{}, err
	}
	return expiry, nil
}
