// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the aggregate counts behind the
// operator stats report. Each function is context-aware and safe to call
// from services or handlers.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Stats is the aggregate snapshot reported to the operator.
type Stats struct {
	Users        int64 `json:"users"`
	PremiumUsers int64 `json:"premium_users"`
	Movies       int64 `json:"movies"`
}

// CatalogStats returns the current user, active-premium, and movie counts.
// Premium counts are evaluated against the supplied instant so the report
// reflects lazily-expired windows without any sweeping.
func CatalogStats(ctx context.Context, db *gorm.DB, now time.Time) (Stats, error) {
	var s Stats
	var err error
	if s.Users, err = CountUsers(ctx, db); err != nil {
		return Stats{}, err
	}
	if s.PremiumUsers, err = CountPremiumUsers(ctx, db, now); err != nil {
		return Stats{}, err
	}
	if s.Movies, err = CountMovies(ctx, db); err != nil {
		return Stats{}, err
	}
	return s, nil
}
