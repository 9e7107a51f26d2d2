// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Movie model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations. They
// follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - CreateMovie relies on the (title_key, year) unique index for duplicate
//     detection and returns ErrDuplicate on a unique violation. Concurrent
//     inserts of the same announcement therefore yield exactly one row: the
//     check and the insert are a single atomic statement, never a read
//     followed by a separate write.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-moviebot-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// ErrDuplicate indicates that a movie with the same normalized
// (title, year) identity already exists.
var ErrDuplicate = errors.New("duplicate movie")

// CreateMovie inserts a movie row with its normalized TitleKey and a UTC
// creation timestamp. If a row with the same (title_key, year) already
// exists it returns ErrDuplicate and leaves the stored row untouched, so
// the first-seen record's SourceText and Language always win.
func CreateMovie(ctx context.Context, db *gorm.DB, title, year, language, sourceText string) (*domain.Movie, error) {
	m := &domain.Movie{
		Title:      strings.TrimSpace(title),
		TitleKey:   domain.TitleKey(title),
		Year:       year,
		Language:   language,
		SourceText: sourceText,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return m, nil
}

// SearchMovies returns up to limit movies whose title contains the given
// substring, compared case-insensitively, ordered by insertion (oldest
// first). The query string is matched literally: LIKE metacharacters in it
// are escaped.
func SearchMovies(ctx context.Context, db *gorm.DB, query string, limit int) ([]domain.Movie, error) {
	var out []domain.Movie
	pattern := "%" + escapeLike(domain.TitleKey(query)) + "%"
	err := db.WithContext(ctx).
		Where("title_key LIKE ? ESCAPE '\\'", pattern).
		Order("id asc").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// DeleteMovieByTitle removes all movies whose normalized title equals the
// given title exactly (any year). It returns the number of rows removed.
func DeleteMovieByTitle(ctx context.Context, db *gorm.DB, title string) (int64, error) {
	res := db.WithContext(ctx).
		Where("title_key = ?", domain.TitleKey(title)).
		Delete(&domain.Movie{})
	return res.RowsAffected, res.Error
}

// DeleteAllMovies removes every movie row and returns the number removed.
func DeleteAllMovies(ctx context.Context, db *gorm.DB) (int64, error) {
	res := db.WithContext(ctx).
		Where("1 = 1").
		Delete(&domain.Movie{})
	return res.RowsAffected, res.Error
}

// CountMovies returns the total number of catalogued movies.
func CountMovies(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Movie{}).Count(&total).Error
	return total, err
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// isUniqueViolation detects unique-constraint violations across drivers
// that may not map to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "unique constraint") ||
		strings.Contains(low, "constraint failed: unique") ||
		strings.Contains(low, "duplicate key")
}
