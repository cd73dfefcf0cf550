package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrRecruitNotFound     = errors.New("recruit not found")
	ErrProspectNotFound    = errors.New("prospect not found")
	ErrProfileNotFound     = errors.New("no program profile found")
	ErrHistoryNotFound     = errors.New("history entry not found")
	ErrInvalidDate         = errors.New("recorded_date must be YYYY-MM-DD")
	ErrUnsupportedSource   = errors.New("unsupported source")
	ErrNoExternalIDs       = errors.New("recruit has no external ids")
	ErrBadRankingsResponse = errors.New("unreadable rankings response")
)

const uniqueViolation = "23505"

// isUniqueViolation reports a duplicate-key write, either translated by gorm
// or raw from postgres.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
