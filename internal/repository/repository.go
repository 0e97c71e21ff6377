package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/prabhakarsharma9453-web/OffbeatTrips-sub002/internal/models"
)

// listOrder is the universal tie-break for catalog listings: explicit display
// order first, then newest records. Postgres handles the composite ordering
// natively, so no in-memory sort pass is needed.
const listOrder = "display_order ASC, created_at DESC"

// translate remaps store-level errors onto the shared sentinels so raw gorm
// errors never cross the repository boundary.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "SQLSTATE 23505"):
		return models.ErrConflict
	}
	return err
}

// like builds a case-insensitive substring pattern for free-text search.
func like(q string) string {
	return "%" + q + "%"
}
