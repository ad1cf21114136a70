package repositories

import (
	"errors"
	"time"

	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

var ErrNotFound = errors.New("not found")

func init() {
	orm.RegisterTable((*models.ElectionRoundPool)(nil))
}

// SyncCursor is a position in a change feed ordered by (changed_at, id).
// Feeds return the rows strictly after it.
type SyncCursor struct {
	ChangedAt time.Time
	ID        int64
}

type repository struct {
	db *pg.DB
}

func wrapNotFound(err error) error {
	if errors.Is(err, pg.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
