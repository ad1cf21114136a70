package repositories

import (
	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type applicationRequestRepository struct {
	repository
}

type ApplicationRequestRepository interface {
	GetManyUpdatedAfter(cursor SyncCursor, limit int) ([]*models.ApplicationRequest, error)
}

func NewApplicationRequestRepository(db *pg.DB) ApplicationRequestRepository {
	return &applicationRequestRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *applicationRequestRepository) GetManyUpdatedAfter(cursor SyncCursor, limit int) ([]*models.ApplicationRequest, error) {
	requests := make([]*models.ApplicationRequest, 0)

	err := r.db.Model(&requests).
		Where("(updated_at, id) > (?, ?)", cursor.ChangedAt, cursor.ID).
		OrderExpr("updated_at ASC, id ASC").
		Limit(limit).
		Select()

	return requests, err
}
