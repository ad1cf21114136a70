package repositories

import (
	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type electedRepresentativeRepository struct {
	repository
}

type ElectedRepresentativeRepository interface {
	GetManyUpdatedAfter(cursor SyncCursor, limit int) ([]*models.ElectedRepresentative, error)
}

func NewElectedRepresentativeRepository(db *pg.DB) ElectedRepresentativeRepository {
	return &electedRepresentativeRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *electedRepresentativeRepository) GetManyUpdatedAfter(cursor SyncCursor, limit int) ([]*models.ElectedRepresentative, error) {
	representatives := make([]*models.ElectedRepresentative, 0)

	err := r.db.Model(&representatives).
		Where("(updated_at, id) > (?, ?)", cursor.ChangedAt, cursor.ID).
		OrderExpr("updated_at ASC, id ASC").
		Limit(limit).
		Select()

	return representatives, err
}
