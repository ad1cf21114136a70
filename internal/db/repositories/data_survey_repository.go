package repositories

import (
	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type dataSurveyRepository struct {
	repository
}

type DataSurveyRepository interface {
	GetManyCreatedAfter(cursor SyncCursor, limit int) ([]*models.DataSurvey, error)
}

func NewDataSurveyRepository(db *pg.DB) DataSurveyRepository {
	return &dataSurveyRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *dataSurveyRepository) GetManyCreatedAfter(cursor SyncCursor, limit int) ([]*models.DataSurvey, error) {
	surveys := make([]*models.DataSurvey, 0)

	err := r.db.Model(&surveys).
		Where("(created_at, id) > (?, ?)", cursor.ChangedAt, cursor.ID).
		Where("email_address IS NOT NULL AND email_address != ''").
		OrderExpr("created_at ASC, id ASC").
		Limit(limit).
		Select()

	return surveys, err
}
