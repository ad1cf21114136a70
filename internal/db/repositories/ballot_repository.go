package repositories

import (
	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type ballotRepository struct {
	repository
}

type BallotRepository interface {
	Create(request *models.Ballot) (*models.Ballot, error)
	GetManyByRound(roundID int64) ([]*models.Ballot, error)
}

func NewBallotRepository(db *pg.DB) BallotRepository {
	return &ballotRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *ballotRepository) Create(request *models.Ballot) (*models.Ballot, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *ballotRepository) GetManyByRound(roundID int64) ([]*models.Ballot, error) {
	ballots := make([]*models.Ballot, 0)

	err := r.db.Model(&ballots).
		Where("election_round_id = ?", roundID).
		OrderExpr("id ASC").
		Select()

	return ballots, err
}
