package repositories

import (
	"context"
	"fmt"

	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

type electionRepository struct {
	repository
}

type ElectionRepository interface {
	GetOneByUUID(electionUUID uuid.UUID) (*models.Election, error)
	GetManyOpen() ([]*models.Election, error)
	// Update loads the election locked for update, applies fn and saves the
	// result in the same transaction. Nothing is saved when fn fails.
	Update(ctx context.Context, electionID int64, fn func(election *models.Election) error) (*models.Election, error)
}

func NewElectionRepository(db *pg.DB) ElectionRepository {
	return &electionRepository{
		repository: repository{
			db: db,
		},
	}
}

func withElectionRelations(q *orm.Query) *orm.Query {
	return q.
		Relation("Designation").
		Relation("Result").
		Relation("Pools").
		Relation("Rounds", func(q *orm.Query) (*orm.Query, error) {
			return q.Order("id ASC"), nil
		}).
		Relation("Rounds.Pools")
}

func (r *electionRepository) GetOneByUUID(electionUUID uuid.UUID) (*models.Election, error) {
	election := &models.Election{}

	err := withElectionRelations(r.db.Model(election)).
		Where("election.uuid = ?", electionUUID).
		Select()

	return election, wrapNotFound(err)
}

func (r *electionRepository) GetManyOpen() ([]*models.Election, error) {
	elections := make([]*models.Election, 0)

	err := withElectionRelations(r.db.Model(&elections)).
		Where("election.status = ?", models.ElectionStatusOpen).
		OrderExpr("election.id ASC").
		Select()

	return elections, err
}

func (r *electionRepository) Update(ctx context.Context, electionID int64, fn func(election *models.Election) error) (*models.Election, error) {
	election := &models.Election{}

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		err := withElectionRelations(tx.Model(election)).
			Where("election.id = ?", electionID).
			For("UPDATE OF election").
			Select()
		if err != nil {
			return wrapNotFound(err)
		}

		if err := fn(election); err != nil {
			return err
		}

		return saveElection(tx, election)
	})
	if err != nil {
		return nil, err
	}

	return election, nil
}

func saveElection(tx *pg.Tx, election *models.Election) error {
	_, err := tx.Model(election).
		Column("status", "closed_at", "second_round_end_date").
		WherePK().
		Update()
	if err != nil {
		return fmt.Errorf("failed to update election: %w", err)
	}

	for _, round := range election.Rounds {
		round.ElectionID = election.ID

		if round.ID != 0 {
			if _, err := tx.Model(round).Column("active").WherePK().Update(); err != nil {
				return fmt.Errorf("failed to update election round: %w", err)
			}
			continue
		}

		if _, err := tx.Model(round).Insert(); err != nil {
			return fmt.Errorf("failed to insert election round: %w", err)
		}

		for _, pool := range round.Pools {
			roundPool := &models.ElectionRoundPool{ElectionRoundID: round.ID, ElectionPoolID: pool.ID}
			if _, err := tx.Model(roundPool).Insert(); err != nil {
				return fmt.Errorf("failed to attach pool to election round: %w", err)
			}
		}
	}

	if election.Result != nil {
		election.Result.ElectionID = election.ID

		_, err := tx.Model(election.Result).
			OnConflict("(election_id) DO UPDATE").
			Set("round_results = EXCLUDED.round_results").
			Set("updated_at = now()").
			Insert()
		if err != nil {
			return fmt.Errorf("failed to save election result: %w", err)
		}
	}

	return nil
}
