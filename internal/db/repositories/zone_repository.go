package repositories

import (
	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type zoneRepository struct {
	repository
}

type ZoneRepository interface {
	// GetMany returns the zones with the given ids, parents resolved.
	GetMany(ids []int64) ([]*models.Zone, error)
	GetManyByPostalCode(postalCode string) ([]*models.Zone, error)
}

func NewZoneRepository(db *pg.DB) ZoneRepository {
	return &zoneRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *zoneRepository) GetMany(ids []int64) ([]*models.Zone, error) {
	zones, err := r.selectByIDs(ids)
	if err != nil {
		return nil, err
	}

	if err := r.resolveParents(zones); err != nil {
		return nil, err
	}

	return zones, nil
}

func (r *zoneRepository) GetManyByPostalCode(postalCode string) ([]*models.Zone, error) {
	zones := make([]*models.Zone, 0)

	err := r.db.Model(&zones).
		Where("? = ANY(postal_codes)", postalCode).
		Where("active = ?", true).
		OrderExpr("id ASC").
		Select()

	return zones, err
}

func (r *zoneRepository) selectByIDs(ids []int64) ([]*models.Zone, error) {
	zones := make([]*models.Zone, 0, len(ids))
	if len(ids) == 0 {
		return zones, nil
	}

	err := r.db.Model(&zones).
		Where("id IN (?)", pg.In(ids)).
		OrderExpr("id ASC").
		Select()

	return zones, err
}

func (r *zoneRepository) resolveParents(zones []*models.Zone) error {
	var parentIDs []int64
	seen := make(map[int64]bool)

	for _, zone := range zones {
		for _, id := range zone.ParentIDs {
			if !seen[id] {
				seen[id] = true
				parentIDs = append(parentIDs, id)
			}
		}
	}

	parents, err := r.selectByIDs(parentIDs)
	if err != nil {
		return err
	}

	byID := make(map[int64]*models.Zone, len(parents))
	for _, parent := range parents {
		byID[parent.ID] = parent
	}

	for _, zone := range zones {
		zone.Parents = zone.Parents[:0]
		for _, id := range zone.ParentIDs {
			if parent, ok := byID[id]; ok {
				zone.Parents = append(zone.Parents, parent)
			}
		}
	}

	return nil
}
