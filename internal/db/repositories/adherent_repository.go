package repositories

import (
	"engagement_platform/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type adherentRepository struct {
	repository
	zones *zoneRepository
}

type AdherentRepository interface {
	GetOneByEmail(email string) (*models.Adherent, error)
	// GetManyUpdatedAfter returns adherents with their zones and zone parents.
	GetManyUpdatedAfter(cursor SyncCursor, limit int) ([]*models.Adherent, error)
}

func NewAdherentRepository(db *pg.DB) AdherentRepository {
	return &adherentRepository{
		repository: repository{
			db: db,
		},
		zones: &zoneRepository{repository: repository{db: db}},
	}
}

func (r *adherentRepository) GetOneByEmail(email string) (*models.Adherent, error) {
	adherent := &models.Adherent{}

	err := r.db.Model(adherent).
		Where("email_address = ?", email).
		Select()
	if err != nil {
		return nil, wrapNotFound(err)
	}

	if err := r.loadZones([]*models.Adherent{adherent}); err != nil {
		return nil, err
	}

	return adherent, nil
}

func (r *adherentRepository) GetManyUpdatedAfter(cursor SyncCursor, limit int) ([]*models.Adherent, error) {
	adherents := make([]*models.Adherent, 0)

	err := r.db.Model(&adherents).
		Where("(updated_at, id) > (?, ?)", cursor.ChangedAt, cursor.ID).
		OrderExpr("updated_at ASC, id ASC").
		Limit(limit).
		Select()
	if err != nil {
		return nil, err
	}

	if err := r.loadZones(adherents); err != nil {
		return nil, err
	}

	return adherents, nil
}

func (r *adherentRepository) loadZones(adherents []*models.Adherent) error {
	var ids []int64
	seen := make(map[int64]bool)

	for _, adherent := range adherents {
		for _, id := range adherent.ZoneIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	zones, err := r.zones.GetMany(ids)
	if err != nil {
		return err
	}

	byID := make(map[int64]*models.Zone, len(zones))
	for _, zone := range zones {
		byID[zone.ID] = zone
	}

	for _, adherent := range adherents {
		adherent.Zones = make([]*models.Zone, 0, len(adherent.ZoneIDs))
		for _, id := range adherent.ZoneIDs {
			if zone, ok := byID[id]; ok {
				adherent.Zones = append(adherent.Zones, zone)
			}
		}
	}

	return nil
}
