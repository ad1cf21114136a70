package mailchimp

import (
	"fmt"

	"engagement_platform/internal/db/models"
)

type zoneMergeField struct {
	zoneType models.ZoneType
	field    string
}

// zoneMergeFields is ordered so payloads are built deterministically.
var zoneMergeFields = []zoneMergeField{
	{models.ZoneTypeBorough, "ZONE_BOROU"},
	{models.ZoneTypeCanton, "ZONE_CANT"},
	{models.ZoneTypeCity, "ZONE_CITY"},
	{models.ZoneTypeCityCommunity, "ZONE_CITYC"},
	{models.ZoneTypeConsularDistrict, "ZONE_CONSU"},
	{models.ZoneTypeCountry, "ZONE_COUNT"},
	{models.ZoneTypeCustom, "ZONE_CUSTO"},
	{models.ZoneTypeDepartment, "ZONE_DPT"},
	{models.ZoneTypeDistrict, "ZONE_DISTR"},
	{models.ZoneTypeForeignDistrict, "ZONE_FDE"},
	{models.ZoneTypeRegion, "ZONE_REG"},
	{models.ZoneTypeVotePlace, "ZONE_VOTEP"},
}

func ZoneMergeField(zoneType models.ZoneType) (string, bool) {
	for _, entry := range zoneMergeFields {
		if entry.zoneType == zoneType {
			return entry.field, true
		}
	}
	return "", false
}

func validateZoneMergeFields(zoneTypes []models.ZoneType) error {
	seen := make(map[string]models.ZoneType, len(zoneMergeFields))
	for _, entry := range zoneMergeFields {
		if other, ok := seen[entry.field]; ok {
			return fmt.Errorf("merge field %s is used by zone types %s and %s", entry.field, other, entry.zoneType)
		}
		seen[entry.field] = entry.zoneType
	}

	for _, zoneType := range zoneTypes {
		if _, ok := ZoneMergeField(zoneType); !ok {
			return fmt.Errorf("zone type %s has no merge field", zoneType)
		}
	}

	return nil
}
