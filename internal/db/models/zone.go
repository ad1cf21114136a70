package models

import (
	"fmt"

	"github.com/google/uuid"
)

type ZoneType string

func (t ZoneType) String() string {
	return string(t)
}

const (
	ZoneTypeBorough          ZoneType = "borough"
	ZoneTypeCanton           ZoneType = "canton"
	ZoneTypeCity             ZoneType = "city"
	ZoneTypeCityCommunity    ZoneType = "city_community"
	ZoneTypeConsularDistrict ZoneType = "consular_district"
	ZoneTypeCountry          ZoneType = "country"
	ZoneTypeCustom           ZoneType = "custom"
	ZoneTypeDepartment       ZoneType = "department"
	ZoneTypeDistrict         ZoneType = "district"
	ZoneTypeForeignDistrict  ZoneType = "foreign_district"
	ZoneTypeRegion           ZoneType = "region"
	ZoneTypeVotePlace        ZoneType = "vote_place"
)

// ZoneTypes lists every zone type known to the platform.
var ZoneTypes = []ZoneType{
	ZoneTypeBorough,
	ZoneTypeCanton,
	ZoneTypeCity,
	ZoneTypeCityCommunity,
	ZoneTypeConsularDistrict,
	ZoneTypeCountry,
	ZoneTypeCustom,
	ZoneTypeDepartment,
	ZoneTypeDistrict,
	ZoneTypeForeignDistrict,
	ZoneTypeRegion,
	ZoneTypeVotePlace,
}

const ZoneTagSubZone = "sub_zone"

type Zone struct {
	tableName struct{} `pg:"geo_zones"`

	ID          int64     `json:"id" pg:",pk"`
	UUID        uuid.UUID `json:"uuid" pg:"type:uuid,notnull,unique"`
	Type        ZoneType  `json:"type" pg:",notnull"`
	Code        string    `json:"code" pg:",notnull"`
	Name        string    `json:"name" pg:",notnull"`
	TeamCode    string    `json:"team_code"`
	Active      bool      `json:"active" pg:",notnull,use_zero"`
	Tags        []string  `json:"tags" pg:",array"`
	PostalCodes []string  `json:"postal_codes" pg:",array"`
	ParentIDs   []int64   `json:"parent_ids" pg:",array"`
	Parents     []*Zone   `json:"-" pg:"-"`
}

func (z *Zone) HasTag(tag string) bool {
	for _, t := range z.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (z *Zone) String() string {
	return fmt.Sprintf("%s (%s)", z.Name, z.Code)
}
