package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	CountryFrance = "FR"

	SourceRenaissance = "renaissance"
)

type Adherent struct {
	tableName struct{} `pg:"adherents"`

	ID                     int64      `json:"id" pg:",pk"`
	UUID                   uuid.UUID  `json:"uuid" pg:"type:uuid,notnull,unique"`
	EmailAddress           string     `json:"email_address" pg:",notnull,unique"`
	Gender                 string     `json:"gender"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	BirthDate              *time.Time `json:"birth_date"`
	PostalCode             string     `json:"postal_code"`
	CityName               string     `json:"city_name"`
	Country                string     `json:"country" pg:",notnull"`
	CountryName            string     `json:"country_name"`
	RegisteredAt           *time.Time `json:"registered_at"`
	LastMembershipDonation *time.Time `json:"last_membership_donation"`
	Source                 string     `json:"source"`
	Enabled                bool       `json:"enabled" pg:",notnull,use_zero"`
	EmailSubscribed        bool       `json:"email_subscribed" pg:",notnull,use_zero"`
	Certified              bool       `json:"certified" pg:",notnull,use_zero"`
	LastLoginGroup         string     `json:"last_login_group"`
	Interests              []string   `json:"interests" pg:",array"`
	SubscriptionTypeCodes  []string   `json:"subscription_type_codes" pg:",array"`
	ReferentTagCodes       []string   `json:"referent_tag_codes" pg:",array"`
	ZoneIDs                []int64    `json:"zone_ids" pg:",array"`
	Zones                  []*Zone    `json:"-" pg:"-"`
	CommitteeUUID          *uuid.UUID `json:"committee_uuid" pg:"type:uuid"`
	TerritorialCouncilUUID *uuid.UUID `json:"territorial_council_uuid" pg:"type:uuid"`

	Supervisor            bool `json:"supervisor" pg:",use_zero"`
	ProvisionalSupervisor bool `json:"provisional_supervisor" pg:",use_zero"`
	CommitteeHost         bool `json:"committee_host" pg:",use_zero"`
	CommitteeFollower     bool `json:"committee_follower" pg:",use_zero"`
	VotingCommitteeMember bool `json:"voting_committee_member" pg:",use_zero"`
	Referent              bool `json:"referent" pg:",use_zero"`
	Deputy                bool `json:"deputy" pg:",use_zero"`
	RegionalCoordinator   bool `json:"regional_coordinator" pg:",use_zero"`
	ProcurationManager    bool `json:"procuration_manager" pg:",use_zero"`
	AssessorManager       bool `json:"assessor_manager" pg:",use_zero"`
	BoardMember           bool `json:"board_member" pg:",use_zero"`

	UpdatedAt time.Time `json:"updated_at" pg:"default:now()"`
}

func (a *Adherent) IsRenaissanceUser() bool {
	return a.Source == SourceRenaissance
}

func (a *Adherent) IsForeignResident() bool {
	return a.Country != CountryFrance
}

func (a *Adherent) IsParisResident() bool {
	return !a.IsForeignResident() && strings.HasPrefix(a.PostalCode, "75")
}

func (a *Adherent) IsSubscribed() bool {
	return a.Enabled && a.EmailSubscribed
}

func (a *Adherent) ZonesOfType(zoneType ZoneType) []*Zone {
	var zones []*Zone
	for _, zone := range a.Zones {
		if zone.Type == zoneType {
			zones = append(zones, zone)
		}
	}
	return zones
}

// ParentZonesOfType returns the zones of zoneType among the adherent's zones
// and their parents, without duplicates.
func (a *Adherent) ParentZonesOfType(zoneType ZoneType) []*Zone {
	var zones []*Zone
	seen := make(map[int64]bool)

	add := func(zone *Zone) {
		if zone.Type != zoneType || seen[zone.ID] {
			return
		}
		seen[zone.ID] = true
		zones = append(zones, zone)
	}

	for _, zone := range a.Zones {
		add(zone)
		for _, parent := range zone.Parents {
			add(parent)
		}
	}

	return zones
}
