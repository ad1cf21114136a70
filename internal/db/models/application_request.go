package models

import "time"

type ApplicationRequestKind string

func (k ApplicationRequestKind) String() string {
	return string(k)
}

const (
	ApplicationRequestKindVolunteer   ApplicationRequestKind = "volunteer"
	ApplicationRequestKindRunningMate ApplicationRequestKind = "running_mate"
)

type ApplicationRequest struct {
	tableName struct{} `pg:"application_requests"`

	ID                        int64                  `json:"id" pg:",pk"`
	Kind                      ApplicationRequestKind `json:"kind" pg:",notnull"`
	EmailAddress              string                 `json:"email_address" pg:",notnull"`
	Gender                    string                 `json:"gender"`
	FirstName                 string                 `json:"first_name"`
	LastName                  string                 `json:"last_name"`
	FavoriteCities            []string               `json:"favorite_cities" pg:",array"`
	FavoriteCityPrefixedCodes []string               `json:"favorite_city_prefixed_codes" pg:",array"`
	ReferentTagCodes          []string               `json:"referent_tag_codes" pg:",array"`
	TakenForCity              *string                `json:"taken_for_city"`
	Adherent                  bool                   `json:"adherent" pg:",notnull,use_zero"`
	UpdatedAt                 time.Time              `json:"updated_at" pg:"default:now()"`
}

func (r *ApplicationRequest) IsVolunteer() bool {
	return r.Kind == ApplicationRequestKindVolunteer
}
