package models

import "time"

type Mandate struct {
	Type     string     `json:"type"`
	ZoneCode string     `json:"zone_code"`
	OnGoing  bool       `json:"on_going"`
	Elected  bool       `json:"elected"`
	BeginAt  time.Time  `json:"begin_at"`
	FinishAt *time.Time `json:"finish_at"`
}

type ElectedRepresentative struct {
	tableName struct{} `pg:"elected_representatives"`

	ID                 int64      `json:"id" pg:",pk"`
	EmailAddress       string     `json:"email_address"`
	Gender             string     `json:"gender"`
	FirstName          string     `json:"first_name" pg:",notnull"`
	LastName           string     `json:"last_name" pg:",notnull"`
	BirthDate          *time.Time `json:"birth_date"`
	Adherent           bool       `json:"adherent" pg:",notnull,use_zero"`
	EmailUnsubscribed  bool       `json:"email_unsubscribed" pg:",notnull,use_zero"`
	Mandates           []Mandate  `json:"mandates"`
	PoliticalFunctions []string   `json:"political_functions" pg:",array"`
	Labels             []string   `json:"labels" pg:",array"`
	ArchivedAt         *time.Time `json:"archived_at"`
	UpdatedAt          time.Time  `json:"updated_at" pg:"default:now()"`
}

// IsArchived reports whether the representative was removed and must leave
// the mailing list.
func (r *ElectedRepresentative) IsArchived() bool {
	return r.ArchivedAt != nil
}

func (r *ElectedRepresentative) CurrentMandates() []Mandate {
	var mandates []Mandate
	for _, mandate := range r.Mandates {
		if mandate.OnGoing && mandate.Elected {
			mandates = append(mandates, mandate)
		}
	}
	return mandates
}
