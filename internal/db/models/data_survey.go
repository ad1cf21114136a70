package models

import "time"

type DataSurvey struct {
	tableName struct{} `pg:"jemarche_data_surveys"`

	ID           int64     `json:"id" pg:",pk"`
	EmailAddress string    `json:"email_address"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PostalCode   string    `json:"postal_code"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
}
