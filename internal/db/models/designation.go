package models

import "time"

type DesignationStatus string

func (s DesignationStatus) String() string {
	return string(s)
}

const (
	DesignationStatusNotStarted DesignationStatus = "not_started"
	DesignationStatusScheduled  DesignationStatus = "scheduled"
	DesignationStatusOpened     DesignationStatus = "opened"
	DesignationStatusInProgress DesignationStatus = "in_progress"
	DesignationStatusClosed     DesignationStatus = "closed"
)

func (s DesignationStatus) IsActive() bool {
	switch s {
	case DesignationStatusOpened, DesignationStatusScheduled, DesignationStatusInProgress:
		return true
	}
	return false
}

type Designation struct {
	tableName struct{} `pg:"designations"`

	ID                      int64      `json:"id" pg:",pk"`
	Type                    string     `json:"type" pg:",notnull"`
	Label                   string     `json:"label" pg:",notnull"`
	CandidacyStartDate      *time.Time `json:"candidacy_start_date"`
	VoteStartDate           time.Time  `json:"vote_start_date" pg:",notnull"`
	VoteEndDate             time.Time  `json:"vote_end_date" pg:",notnull"`
	AdditionalRoundDuration int        `json:"additional_round_duration" pg:",notnull,use_zero"`
	ResultDisplayDelay      int        `json:"result_display_delay" pg:",notnull,use_zero"`
}

func (d *Designation) IsVotePeriodActive(now time.Time) bool {
	return !now.Before(d.VoteStartDate) && !now.After(d.VoteEndDate)
}

// IsResultPeriodActive reports whether results are still published, which
// lasts ResultDisplayDelay days after the vote ends.
func (d *Designation) IsResultPeriodActive(now time.Time) bool {
	return now.After(d.VoteEndDate) && !now.After(d.VoteEndDate.AddDate(0, 0, d.ResultDisplayDelay))
}

func (d *Designation) Status(now time.Time) DesignationStatus {
	switch {
	case now.After(d.VoteEndDate):
		return DesignationStatusClosed
	case !now.Before(d.VoteStartDate):
		return DesignationStatusInProgress
	case d.CandidacyStartDate == nil:
		return DesignationStatusScheduled
	case now.Before(*d.CandidacyStartDate):
		return DesignationStatusNotStarted
	default:
		return DesignationStatusOpened
	}
}
