package models

import (
	"time"

	"github.com/google/uuid"
)

type ElectionStatus string

func (s ElectionStatus) String() string {
	return string(s)
}

const (
	ElectionStatusOpen   ElectionStatus = "open"
	ElectionStatusClosed ElectionStatus = "closed"
)

type Election struct {
	tableName struct{} `pg:"voting_platform_elections"`

	ID                 int64            `json:"id" pg:",pk"`
	UUID               uuid.UUID        `json:"uuid" pg:"type:uuid,notnull,unique"`
	DesignationID      int64            `json:"designation_id" pg:",notnull"`
	Designation        *Designation     `json:"designation" pg:"rel:has-one"`
	Status             ElectionStatus   `json:"status" pg:",notnull,default:'open'"`
	ClosedAt           *time.Time       `json:"closed_at"`
	SecondRoundEndDate *time.Time       `json:"second_round_end_date"`
	Rounds             []*ElectionRound `json:"rounds" pg:"rel:has-many"`
	Pools              []*ElectionPool  `json:"pools" pg:"rel:has-many"`
	Result             *ElectionResult  `json:"result" pg:"rel:belongs-to"`
	CreatedAt          time.Time        `json:"created_at" pg:"default:now()"`
}

type ElectionRound struct {
	tableName struct{} `pg:"voting_platform_election_rounds"`

	ID         int64           `json:"id" pg:",pk"`
	ElectionID int64           `json:"election_id" pg:",notnull"`
	Active     bool            `json:"active" pg:",notnull,use_zero"`
	Pools      []*ElectionPool `json:"pools" pg:"many2many:voting_platform_election_round_pools"`
	CreatedAt  time.Time       `json:"created_at" pg:"default:now()"`
}

type ElectionRoundPool struct {
	tableName struct{} `pg:"voting_platform_election_round_pools"`

	ElectionRoundID int64 `pg:",pk"`
	ElectionPoolID  int64 `pg:",pk"`
}

type CandidateGroup struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type ElectionPool struct {
	tableName struct{} `pg:"voting_platform_election_pools"`

	ID              int64            `json:"id" pg:",pk"`
	ElectionID      int64            `json:"election_id" pg:",notnull"`
	Code            string           `json:"code" pg:",notnull"`
	CandidateGroups []CandidateGroup `json:"candidate_groups"`
}

// NewElection creates an open election whose first round contests every pool.
func NewElection(designation *Designation, pools []*ElectionPool) *Election {
	return &Election{
		UUID:          uuid.New(),
		DesignationID: designation.ID,
		Designation:   designation,
		Status:        ElectionStatusOpen,
		Pools:         pools,
		Rounds:        []*ElectionRound{{Active: true, Pools: pools}},
	}
}

func (e *Election) Title() string {
	return e.Designation.Label
}

func (e *Election) DesignationType() string {
	return e.Designation.Type
}

func (e *Election) IsOpen() bool {
	return e.Status == ElectionStatusOpen
}

func (e *Election) IsClosed() bool {
	return e.Status == ElectionStatusClosed
}

// CurrentRound returns the active round, or nil when none is active.
func (e *Election) CurrentRound() *ElectionRound {
	for _, round := range e.Rounds {
		if round.Active {
			return round
		}
	}
	return nil
}

func (e *Election) FirstRound() *ElectionRound {
	if len(e.Rounds) == 0 {
		return nil
	}
	return e.Rounds[0]
}

func (e *Election) HasSecondRound() bool {
	return e.SecondRoundEndDate != nil
}

// StartSecondRound disables the current round and opens a new one on pools.
// The election is left untouched when it is closed or has no active round.
func (e *Election) StartSecondRound(pools []*ElectionPool) error {
	if e.IsClosed() {
		return ErrElectionClosed
	}

	current := e.CurrentRound()
	if current == nil {
		return ErrNoActiveRound
	}

	current.Active = false
	e.Rounds = append(e.Rounds, &ElectionRound{
		ElectionID: e.ID,
		Active:     true,
		Pools:      pools,
	})

	endDate := e.Designation.VoteEndDate.AddDate(0, 0, e.Designation.AdditionalRoundDuration)
	e.SecondRoundEndDate = &endDate

	return nil
}

func (e *Election) RealVoteEndDate() time.Time {
	if e.SecondRoundEndDate != nil {
		return *e.SecondRoundEndDate
	}
	return e.Designation.VoteEndDate
}

func (e *Election) IsSecondRoundVotePeriodActive(now time.Time) bool {
	return e.SecondRoundEndDate != nil && !now.After(*e.SecondRoundEndDate)
}

func (e *Election) IsVotePeriodActive(now time.Time) bool {
	return e.IsOpen() && (e.Designation.IsVotePeriodActive(now) || e.IsSecondRoundVotePeriodActive(now))
}

func (e *Election) HasResult() bool {
	return e.Result != nil
}

func (e *Election) CanClose(now time.Time) bool {
	if e.IsClosed() {
		return false
	}

	if e.SecondRoundEndDate != nil {
		return e.SecondRoundEndDate.Before(now)
	}

	if e.Result == nil {
		return false
	}

	roundResult := e.Result.RoundResult(e.CurrentRound())

	return roundResult != nil && roundResult.HasOnlyElectedPool()
}

// Close marks the election closed at now. Eligibility is the caller's job
// (see CanClose); only a second close is rejected.
func (e *Election) Close(now time.Time) error {
	if e.IsClosed() {
		return ErrElectionClosed
	}

	e.Status = ElectionStatusClosed
	e.ClosedAt = &now

	return nil
}
