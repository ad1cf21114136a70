package models

import "time"

type ElectionResult struct {
	tableName struct{} `pg:"voting_platform_election_results"`

	ID           int64          `json:"id" pg:",pk"`
	ElectionID   int64          `json:"election_id" pg:",notnull,unique"`
	RoundResults []*RoundResult `json:"round_results"`
	UpdatedAt    time.Time      `json:"updated_at" pg:"default:now()"`
}

type RoundResult struct {
	RoundID      int64         `json:"round_id"`
	Participated int           `json:"participated"`
	Expressed    int           `json:"expressed"`
	Blank        int           `json:"blank"`
	PoolResults  []*PoolResult `json:"pool_results"`
}

type CandidateGroupResult struct {
	CandidateGroupID int64  `json:"candidate_group_id"`
	Label            string `json:"label"`
	Votes            int    `json:"votes"`
}

type PoolResult struct {
	PoolID          int64                  `json:"pool_id"`
	Code            string                 `json:"code"`
	Expressed       int                    `json:"expressed"`
	Blank           int                    `json:"blank"`
	CandidateGroups []CandidateGroupResult `json:"candidate_groups"`
	ElectedGroupID  int64                  `json:"elected_group_id"`
}

func (r *PoolResult) IsElected() bool {
	return r.ElectedGroupID != 0
}

func (r *RoundResult) HasOnlyElectedPool() bool {
	if len(r.PoolResults) == 0 {
		return false
	}

	for _, pool := range r.PoolResults {
		if !pool.IsElected() {
			return false
		}
	}

	return true
}

// UndecidedPoolIDs lists the pools without an elected group, in result order.
func (r *RoundResult) UndecidedPoolIDs() []int64 {
	var ids []int64
	for _, pool := range r.PoolResults {
		if !pool.IsElected() {
			ids = append(ids, pool.PoolID)
		}
	}
	return ids
}

func (r *ElectionResult) RoundResult(round *ElectionRound) *RoundResult {
	if round == nil {
		return nil
	}

	for _, result := range r.RoundResults {
		if result.RoundID == round.ID {
			return result
		}
	}

	return nil
}

// SetRoundResult replaces the stored result of the same round, or appends it.
func (r *ElectionResult) SetRoundResult(result *RoundResult) {
	for i, existing := range r.RoundResults {
		if existing.RoundID == result.RoundID {
			r.RoundResults[i] = result
			return
		}
	}
	r.RoundResults = append(r.RoundResults, result)
}
