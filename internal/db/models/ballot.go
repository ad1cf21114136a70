package models

import "time"

type BallotChoice struct {
	PoolID int64 `json:"pool_id"`
	// Zero means a blank vote.
	CandidateGroupID int64 `json:"candidate_group_id"`
}

type Ballot struct {
	tableName struct{} `pg:"voting_platform_ballots"`

	ID              int64          `json:"id" pg:",pk"`
	ElectionRoundID int64          `json:"election_round_id" pg:",notnull"`
	Choices         []BallotChoice `json:"choices"`
	VotedAt         time.Time      `json:"voted_at" pg:"default:now()"`
}

// ComputeRoundResult counts ballots of round per pool. A pool elects the
// candidate group with strictly the most votes; a tie elects nobody.
func ComputeRoundResult(round *ElectionRound, ballots []*Ballot) *RoundResult {
	result := &RoundResult{RoundID: round.ID}

	pools := make(map[int64]*PoolResult, len(round.Pools))
	groups := make(map[int64]map[int64]int, len(round.Pools))

	for _, pool := range round.Pools {
		poolResult := &PoolResult{PoolID: pool.ID, Code: pool.Code}
		groups[pool.ID] = make(map[int64]int, len(pool.CandidateGroups))

		for _, group := range pool.CandidateGroups {
			groups[pool.ID][group.ID] = len(poolResult.CandidateGroups)
			poolResult.CandidateGroups = append(poolResult.CandidateGroups, CandidateGroupResult{
				CandidateGroupID: group.ID,
				Label:            group.Label,
			})
		}

		pools[pool.ID] = poolResult
		result.PoolResults = append(result.PoolResults, poolResult)
	}

	for _, ballot := range ballots {
		if ballot.ElectionRoundID != round.ID {
			continue
		}

		result.Participated++
		expressed := false

		for _, choice := range ballot.Choices {
			poolResult, ok := pools[choice.PoolID]
			if !ok {
				continue
			}

			if choice.CandidateGroupID == 0 {
				poolResult.Blank++
				continue
			}

			index, ok := groups[choice.PoolID][choice.CandidateGroupID]
			if !ok {
				continue
			}

			poolResult.CandidateGroups[index].Votes++
			poolResult.Expressed++
			expressed = true
		}

		if expressed {
			result.Expressed++
		} else {
			result.Blank++
		}
	}

	for _, poolResult := range result.PoolResults {
		poolResult.ElectedGroupID = electedGroup(poolResult.CandidateGroups)
	}

	return result
}

func electedGroup(groups []CandidateGroupResult) int64 {
	var (
		winner int64
		best   int
		tied   bool
	)

	for _, group := range groups {
		switch {
		case group.Votes > best:
			winner, best, tied = group.CandidateGroupID, group.Votes, false
		case group.Votes == best && best > 0:
			tied = true
		}
	}

	if tied || best == 0 {
		return 0
	}

	return winner
}
