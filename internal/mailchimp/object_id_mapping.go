package mailchimp

import "sort"

const (
	InterestKeyCommitteeSupervisor            = "committee_supervisor"
	InterestKeyCommitteeProvisionalSupervisor = "committee_provisional_supervisor"
	InterestKeyCommitteeHost                  = "committee_host"
	InterestKeyCommitteeFollower              = "committee_follower"
	InterestKeyCommitteeNoFollower            = "committee_no_follower"
	InterestKeyReferent                       = "referent"
	InterestKeyDeputy                         = "deputy"
	InterestKeyCoordinator                    = "coordinator"
	InterestKeyProcurationManager             = "procuration_manager"
	InterestKeyAssessorManager                = "assessor_manager"
	InterestKeyBoardMember                    = "board_member"
)

// ObjectIDMapping resolves platform interest keys to Mailchimp interest ids.
type ObjectIDMapping struct {
	interestIDs map[string]string
}

func NewObjectIDMapping(interestIDs map[string]string) ObjectIDMapping {
	ids := make(map[string]string, len(interestIDs))
	for key, id := range interestIDs {
		ids[key] = id
	}
	return ObjectIDMapping{interestIDs: ids}
}

func (m ObjectIDMapping) InterestID(key string) (string, bool) {
	id, ok := m.interestIDs[key]
	return id, ok
}

// InterestIDs returns every known interest id, sorted.
func (m ObjectIDMapping) InterestIDs() []string {
	ids := make([]string, 0, len(m.interestIDs))
	for _, id := range m.interestIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
