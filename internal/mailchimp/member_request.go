package mailchimp

const (
	DateFormat = "2006-01-02"

	StatusSubscribed   = "subscribed"
	StatusUnsubscribed = "unsubscribed"

	TagStatusActive   = "active"
	TagStatusInactive = "inactive"
)

const (
	MergeFieldFirstName              = "FNAME"
	MergeFieldLastName               = "LNAME"
	MergeFieldGender                 = "GENDER"
	MergeFieldBirthdate              = "BIRTHDATE"
	MergeFieldCity                   = "CITY"
	MergeFieldZipCode                = "ZIP_CODE"
	MergeFieldCountry                = "COUNTRY"
	MergeFieldAdhesionDate           = "ADHESION"
	MergeFieldCertified              = "CERT"
	MergeFieldAdherent               = "ISADHERENT"
	MergeFieldCommittee              = "COMMITTEE"
	MergeFieldLastMembershipDonation = "LAST_DON"
	MergeFieldSource                 = "SOURCE"
	MergeFieldFavoriteCities         = "FAVCITIES"
	MergeFieldFavoriteCitiesCodes    = "FAVCITIESC"
	MergeFieldReferentTags           = "REFTAGS"
	MergeFieldMunicipalTeam          = "MUNIC_TEAM"
	MergeFieldCodeCanton             = "CODE_CANT"
	MergeFieldCodeDepartment         = "CODE_DPT"
	MergeFieldCodeRegion             = "CODE_REG"
	MergeFieldTeamCode               = "TEAM_CODE"
	MergeFieldLastLoginGroup         = "LOGIN_GRP"
)

// MemberRequest is the body of a list member upsert.
type MemberRequest struct {
	MemberIdentifier string            `json:"-"`
	EmailAddress     string            `json:"email_address,omitempty"`
	EmailType        string            `json:"email_type,omitempty"`
	Status           string            `json:"status,omitempty"`
	StatusIfNew      string            `json:"status_if_new,omitempty"`
	MergeFields      map[string]string `json:"merge_fields,omitempty"`
	Interests        map[string]bool   `json:"interests,omitempty"`
}

type MemberTag struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// MemberTagsRequest is the body of the member tags endpoint.
type MemberTagsRequest struct {
	MemberIdentifier string      `json:"-"`
	Tags             []MemberTag `json:"tags"`
}

func (r *MemberTagsRequest) AddTag(name string, active bool) {
	status := TagStatusInactive
	if active {
		status = TagStatusActive
	}
	r.Tags = append(r.Tags, MemberTag{Name: name, Status: status})
}
