package mailchimp

import (
	"fmt"
	"strings"
	"time"

	"engagement_platform/internal/db/models"

	"go.uber.org/zap"
)

const (
	TagCertified           = "certified"
	TagCommitteeVoter      = "committee_voter"
	TagFrenchOutsideFrance = "FOF"
	TagVolunteer           = "Bénévole"
	TagRunningMate         = "Colistier"
	TagApplicationAdherent = "Adhérent"
)

// RequestBuilder turns platform profiles into Mailchimp payloads. It keeps no
// state between calls.
type RequestBuilder struct {
	mapping    ObjectIDMapping
	tagBuilder *ElectedRepresentativeTagsBuilder
	logger     *zap.SugaredLogger
}

func NewRequestBuilder(
	mapping ObjectIDMapping,
	tagBuilder *ElectedRepresentativeTagsBuilder,
	logger *zap.SugaredLogger,
) (*RequestBuilder, error) {
	if err := validateZoneMergeFields(models.ZoneTypes); err != nil {
		return nil, fmt.Errorf("invalid zone merge fields: %w", err)
	}

	if tagBuilder == nil {
		tagBuilder = NewElectedRepresentativeTagsBuilder()
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &RequestBuilder{
		mapping:    mapping,
		tagBuilder: tagBuilder,
		logger:     logger,
	}, nil
}

// contact accumulates the values of one profile before rendering.
type contact struct {
	email                  string
	gender                 string
	firstName              string
	lastName               string
	birthDate              *time.Time
	city                   string
	zipCode                string
	countryName            string
	adhesionDate           *time.Time
	lastMembershipDonation *time.Time
	source                 string
	certified              TriState
	adherent               TriState
	committeeUUID          string
	loginGroup             string
	teamCode               string
	favoriteCities         []string
	favoriteCitiesCodes    []string
	referentTagCodes       []string
	takenForCity           *string
	codeCanton             string
	codeDepartment         string
	codeRegion             string

	zones    map[models.ZoneType]*models.Zone
	subZones map[models.ZoneType]*models.Zone

	subscribe    bool
	interests    map[string]bool
	activeTags   []string
	inactiveTags []string
}

func newContact(email string) *contact {
	return &contact{
		email:     email,
		subscribe: true,
		zones:     make(map[models.ZoneType]*models.Zone),
		subZones:  make(map[models.ZoneType]*models.Zone),
	}
}

func (b *RequestBuilder) CreateReplaceEmailRequest(oldEmail, newEmail string) MemberRequest {
	return MemberRequest{MemberIdentifier: oldEmail, EmailAddress: newEmail}
}

func (b *RequestBuilder) MemberPayload(memberIdentifier string, adherent *models.Adherent) SyncPayload {
	c := newContact(adherent.EmailAddress)
	c.gender = adherent.Gender
	c.firstName = adherent.FirstName
	c.lastName = adherent.LastName
	c.birthDate = adherent.BirthDate
	c.zipCode = adherent.PostalCode
	c.city = adherent.CityName
	c.countryName = adherent.CountryName
	c.adhesionDate = adherent.RegisteredAt
	c.lastMembershipDonation = adherent.LastMembershipDonation
	c.source = adherent.Source
	c.activeTags = memberActiveTags(adherent)
	c.inactiveTags = memberInactiveTags(adherent)
	c.subscribe = adherent.IsSubscribed()
	c.setZones(adherent.Zones)

	if adherent.CommitteeUUID != nil {
		c.committeeUUID = adherent.CommitteeUUID.String()
	}

	if adherent.Source == "" || adherent.IsRenaissanceUser() {
		c.teamCode = b.teamCode(adherent)
		c.certified = TriStateOf(adherent.Certified)
		c.loginGroup = adherent.LastLoginGroup
		c.interests = b.interests(adherent)
	}

	return c.payload(memberIdentifier)
}

func (b *RequestBuilder) ElectedRepresentativePayload(memberIdentifier string, representative *models.ElectedRepresentative) SyncPayload {
	c := newContact(representative.EmailAddress)
	c.gender = representative.Gender
	c.firstName = representative.FirstName
	c.lastName = representative.LastName
	c.birthDate = representative.BirthDate
	c.adherent = TriStateOf(representative.Adherent)
	c.activeTags = b.tagBuilder.BuildTags(representative)
	c.subscribe = !representative.EmailUnsubscribed

	return c.payload(memberIdentifier)
}

func (b *RequestBuilder) ApplicationRequestPayload(memberIdentifier string, request *models.ApplicationRequest) SyncPayload {
	c := newContact(request.EmailAddress)
	c.gender = request.Gender
	c.firstName = request.FirstName
	c.lastName = request.LastName
	c.favoriteCities = request.FavoriteCities
	c.favoriteCitiesCodes = request.FavoriteCityPrefixedCodes
	c.referentTagCodes = request.ReferentTagCodes
	c.takenForCity = request.TakenForCity

	if request.IsVolunteer() {
		c.activeTags = []string{TagVolunteer}
	} else {
		c.activeTags = []string{TagRunningMate}
	}

	if request.Adherent {
		c.activeTags = append(c.activeTags, TagApplicationAdherent)
	}

	return c.payload(memberIdentifier)
}

// DataSurveyPayload builds the payload of a survey respondent. zones are the
// zones matching the respondent's postal code, resolved by the caller.
func (b *RequestBuilder) DataSurveyPayload(memberIdentifier string, survey *models.DataSurvey, zones []*models.Zone) SyncPayload {
	c := newContact(survey.EmailAddress)
	c.firstName = survey.FirstName
	c.lastName = survey.LastName
	c.zipCode = survey.PostalCode

	for _, zone := range zones {
		switch zone.Type {
		case models.ZoneTypeCanton:
			c.codeCanton = zone.Code
		case models.ZoneTypeDepartment:
			c.codeDepartment = zone.Code
		case models.ZoneTypeRegion:
			c.codeRegion = zone.Code
		}
	}

	return c.payload(memberIdentifier)
}

// teamCode resolves the team code from the borough (capital residents) or
// the department / foreign district. Several candidates is ambiguous: a
// warning is logged and no team code is sent.
func (b *RequestBuilder) teamCode(adherent *models.Adherent) string {
	var zones []*models.Zone

	switch {
	case adherent.IsParisResident():
		zones = adherent.ZonesOfType(models.ZoneTypeBorough)
	case adherent.IsForeignResident():
		zones = adherent.ParentZonesOfType(models.ZoneTypeForeignDistrict)
	default:
		zones = adherent.ParentZonesOfType(models.ZoneTypeDepartment)
	}

	if len(zones) > 1 {
		b.logger.Warnw("cannot find only one geo zone for mailchimp team code", "adherent_id", adherent.ID, "zones", len(zones))
	}

	if len(zones) != 1 {
		return ""
	}

	return zones[0].TeamCode
}

func (b *RequestBuilder) interests(adherent *models.Adherent) map[string]bool {
	interests := make(map[string]bool)
	for _, id := range b.mapping.InterestIDs() {
		interests[id] = false
	}

	activate := func(key string) {
		if id, ok := b.mapping.InterestID(key); ok {
			interests[id] = true
		}
	}

	for _, key := range adherent.Interests {
		activate(key)
	}

	for _, code := range adherent.SubscriptionTypeCodes {
		activate(code)
	}

	roles := []struct {
		key    string
		active bool
	}{
		{InterestKeyCommitteeSupervisor, adherent.Supervisor},
		{InterestKeyCommitteeProvisionalSupervisor, adherent.ProvisionalSupervisor},
		{InterestKeyCommitteeHost, adherent.CommitteeHost},
		{InterestKeyCommitteeFollower, adherent.CommitteeFollower},
		{InterestKeyCommitteeNoFollower, !adherent.CommitteeFollower},
		{InterestKeyReferent, adherent.Referent},
		{InterestKeyDeputy, adherent.Deputy},
		{InterestKeyCoordinator, adherent.RegionalCoordinator},
		{InterestKeyProcurationManager, adherent.ProcurationManager},
		{InterestKeyAssessorManager, adherent.AssessorManager},
		{InterestKeyBoardMember, adherent.BoardMember},
	}

	for _, role := range roles {
		if role.active {
			activate(role.key)
		}
	}

	return interests
}

func memberActiveTags(adherent *models.Adherent) []string {
	tags := append([]string{}, adherent.ReferentTagCodes...)

	if adherent.Country != models.CountryFrance {
		tags = append(tags, TagFrenchOutsideFrance)
	}

	if adherent.Certified {
		tags = append(tags, TagCertified)
	}

	if adherent.VotingCommitteeMember {
		tags = append(tags, TagCommitteeVoter)
	}

	if adherent.TerritorialCouncilUUID != nil {
		tags = append(tags, adherent.TerritorialCouncilUUID.String())
	}

	return tags
}

func memberInactiveTags(adherent *models.Adherent) []string {
	var tags []string

	if adherent.Country == models.CountryFrance {
		tags = append(tags, TagFrenchOutsideFrance)
	}

	if !adherent.Certified {
		tags = append(tags, TagCertified)
	}

	if !adherent.VotingCommitteeMember {
		tags = append(tags, TagCommitteeVoter)
	}

	return tags
}

// setZones keeps the first active zone of each type, own zones before
// parents. Zones tagged as sub-zones are kept apart.
func (c *contact) setZones(zones []*models.Zone) {
	for _, zone := range zones {
		c.setZone(zone)
	}

	for _, zone := range zones {
		for _, parent := range zone.Parents {
			c.setZone(parent)
		}
	}
}

func (c *contact) setZone(zone *models.Zone) {
	if !zone.Active {
		return
	}

	target := c.zones
	if zone.HasTag(models.ZoneTagSubZone) {
		target = c.subZones
	}

	if _, ok := target[zone.Type]; !ok {
		target[zone.Type] = zone
	}
}

func (c *contact) payload(memberIdentifier string) SyncPayload {
	return SyncPayload{
		MemberIdentifier: memberIdentifier,
		EmailAddress:     c.email,
		Subscribe:        c.subscribe,
		MergeFields:      c.mergeFields(),
		Interests:        c.interests,
		ActiveTags:       unique(c.activeTags),
		InactiveTags:     unique(c.inactiveTags),
	}
}

func (c *contact) mergeFields() map[string]string {
	fields := make(map[string]string)

	set := func(field, value string) {
		if value != "" {
			fields[field] = value
		}
	}

	setDate := func(field string, value *time.Time) {
		if value != nil {
			fields[field] = value.Format(DateFormat)
		}
	}

	set(MergeFieldGender, c.gender)
	set(MergeFieldFirstName, c.firstName)
	set(MergeFieldLastName, c.lastName)
	setDate(MergeFieldBirthdate, c.birthDate)
	set(MergeFieldCertified, c.certified.MergeValue())
	set(MergeFieldCommittee, c.committeeUUID)
	set(MergeFieldAdherent, c.adherent.MergeValue())
	setDate(MergeFieldLastMembershipDonation, c.lastMembershipDonation)
	set(MergeFieldSource, c.source)

	if c.city != "" {
		fields[MergeFieldCity] = fmt.Sprintf("%s (%s)", c.city, c.zipCode)
	}

	set(MergeFieldZipCode, c.zipCode)
	set(MergeFieldCountry, c.countryName)
	setDate(MergeFieldAdhesionDate, c.adhesionDate)

	if len(c.favoriteCities) > 0 {
		fields[MergeFieldFavoriteCities] = strings.Join(c.favoriteCities, ",")
		set(MergeFieldFavoriteCitiesCodes, strings.Join(c.favoriteCitiesCodes, ","))
	}

	set(MergeFieldReferentTags, strings.Join(c.referentTagCodes, ","))

	if c.takenForCity != nil {
		set(MergeFieldMunicipalTeam, *c.takenForCity)
	}

	for _, entry := range zoneMergeFields {
		value := ""
		if zone, ok := c.zones[entry.zoneType]; ok {
			value = zone.String()
		}

		if subZone, ok := c.subZones[entry.zoneType]; ok {
			if value == "" {
				value = subZone.String()
			} else {
				value += fmt.Sprintf(" (%s)", subZone.Code)
			}
		}

		set(entry.field, value)
	}

	set(MergeFieldCodeCanton, c.codeCanton)
	set(MergeFieldCodeDepartment, c.codeDepartment)
	set(MergeFieldCodeRegion, c.codeRegion)
	set(MergeFieldTeamCode, c.teamCode)
	set(MergeFieldLastLoginGroup, c.loginGroup)

	return fields
}

func unique(values []string) []string {
	if values == nil {
		return nil
	}

	result := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		result = append(result, value)
	}

	return result
}
