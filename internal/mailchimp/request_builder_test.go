package mailchimp

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"engagement_platform/internal/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var interestIDs = map[string]string{
	"culture":                      "i-culture",
	"europe":                       "i-europe",
	"subscribed_emails_referents":  "i-referents",
	InterestKeyCommitteeSupervisor: "i-supervisor",
	InterestKeyCommitteeFollower:   "i-follower",
	InterestKeyCommitteeNoFollower: "i-no-follower",
	InterestKeyReferent:            "i-referent",
	InterestKeyBoardMember:         "i-board",
}

func newTestBuilder(t *testing.T) (*RequestBuilder, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)

	builder, err := NewRequestBuilder(NewObjectIDMapping(interestIDs), nil, zap.New(core).Sugar())
	require.NoError(t, err)

	return builder, logs
}

func newTestAdherent() *models.Adherent {
	birthDate := time.Date(1985, time.June, 2, 0, 0, 0, 0, time.UTC)
	registeredAt := time.Date(2017, time.April, 20, 9, 30, 0, 0, time.UTC)

	return &models.Adherent{
		ID:              7,
		EmailAddress:    "jane.doe@example.org",
		Gender:          "female",
		FirstName:       "Jane",
		LastName:        "Doe",
		BirthDate:       &birthDate,
		PostalCode:      "69001",
		CityName:        "Lyon",
		Country:         models.CountryFrance,
		CountryName:     "France",
		RegisteredAt:    &registeredAt,
		Enabled:         true,
		EmailSubscribed: true,
	}
}

func tagNames(request MemberTagsRequest, status string) []string {
	var names []string
	for _, tag := range request.Tags {
		if tag.Status == status {
			names = append(names, tag.Name)
		}
	}
	return names
}

func TestZoneMergeFields_CoverEveryZoneType(t *testing.T) {
	for _, zoneType := range models.ZoneTypes {
		field, ok := ZoneMergeField(zoneType)
		assert.True(t, ok, "zone type %s has no merge field", zoneType)
		assert.NotEmpty(t, field)
	}

	assert.NoError(t, validateZoneMergeFields(models.ZoneTypes))
	assert.Error(t, validateZoneMergeFields([]models.ZoneType{"unknown"}))
}

func TestMemberPayload_Fields(t *testing.T) {
	builder, _ := newTestBuilder(t)
	adherent := newTestAdherent()
	committee := uuid.MustParse("6c9a1f3e-5a4b-4f8d-9e21-5d7b8c3a2f10")
	adherent.CommitteeUUID = &committee

	payload := builder.MemberPayload("jane.doe@example.org", adherent)

	assert.Equal(t, "jane.doe@example.org", payload.MemberIdentifier)
	assert.Equal(t, "jane.doe@example.org", payload.EmailAddress)
	assert.True(t, payload.Subscribe)
	assert.Equal(t, map[string]string{
		MergeFieldGender:       "female",
		MergeFieldFirstName:    "Jane",
		MergeFieldLastName:     "Doe",
		MergeFieldBirthdate:    "1985-06-02",
		MergeFieldCertified:    "non",
		MergeFieldCommittee:    committee.String(),
		MergeFieldCity:         "Lyon (69001)",
		MergeFieldZipCode:      "69001",
		MergeFieldCountry:      "France",
		MergeFieldAdhesionDate: "2017-04-20",
	}, payload.MergeFields)
}

func TestMemberPayload_NeverSendsEmptyMergeFields(t *testing.T) {
	builder, _ := newTestBuilder(t)

	payload := builder.MemberPayload("id", &models.Adherent{EmailAddress: "a@example.org", Country: models.CountryFrance})

	for field, value := range payload.MergeFields {
		assert.NotEmpty(t, value, "merge field %s is empty", field)
	}
}

func TestMemberPayload_CertifiedInFrance(t *testing.T) {
	builder, _ := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.Certified = true

	payload := builder.MemberPayload("id", adherent)

	assert.Contains(t, payload.ActiveTags, TagCertified)
	assert.NotContains(t, payload.InactiveTags, TagCertified)
	assert.Contains(t, payload.InactiveTags, TagFrenchOutsideFrance)
	assert.NotContains(t, payload.ActiveTags, TagFrenchOutsideFrance)
	assert.Equal(t, "oui", payload.MergeFields[MergeFieldCertified])
}

func TestMemberPayload_ActiveTags(t *testing.T) {
	builder, _ := newTestBuilder(t)
	council := uuid.MustParse("0b1e7c52-8f0a-4e55-b7a1-2f3c4d5e6f70")
	adherent := newTestAdherent()
	adherent.Country = "DE"
	adherent.ReferentTagCodes = []string{"69", "FOF"}
	adherent.VotingCommitteeMember = true
	adherent.TerritorialCouncilUUID = &council

	payload := builder.MemberPayload("id", adherent)

	assert.Equal(t, []string{"69", TagFrenchOutsideFrance, TagCommitteeVoter, council.String()}, payload.ActiveTags)
	assert.Equal(t, []string{TagCertified}, payload.InactiveTags)
}

func TestMemberPayload_TagSetsAreDisjoint(t *testing.T) {
	builder, _ := newTestBuilder(t)

	for _, certified := range []bool{true, false} {
		for _, country := range []string{models.CountryFrance, "BE"} {
			for _, voter := range []bool{true, false} {
				adherent := newTestAdherent()
				adherent.Certified = certified
				adherent.Country = country
				adherent.VotingCommitteeMember = voter

				payload := builder.MemberPayload("id", adherent)
				request := payload.TagsRequest()

				for _, tag := range []string{TagCertified, TagFrenchOutsideFrance, TagCommitteeVoter} {
					assert.NotEqual(t, contains(payload.ActiveTags, tag), contains(payload.InactiveTags, tag), "tag %s must be asserted exactly once", tag)
				}

				active := tagNames(request, TagStatusActive)
				for _, name := range tagNames(request, TagStatusInactive) {
					assert.NotContains(t, active, name)
				}
			}
		}
	}
}

func TestMemberPayload_TeamCodeFromSingleBorough(t *testing.T) {
	builder, logs := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.PostalCode = "75011"
	adherent.Zones = []*models.Zone{
		{ID: 1, Type: models.ZoneTypeBorough, Code: "75111", Name: "Paris 11e", TeamCode: "T-75-11", Active: true},
	}

	payload := builder.MemberPayload("id", adherent)

	assert.Equal(t, "T-75-11", payload.MergeFields[MergeFieldTeamCode])
	assert.Equal(t, 0, logs.Len())
}

func TestMemberPayload_AmbiguousTeamCode(t *testing.T) {
	builder, logs := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.PostalCode = "75011"
	adherent.Zones = []*models.Zone{
		{ID: 1, Type: models.ZoneTypeBorough, Code: "75111", TeamCode: "T-75-11", Active: true},
		{ID: 2, Type: models.ZoneTypeBorough, Code: "75112", TeamCode: "T-75-12", Active: true},
	}

	payload := builder.MemberPayload("id", adherent)

	_, ok := payload.MergeFields[MergeFieldTeamCode]
	assert.False(t, ok)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestMemberPayload_TeamCodeFromDepartment(t *testing.T) {
	builder, logs := newTestBuilder(t)
	department := &models.Zone{ID: 10, Type: models.ZoneTypeDepartment, Code: "69", Name: "Rhône", TeamCode: "T-69", Active: true}
	adherent := newTestAdherent()
	adherent.Zones = []*models.Zone{
		{ID: 1, Type: models.ZoneTypeCity, Code: "69123", Name: "Lyon", Active: true, Parents: []*models.Zone{department}},
		{ID: 2, Type: models.ZoneTypeDistrict, Code: "69-1", Name: "Rhône 1", Active: true, Parents: []*models.Zone{department}},
	}

	payload := builder.MemberPayload("id", adherent)

	assert.Equal(t, "T-69", payload.MergeFields[MergeFieldTeamCode])
	assert.Equal(t, "Lyon (69123)", payload.MergeFields["ZONE_CITY"])
	assert.Equal(t, "Rhône (69)", payload.MergeFields["ZONE_DPT"])
	assert.Equal(t, 0, logs.Len())
}

func TestMemberPayload_SubZones(t *testing.T) {
	builder, _ := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.Zones = []*models.Zone{
		{ID: 1, Type: models.ZoneTypeDistrict, Code: "69-1", Name: "Rhône 1", Active: true},
		{ID: 2, Type: models.ZoneTypeDistrict, Code: "69-1-N", Name: "Rhône 1 nord", Active: true, Tags: []string{models.ZoneTagSubZone}},
		{ID: 3, Type: models.ZoneTypeCanton, Code: "6901", Name: "Canton 1", Active: true, Tags: []string{models.ZoneTagSubZone}},
		{ID: 4, Type: models.ZoneTypeRegion, Code: "84", Name: "ARA", Active: false},
	}

	payload := builder.MemberPayload("id", adherent)

	assert.Equal(t, "Rhône 1 (69-1) (69-1-N)", payload.MergeFields["ZONE_DISTR"])
	assert.Equal(t, "Canton 1 (6901)", payload.MergeFields["ZONE_CANT"])
	_, ok := payload.MergeFields["ZONE_REG"]
	assert.False(t, ok)
}

func TestMemberPayload_InterestsFullyEnumerated(t *testing.T) {
	builder, _ := newTestBuilder(t)

	payload := builder.MemberPayload("id", newTestAdherent())

	require.Len(t, payload.Interests, len(interestIDs))
	for _, id := range interestIDs {
		_, ok := payload.Interests[id]
		assert.True(t, ok, "interest %s is missing", id)
	}
	assert.True(t, payload.Interests["i-no-follower"])
	assert.False(t, payload.Interests["i-culture"])
}

func TestMemberPayload_InterestsActivated(t *testing.T) {
	builder, _ := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.Interests = []string{"culture", "unknown"}
	adherent.SubscriptionTypeCodes = []string{"subscribed_emails_referents"}
	adherent.Supervisor = true
	adherent.CommitteeFollower = true
	adherent.BoardMember = true

	payload := builder.MemberPayload("id", adherent)

	assert.Equal(t, map[string]bool{
		"i-culture":     true,
		"i-europe":      false,
		"i-referents":   true,
		"i-supervisor":  true,
		"i-follower":    true,
		"i-no-follower": false,
		"i-referent":    false,
		"i-board":       true,
	}, payload.Interests)
}

func TestMemberPayload_ExternalSource(t *testing.T) {
	builder, _ := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.Source = "besoindeurope"
	adherent.Certified = true
	adherent.LastLoginGroup = "app"

	payload := builder.MemberPayload("id", adherent)

	assert.Nil(t, payload.Interests)
	assert.Equal(t, "besoindeurope", payload.MergeFields[MergeFieldSource])
	_, ok := payload.MergeFields[MergeFieldCertified]
	assert.False(t, ok)
	_, ok = payload.MergeFields[MergeFieldLastLoginGroup]
	assert.False(t, ok)
}

func TestMemberPayload_Unsubscribed(t *testing.T) {
	builder, _ := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.EmailSubscribed = false

	request := builder.MemberPayload("id", adherent).MemberRequest()

	assert.Equal(t, StatusUnsubscribed, request.Status)
	assert.Equal(t, StatusUnsubscribed, request.StatusIfNew)
}

func TestMemberPayload_Idempotent(t *testing.T) {
	builder, _ := newTestBuilder(t)
	adherent := newTestAdherent()
	adherent.Interests = []string{"europe"}
	adherent.ReferentTagCodes = []string{"69"}
	adherent.Zones = []*models.Zone{{ID: 1, Type: models.ZoneTypeCity, Code: "69123", Name: "Lyon", Active: true}}

	first := builder.MemberPayload("id", adherent)
	second := builder.MemberPayload("id", adherent)

	firstMember, err := json.Marshal(first.MemberRequest())
	require.NoError(t, err)
	secondMember, err := json.Marshal(second.MemberRequest())
	require.NoError(t, err)
	assert.Equal(t, string(firstMember), string(secondMember))

	firstTags, err := json.Marshal(first.TagsRequest())
	require.NoError(t, err)
	secondTags, err := json.Marshal(second.TagsRequest())
	require.NoError(t, err)
	assert.Equal(t, string(firstTags), string(secondTags))
}

func TestTagsRequest_RemovedTags(t *testing.T) {
	payload := SyncPayload{
		MemberIdentifier: "id",
		ActiveTags:       []string{"69", TagCertified},
		InactiveTags:     []string{TagCommitteeVoter},
	}

	request := payload.TagsRequest("75", "69", TagCommitteeVoter)

	assert.Equal(t, []MemberTag{
		{Name: "75", Status: TagStatusInactive},
		{Name: TagCommitteeVoter, Status: TagStatusInactive},
		{Name: "69", Status: TagStatusActive},
		{Name: TagCertified, Status: TagStatusActive},
	}, request.Tags)
}

func TestElectedRepresentativePayload(t *testing.T) {
	builder, _ := newTestBuilder(t)
	representative := &models.ElectedRepresentative{
		EmailAddress:      "mayor@example.org",
		FirstName:         "Paul",
		LastName:          "Martin",
		Adherent:          true,
		EmailUnsubscribed: true,
		Mandates: []models.Mandate{
			{Type: "maire", OnGoing: true, Elected: true},
			{Type: "depute", OnGoing: false, Elected: true},
		},
		PoliticalFunctions: []string{"president_of_epci"},
		Labels:             []string{"LaREM"},
	}

	payload := builder.ElectedRepresentativePayload("mayor@example.org", representative)

	assert.False(t, payload.Subscribe)
	assert.Equal(t, "oui", payload.MergeFields[MergeFieldAdherent])
	assert.Equal(t, []string{"Maire", "President Of Epci", "LaREM", TagElectedRepresentativeAdherent}, payload.ActiveTags)
	assert.Empty(t, payload.InactiveTags)
	assert.Nil(t, payload.Interests)
}

func TestElectedRepresentativeTagsBuilder_ConcurrentUse(t *testing.T) {
	builder := NewElectedRepresentativeTagsBuilder()
	representative := &models.ElectedRepresentative{
		PoliticalFunctions: []string{"president_of_epci", "vice_president"},
	}

	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = builder.BuildTags(representative)
		}(i)
	}
	wg.Wait()

	for _, tags := range results {
		assert.Equal(t, []string{"President Of Epci", "Vice President"}, tags)
	}
}

func TestApplicationRequestPayload(t *testing.T) {
	builder, _ := newTestBuilder(t)
	city := "Lyon"
	request := &models.ApplicationRequest{
		Kind:                      models.ApplicationRequestKindRunningMate,
		EmailAddress:              "mate@example.org",
		FirstName:                 "Ana",
		FavoriteCities:            []string{"Lyon", "Villeurbanne"},
		FavoriteCityPrefixedCodes: []string{"69_69123", "69_69266"},
		ReferentTagCodes:          []string{"69"},
		TakenForCity:              &city,
		Adherent:                  true,
	}

	payload := builder.ApplicationRequestPayload("mate@example.org", request)

	assert.Equal(t, []string{TagRunningMate, TagApplicationAdherent}, payload.ActiveTags)
	assert.Equal(t, "Lyon,Villeurbanne", payload.MergeFields[MergeFieldFavoriteCities])
	assert.Equal(t, "69_69123,69_69266", payload.MergeFields[MergeFieldFavoriteCitiesCodes])
	assert.Equal(t, "69", payload.MergeFields[MergeFieldReferentTags])
	assert.Equal(t, "Lyon", payload.MergeFields[MergeFieldMunicipalTeam])
}

func TestApplicationRequestPayload_Volunteer(t *testing.T) {
	builder, _ := newTestBuilder(t)

	payload := builder.ApplicationRequestPayload("v@example.org", &models.ApplicationRequest{
		Kind:         models.ApplicationRequestKindVolunteer,
		EmailAddress: "v@example.org",
	})

	assert.Equal(t, []string{TagVolunteer}, payload.ActiveTags)
	_, ok := payload.MergeFields[MergeFieldMunicipalTeam]
	assert.False(t, ok)
}

func TestDataSurveyPayload(t *testing.T) {
	builder, _ := newTestBuilder(t)
	survey := &models.DataSurvey{EmailAddress: "s@example.org", FirstName: "Léa", PostalCode: "69001"}
	zones := []*models.Zone{
		{Type: models.ZoneTypeCanton, Code: "6901"},
		{Type: models.ZoneTypeDepartment, Code: "69"},
		{Type: models.ZoneTypeRegion, Code: "84"},
		{Type: models.ZoneTypeCity, Code: "69123"},
	}

	payload := builder.DataSurveyPayload("s@example.org", survey, zones)

	assert.Equal(t, map[string]string{
		MergeFieldFirstName:      "Léa",
		MergeFieldZipCode:        "69001",
		MergeFieldCodeCanton:     "6901",
		MergeFieldCodeDepartment: "69",
		MergeFieldCodeRegion:     "84",
	}, payload.MergeFields)
	assert.True(t, payload.Subscribe)
}

func TestCreateReplaceEmailRequest(t *testing.T) {
	builder, _ := newTestBuilder(t)

	request := builder.CreateReplaceEmailRequest("old@example.org", "new@example.org")

	body, err := json.Marshal(request)
	require.NoError(t, err)
	assert.Equal(t, "old@example.org", request.MemberIdentifier)
	assert.JSONEq(t, `{"email_address":"new@example.org"}`, string(body))
}

func TestTriState(t *testing.T) {
	assert.False(t, Unknown.IsKnown())
	assert.Equal(t, "", Unknown.MergeValue())
	assert.Equal(t, True, TriStateOf(true))
	assert.Equal(t, "oui", True.MergeValue())
	assert.Equal(t, "non", TriStateOf(false).MergeValue())
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
