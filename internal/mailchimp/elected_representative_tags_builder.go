package mailchimp

import (
	"strings"

	"engagement_platform/internal/db/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const TagElectedRepresentativeAdherent = "Adhérent"

var mandateTypeLabels = map[string]string{
	"conseiller_municipal":      "Conseiller municipal",
	"conseiller_communautaire":  "Conseiller communautaire",
	"conseiller_departemental":  "Conseiller départemental",
	"conseiller_regional":       "Conseiller régional",
	"conseiller_arrondissement": "Conseiller d'arrondissement",
	"depute":                    "Député",
	"senateur":                  "Sénateur",
	"euro_depute":               "Député européen",
	"maire":                     "Maire",
}

// ElectedRepresentativeTagsBuilder is safe for concurrent use.
type ElectedRepresentativeTagsBuilder struct{}

func NewElectedRepresentativeTagsBuilder() *ElectedRepresentativeTagsBuilder {
	return &ElectedRepresentativeTagsBuilder{}
}

// BuildTags returns the labels describing the current mandates, political
// functions and labels of an elected representative, without duplicates.
func (b *ElectedRepresentativeTagsBuilder) BuildTags(representative *models.ElectedRepresentative) []string {
	var tags []string
	seen := make(map[string]bool)

	add := func(tag string) {
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, mandate := range representative.CurrentMandates() {
		add(b.label(mandate.Type))
	}

	for _, function := range representative.PoliticalFunctions {
		add(b.label(function))
	}

	for _, label := range representative.Labels {
		add(label)
	}

	if representative.Adherent {
		add(TagElectedRepresentativeAdherent)
	}

	return tags
}

func (b *ElectedRepresentativeTagsBuilder) label(code string) string {
	if label, ok := mandateTypeLabels[code]; ok {
		return label
	}
	// A Caser keeps state while transforming, so each label gets its own.
	return cases.Title(language.French).String(strings.ReplaceAll(code, "_", " "))
}
