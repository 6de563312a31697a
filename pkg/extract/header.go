package extract

import (
	"strings"

	"github.com/macropower/cvgen/pkg/record"
)

// HeaderContext holds the identity and contact fields of a CV.
type HeaderContext struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LinkedInURL   string `json:"linkedin_url"`
	Nationality   string `json:"nationality"`
	BirthDate     string `json:"birth_date"`
	MaritalStatus string `json:"marital_status"`
	Children      int    `json:"children"`
}

// Header extracts the header fields from basics, basics.location,
// basics.profiles and meta._personal.
func Header(rec *record.Record) HeaderContext {
	basics := rec.GetBasics()
	location := basics.GetLocation()
	personal := rec.GetMeta().GetPersonal()

	return HeaderContext{
		Name:          basics.GetName(),
		Address:       location.GetAddress(),
		PostalCode:    location.GetPostalCode(),
		City:          location.GetCity(),
		Country:       location.GetCountry(),
		Phone:         basics.GetPhone(),
		Email:         basics.GetEmail(),
		LinkedInURL:   linkedInURL(basics.GetProfiles()),
		Nationality:   personal.GetNationality(),
		BirthDate:     personal.GetBirthDate(),
		MaritalStatus: personal.GetMaritalStatus(),
		Children:      personal.GetChildren(),
	}
}

// linkedInURL returns the URL of the first LinkedIn profile.
func linkedInURL(profiles []*record.SocialProfile) string {
	for _, p := range profiles {
		if strings.EqualFold(p.GetNetwork(), "linkedin") {
			return p.GetURL()
		}
	}

	return ""
}

// Summary returns the default summary.
func Summary(rec *record.Record) string {
	return rec.GetSummary("default")
}
