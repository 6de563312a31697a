// Package assemble builds the template context for one generated CV from a
// master record and an optional rendering profile.
package assemble

import (
	"github.com/macropower/cvgen/pkg/extract"
	"github.com/macropower/cvgen/pkg/profile"
	"github.com/macropower/cvgen/pkg/record"
)

// Context keys.
const (
	KeyName                  = "name"
	KeyAddress               = "address"
	KeyPostalCode            = "postalCode"
	KeyCity                  = "city"
	KeyCountry               = "country"
	KeyPhone                 = "phone"
	KeyEmail                 = "email"
	KeyLinkedInURL           = "linkedin_url"
	KeyNationality           = "nationality"
	KeyBirthDate             = "birth_date"
	KeyMaritalStatus         = "marital_status"
	KeyChildren              = "children"
	KeySummary               = "summary"
	KeyWork                  = "work"
	KeyEducation             = "education"
	KeyVolunteer             = "volunteer"
	KeyCompetencies          = "competencies"
	KeyLanguages             = "languages"
	KeyEarlierExperiences    = "earlier_experiences"
	KeyEarlierExperienceMode = "earlier_experience_mode"
	KeyProfileName           = "profile_name"
	KeyProfileID             = "profile_id"
)

// LinkBuilder creates hyperlink values for a template.
// Display defaults to the target when empty.
type LinkBuilder interface {
	Build(target, display string) any
}

// LinkBuilderFunc adapts a function to a [LinkBuilder].
type LinkBuilderFunc func(target, display string) any

func (f LinkBuilderFunc) Build(target, display string) any {
	return f(target, display)
}

// Assemble builds the template context for rec.
//
// When links is non-nil, a non-empty email is replaced by a "mailto:" link
// and a non-empty LinkedIn URL by a link to itself. When prof is nil, earlier
// experience is shown in detailed mode and no profile keys are set.
func Assemble(rec *record.Record, prof *profile.Profile, links LinkBuilder) *Context {
	c := NewContext()

	h := extract.Header(rec)
	c.Set(KeyName, h.Name)
	c.Set(KeyAddress, h.Address)
	c.Set(KeyPostalCode, h.PostalCode)
	c.Set(KeyCity, h.City)
	c.Set(KeyCountry, h.Country)
	c.Set(KeyPhone, h.Phone)
	c.Set(KeyEmail, h.Email)
	c.Set(KeyLinkedInURL, h.LinkedInURL)
	c.Set(KeyNationality, h.Nationality)
	c.Set(KeyBirthDate, h.BirthDate)
	c.Set(KeyMaritalStatus, h.MaritalStatus)
	c.Set(KeyChildren, h.Children)

	if links != nil {
		if h.Email != "" {
			c.Set(KeyEmail, links.Build("mailto:"+h.Email, h.Email))
		}
		if h.LinkedInURL != "" {
			c.Set(KeyLinkedInURL, links.Build(h.LinkedInURL, ""))
		}
	}

	main, earlier := extract.Work(rec)

	c.Set(KeySummary, extract.Summary(rec))
	c.Set(KeyWork, main)
	c.Set(KeyEducation, extract.Education(rec))
	c.Set(KeyVolunteer, extract.Volunteer(rec))
	c.Set(KeyCompetencies, extract.CompetenciesFor(rec, prof.CompetencySetName()))
	c.Set(KeyLanguages, extract.Languages(rec))

	settings := profile.ResolveEarlierExperienceDisplay(prof)
	if settings.ShowSection {
		c.Set(KeyEarlierExperiences, earlier)
		c.Set(KeyEarlierExperienceMode, string(settings.DefaultMode))
	} else {
		c.Set(KeyEarlierExperiences, []extract.EarlierWorkEntry{})
		c.Set(KeyEarlierExperienceMode, string(profile.ModeHidden))
	}

	if prof != nil {
		c.Set(KeyProfileName, prof.Name)
		c.Set(KeyProfileID, prof.ID)
	}

	return c
}
