package extract

import (
	"github.com/macropower/cvgen/pkg/record"
)

// WorkEntry is one position of the work history.
type WorkEntry struct {
	Company    string   `json:"company"`
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	Highlights []string `json:"highlights"`
}

// EarlierWorkEntry is a [WorkEntry] flagged as earlier experience.
type EarlierWorkEntry struct {
	WorkEntry `yaml:",inline"`

	EarlierExperienceGroup string `json:"earlierExperienceGroup"`
}

// EducationEntry is one education entry.
type EducationEntry struct {
	Institution string `json:"institution"`
	StudyType   string `json:"studyType"`
	Area        string `json:"area"`
	EndDate     string `json:"endDate"`
}

// VolunteerEntry is one volunteering entry.
type VolunteerEntry struct {
	Organization string   `json:"organization"`
	Title        string   `json:"title"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Summary      string   `json:"summary"`
	Highlights   []string `json:"highlights"`
}

// LanguageEntry is one spoken language.
type LanguageEntry struct {
	Language           string `json:"language"`
	Fluency            string `json:"fluency"`
	CertificationLevel string `json:"certificationLevel"`
}

// Work splits the work history into main and earlier experience, keeping the
// source order within each. Only entries whose isEarlierExperience is the
// boolean true are earlier experience.
func Work(rec *record.Record) ([]WorkEntry, []EarlierWorkEntry) {
	main := []WorkEntry{}
	earlier := []EarlierWorkEntry{}

	for _, w := range rec.GetWork() {
		entry := WorkEntry{
			Company:    w.GetCompany(),
			Title:      w.GetTitle(),
			Location:   w.GetLocation(),
			StartDate:  w.GetStartDate(),
			EndDate:    w.GetEndDate(),
			Highlights: highlightTexts(w.GetHighlights()),
		}

		if w.IsEarlier() {
			earlier = append(earlier, EarlierWorkEntry{
				WorkEntry:              entry,
				EarlierExperienceGroup: w.GetEarlierExperienceGroup(),
			})

			continue
		}

		main = append(main, entry)
	}

	return main, earlier
}

// highlightTexts keeps one string per highlight, "" for those without text.
func highlightTexts(hs []*record.Highlight) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.GetText())
	}

	return out
}

// Education extracts education entries in record order.
func Education(rec *record.Record) []EducationEntry {
	src := rec.GetEducation()

	out := make([]EducationEntry, 0, len(src))
	for _, e := range src {
		out = append(out, EducationEntry{
			Institution: e.GetInstitution(),
			StudyType:   e.GetStudyType(),
			Area:        e.GetArea(),
			EndDate:     e.GetEndDate(),
		})
	}

	return out
}

// Volunteer extracts volunteering entries. The title falls back to position.
func Volunteer(rec *record.Record) []VolunteerEntry {
	src := rec.GetVolunteer()

	out := make([]VolunteerEntry, 0, len(src))
	for _, v := range src {
		highlights := v.GetHighlights()
		if highlights == nil {
			highlights = []string{}
		}

		out = append(out, VolunteerEntry{
			Organization: v.GetOrganization(),
			Title:        v.GetTitle(),
			StartDate:    v.GetStartDate(),
			EndDate:      v.GetEndDate(),
			Summary:      v.GetSummary(),
			Highlights:   highlights,
		})
	}

	return out
}

// Languages extracts spoken languages in record order.
func Languages(rec *record.Record) []LanguageEntry {
	src := rec.GetLanguages()

	out := make([]LanguageEntry, 0, len(src))
	for _, l := range src {
		out = append(out, LanguageEntry{
			Language:           l.GetLanguage(),
			Fluency:            l.GetFluency(),
			CertificationLevel: l.GetCertificationLevel(),
		})
	}

	return out
}
