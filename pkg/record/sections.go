package record

// Work is one employment entry.
//
// Both the cvgen field names (company, title) and the JSON Resume names
// (name, position) are accepted.
type Work struct {
	Company  string `json:"company,omitempty"`
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Position string `json:"position,omitempty"`
	Location string `json:"location,omitempty"`
	// Free-form dates, e.g. "2020-03" or "Present".
	StartDate  string       `json:"startDate,omitempty"`
	EndDate    string       `json:"endDate,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Highlights []*Highlight `json:"highlights,omitempty"`
	// Marks the entry as earlier experience. Only the literal boolean true counts.
	IsEarlierExperience Flag `json:"isEarlierExperience,omitempty"`
	// Groups earlier-experience entries, e.g. "Hospitality".
	EarlierExperienceGroup string `json:"earlierExperienceGroup,omitempty"`
}

// GetCompany returns company, falling back to name.
func (w *Work) GetCompany() string {
	if w == nil {
		return ""
	}
	if w.Company != "" {
		return w.Company
	}

	return w.Name
}

// GetTitle returns title, falling back to position.
func (w *Work) GetTitle() string {
	if w == nil {
		return ""
	}
	if w.Title != "" {
		return w.Title
	}

	return w.Position
}

func (w *Work) GetLocation() string {
	if w == nil {
		return ""
	}

	return w.Location
}

func (w *Work) GetStartDate() string {
	if w == nil {
		return ""
	}

	return w.StartDate
}

func (w *Work) GetEndDate() string {
	if w == nil {
		return ""
	}

	return w.EndDate
}

func (w *Work) GetHighlights() []*Highlight {
	if w == nil {
		return nil
	}

	return w.Highlights
}

func (w *Work) IsEarlier() bool {
	if w == nil {
		return false
	}

	return bool(w.IsEarlierExperience)
}

func (w *Work) GetEarlierExperienceGroup() string {
	if w == nil {
		return ""
	}

	return w.EarlierExperienceGroup
}

// Highlight is one achievement of a [Work] entry.
type Highlight struct {
	Text string `json:"text,omitempty"`
	// Tags used for weighting by future profile versions.
	Tags []string `json:"tags,omitempty"`
}

func (h *Highlight) GetText() string {
	if h == nil {
		return ""
	}

	return h.Text
}

// Education is one education entry.
type Education struct {
	Institution string `json:"institution,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	Area        string `json:"area,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

func (e *Education) GetInstitution() string {
	if e == nil {
		return ""
	}

	return e.Institution
}

func (e *Education) GetStudyType() string {
	if e == nil {
		return ""
	}

	return e.StudyType
}

func (e *Education) GetArea() string {
	if e == nil {
		return ""
	}

	return e.Area
}

func (e *Education) GetEndDate() string {
	if e == nil {
		return ""
	}

	return e.EndDate
}

// Volunteer is one volunteering entry.
type Volunteer struct {
	Organization string   `json:"organization,omitempty"`
	Title        string   `json:"title,omitempty"`
	Position     string   `json:"position,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

func (v *Volunteer) GetOrganization() string {
	if v == nil {
		return ""
	}

	return v.Organization
}

// GetTitle returns title, falling back to position.
func (v *Volunteer) GetTitle() string {
	if v == nil {
		return ""
	}
	if v.Title != "" {
		return v.Title
	}

	return v.Position
}

func (v *Volunteer) GetStartDate() string {
	if v == nil {
		return ""
	}

	return v.StartDate
}

func (v *Volunteer) GetEndDate() string {
	if v == nil {
		return ""
	}

	return v.EndDate
}

func (v *Volunteer) GetSummary() string {
	if v == nil {
		return ""
	}

	return v.Summary
}

func (v *Volunteer) GetHighlights() []string {
	if v == nil {
		return nil
	}

	return v.Highlights
}

// Language is one spoken language.
type Language struct {
	Language           string `json:"language,omitempty"`
	Fluency            string `json:"fluency,omitempty"`
	CertificationLevel string `json:"certificationLevel,omitempty"`
}

func (l *Language) GetLanguage() string {
	if l == nil {
		return ""
	}

	return l.Language
}

func (l *Language) GetFluency() string {
	if l == nil {
		return ""
	}

	return l.Fluency
}

func (l *Language) GetCertificationLevel() string {
	if l == nil {
		return ""
	}

	return l.CertificationLevel
}
