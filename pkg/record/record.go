// Package record defines the master record: the single document describing
// a person's professional history that every generated CV is built from.
//
// The layout follows JSON Resume with a few extensions (named summaries,
// a competency database with selection sets, earlier-experience flags and
// personal details under meta). Every field is optional. Getter methods are
// nil-safe and return the zero value for anything absent, so readers never
// need to check intermediate nodes.
package record

// Record is the root of a master record.
type Record struct {
	// Basic contact details.
	Basics *Basics `json:"basics,omitempty"`
	// Extra metadata, including personal details.
	Meta *Meta `json:"meta,omitempty"`
	// Named summary texts. The "default" summary is used for generation.
	Summaries map[string]any `json:"summaries,omitempty"`
	// Competency database, categories and selection sets.
	Competencies *Competencies `json:"competencies,omitempty"`
	// Employment history, most recent first.
	Work []*Work `json:"work,omitempty"`
	// Education history.
	Education []*Education `json:"education,omitempty"`
	// Volunteer history.
	Volunteer []*Volunteer `json:"volunteer,omitempty"`
	// Spoken languages.
	Languages []*Language `json:"languages,omitempty"`
}

// New returns an empty [Record].
func New() *Record {
	return &Record{}
}

func (r *Record) GetBasics() *Basics {
	if r == nil {
		return nil
	}

	return r.Basics
}

func (r *Record) GetMeta() *Meta {
	if r == nil {
		return nil
	}

	return r.Meta
}

// GetSummary returns the named summary, or "" when it is absent or not text.
func (r *Record) GetSummary(name string) string {
	if r == nil {
		return ""
	}

	s, _ := r.Summaries[name].(string)

	return s
}

func (r *Record) GetWork() []*Work {
	if r == nil {
		return nil
	}

	return r.Work
}

func (r *Record) GetEducation() []*Education {
	if r == nil {
		return nil
	}

	return r.Education
}

func (r *Record) GetVolunteer() []*Volunteer {
	if r == nil {
		return nil
	}

	return r.Volunteer
}

func (r *Record) GetCompetencies() *Competencies {
	if r == nil {
		return nil
	}

	return r.Competencies
}

func (r *Record) GetLanguages() []*Language {
	if r == nil {
		return nil
	}

	return r.Languages
}

// Basics holds contact details.
type Basics struct {
	Location *Location `json:"location,omitempty"`
	Name     string    `json:"name,omitempty"`
	Label    string    `json:"label,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	// Online profiles, e.g. LinkedIn.
	Profiles []*SocialProfile `json:"profiles,omitempty"`
}

func (b *Basics) GetName() string {
	if b == nil {
		return ""
	}

	return b.Name
}

func (b *Basics) GetEmail() string {
	if b == nil {
		return ""
	}

	return b.Email
}

func (b *Basics) GetPhone() string {
	if b == nil {
		return ""
	}

	return b.Phone
}

func (b *Basics) GetLocation() *Location {
	if b == nil {
		return nil
	}

	return b.Location
}

func (b *Basics) GetProfiles() []*SocialProfile {
	if b == nil {
		return nil
	}

	return b.Profiles
}

// Location is a postal address.
type Location struct {
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	// ISO country code, as in JSON Resume.
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`
}

func (l *Location) GetAddress() string {
	if l == nil {
		return ""
	}

	return l.Address
}

func (l *Location) GetPostalCode() string {
	if l == nil {
		return ""
	}

	return l.PostalCode
}

func (l *Location) GetCity() string {
	if l == nil {
		return ""
	}

	return l.City
}

func (l *Location) GetCountry() string {
	if l == nil {
		return ""
	}

	return l.Country
}

// SocialProfile is an account on an online network.
type SocialProfile struct {
	Network  string `json:"network,omitempty"`
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
}

func (p *SocialProfile) GetNetwork() string {
	if p == nil {
		return ""
	}

	return p.Network
}

func (p *SocialProfile) GetURL() string {
	if p == nil {
		return ""
	}

	return p.URL
}

// Meta holds metadata about the record.
type Meta struct {
	// Personal details that are not part of JSON Resume.
	Personal *Personal `json:"_personal,omitempty"`
	Version  string    `json:"version,omitempty"`
}

func (m *Meta) GetPersonal() *Personal {
	if m == nil {
		return nil
	}

	return m.Personal
}

// Personal holds personal details shown on some CV formats.
type Personal struct {
	Nationality   string `json:"nationality,omitempty"`
	BirthDate     string `json:"birth_date,omitempty"`
	MaritalStatus string `json:"marital_status,omitempty"`
	Children      int    `json:"children,omitempty"`
}

func (p *Personal) GetNationality() string {
	if p == nil {
		return ""
	}

	return p.Nationality
}

func (p *Personal) GetBirthDate() string {
	if p == nil {
		return ""
	}

	return p.BirthDate
}

func (p *Personal) GetMaritalStatus() string {
	if p == nil {
		return ""
	}

	return p.MaritalStatus
}

func (p *Personal) GetChildren() int {
	if p == nil {
		return 0
	}

	return p.Children
}
