package profile

import (
	"github.com/macropower/cvgen/pkg/record"
)

// Mode is how earlier experience is presented.
type Mode string

const (
	// ModeDetailed shows earlier experience with full entries.
	ModeDetailed Mode = "detailed"
	// ModeListOnly shows earlier experience as a compact list.
	ModeListOnly Mode = "list-only"
	// ModeHidden means the earlier-experience section is not shown.
	// It is never set in a profile; it is derived from ShowSection.
	ModeHidden Mode = "hidden"
)

// Profile is a rendering profile.
type Profile struct {
	// EarlierExperienceDisplay controls the earlier-experience section.
	// When absent, the section is shown in detailed mode.
	EarlierExperienceDisplay *EarlierExperienceDisplay `json:"earlierExperienceDisplay,omitempty" jsonschema:"title=Earlier Experience Display"`

	// ID is the stable identifier of the profile, e.g. "sales".
	ID string `json:"profileId,omitempty" jsonschema:"title=Profile ID"`

	// Name is the human readable name of the profile.
	Name string `json:"name,omitempty" jsonschema:"title=Name"`

	// Description explains what the profile is for.
	Description string `json:"description,omitempty" jsonschema:"title=Description"`

	// CompetencySet names the competency selection set to use.
	// Defaults to "standardSet".
	CompetencySet string `json:"competencySet,omitempty" jsonschema:"title=Competency Set"`
}

// EarlierExperienceDisplay is the serialized form of the earlier-experience
// settings. Unset fields take their defaults in
// [ResolveEarlierExperienceDisplay].
type EarlierExperienceDisplay struct {
	// ShowSection controls whether earlier experience is shown at all.
	// Defaults to true.
	ShowSection *bool `json:"showSection,omitempty" jsonschema:"title=Show Section"`

	// DefaultMode is "detailed" or "list-only". Defaults to "detailed".
	DefaultMode Mode `json:"defaultMode,omitempty" jsonschema:"title=Default Mode,enum=detailed,enum=list-only"`
}

// EarlierExperienceSettings are resolved earlier-experience settings.
type EarlierExperienceSettings struct {
	DefaultMode Mode
	ShowSection bool
}

// ProfileOpt configures a [Profile] created with [New].
type ProfileOpt func(*Profile)

// New creates a new [Profile].
func New(id, name string, opts ...ProfileOpt) *Profile {
	p := &Profile{
		ID:   id,
		Name: name,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithDescription sets the profile description.
func WithDescription(desc string) ProfileOpt {
	return func(p *Profile) {
		p.Description = desc
	}
}

// WithEarlierExperience sets both earlier-experience settings.
func WithEarlierExperience(show bool, mode Mode) ProfileOpt {
	return func(p *Profile) {
		p.EarlierExperienceDisplay = &EarlierExperienceDisplay{
			ShowSection: &show,
			DefaultMode: mode,
		}
	}
}

// WithCompetencySet sets the competency selection set.
func WithCompetencySet(name string) ProfileOpt {
	return func(p *Profile) {
		p.CompetencySet = name
	}
}

// EnsureDefaults fills in the competency set.
func (p *Profile) EnsureDefaults() {
	if p.CompetencySet == "" {
		p.CompetencySet = record.StandardSet
	}
}

// ResolveEarlierExperienceDisplay returns the earlier-experience settings of
// p, with defaults for anything unset. A nil profile yields the defaults.
func ResolveEarlierExperienceDisplay(p *Profile) EarlierExperienceSettings {
	s := EarlierExperienceSettings{
		ShowSection: true,
		DefaultMode: ModeDetailed,
	}
	if p == nil || p.EarlierExperienceDisplay == nil {
		return s
	}

	if p.EarlierExperienceDisplay.ShowSection != nil {
		s.ShowSection = *p.EarlierExperienceDisplay.ShowSection
	}
	if p.EarlierExperienceDisplay.DefaultMode != "" {
		s.DefaultMode = p.EarlierExperienceDisplay.DefaultMode
	}

	return s
}

// CompetencySetName returns the competency selection set to use.
func (p *Profile) CompetencySetName() string {
	if p == nil || p.CompetencySet == "" {
		return record.StandardSet
	}

	return p.CompetencySet
}

func (p *Profile) GetID() string {
	if p == nil {
		return ""
	}

	return p.ID
}

func (p *Profile) GetName() string {
	if p == nil {
		return ""
	}

	return p.Name
}
