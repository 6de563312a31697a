package extract

import (
	"github.com/macropower/cvgen/pkg/record"
)

// CompetencyEntry is a competency with its resolved category name.
type CompetencyEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Competencies returns the competencies of the standard selection set.
func Competencies(rec *record.Record) []CompetencyEntry {
	return CompetenciesFor(rec, record.StandardSet)
}

// CompetenciesFor returns the competencies of the named selection set, in
// selection order. Ids missing from the database are dropped, and unknown
// category ids resolve to "". An unknown set yields an empty slice.
func CompetenciesFor(rec *record.Record, set string) []CompetencyEntry {
	comps := rec.GetCompetencies()
	ids := comps.GetSet(set).GetCompetencyIDs()

	out := make([]CompetencyEntry, 0, len(ids))
	if len(ids) == 0 {
		return out
	}

	categories := make(map[string]string, len(comps.GetCategories()))
	for _, c := range comps.GetCategories() {
		if c == nil {
			continue
		}

		categories[c.ID] = c.Name
	}

	database := make(map[string]*record.Competency, len(comps.GetDatabase()))
	for _, c := range comps.GetDatabase() {
		if c == nil {
			continue
		}

		// Later definitions win for duplicate ids.
		database[c.ID] = c
	}

	for _, id := range ids {
		c, ok := database[id]
		if !ok {
			continue
		}

		out = append(out, CompetencyEntry{
			Name:     c.Name,
			Category: categories[c.CategoryID],
		})
	}

	return out
}
