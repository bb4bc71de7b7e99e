package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"deptsite/internal/models"
)

// Sort keys are allow-listed; anything else falls back to the default key
// for the collection. Sorting is stable, case-insensitive and locale-aware,
// and always works on a copy so the stored order is never disturbed.

const (
	DefaultSectionSort = "time"
	DefaultFacultySort = "name"
)

// a Collator keeps iterator state between comparisons, so each sort gets
// its own rather than sharing one across request goroutines
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

var sectionFields = map[string]func(Section) string{
	"time":      func(s Section) string { return s.Time },
	"professor": func(s Section) string { return s.Professor },
	"room":      func(s Section) string { return s.Room },
}

var facultyFields = map[string]func(models.FacultyMember) string{
	"name":       func(f models.FacultyMember) string { return f.Name },
	"department": func(f models.FacultyMember) string { return f.Department },
	"title":      func(f models.FacultyMember) string { return f.Title },
}

// NormalizeSectionSort maps an arbitrary query value onto an allowed key.
func NormalizeSectionSort(key string) string {
	if _, ok := sectionFields[key]; !ok {
		return DefaultSectionSort
	}
	return key
}

func NormalizeFacultySort(key string) string {
	if _, ok := facultyFields[key]; !ok {
		return DefaultFacultySort
	}
	return key
}

// SortedSections returns a copy of sections ordered by the given key.
func SortedSections(sections []Section, key string) []Section {
	field := sectionFields[NormalizeSectionSort(key)]
	coll := newCollator()
	out := make([]Section, len(sections))
	copy(out, sections)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(field(out[i]), field(out[j])) < 0
	})
	return out
}

// SortedFaculty returns a copy of members ordered by the given key.
func SortedFaculty(members []models.FacultyMember, key string) []models.FacultyMember {
	field := facultyFields[NormalizeFacultySort(key)]
	coll := newCollator()
	out := make([]models.FacultyMember, len(members))
	copy(out, members)
	sort.SliceStable(out, func(i, j int) bool {
		return coll.CompareString(field(out[i]), field(out[j])) < 0
	})
	return out
}
