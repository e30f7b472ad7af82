// Package view holds the pure projections applied to a record before display.
// Nothing here mutates the roster or the column set.
package view

import (
	"strings"

	"github.com/quangdm/cloudscore/internal/gradebook"
	"github.com/quangdm/cloudscore/internal/models"
	"github.com/quangdm/cloudscore/internal/scoring"
)

type Presence string

const (
	PresenceAll     Presence = "all"
	PresenceHas     Presence = "has-value"
	PresenceMissing Presence = "no-value"
)

// BandAll disables the band filter; any scoring.Band value narrows to it.
const BandAll = "all"

// State is the session-scoped filter and visibility selection for one open
// record. It resets whenever a different record is opened.
type State struct {
	SearchTerm     string
	Presence       Presence
	PresenceColumn string
	Band           string
	VisibleColumns []string
}

func NewState() State {
	return State{Presence: PresenceAll, Band: BandAll}
}

// FilterStudents narrows the roster by name search, then score presence, then
// performance band. The band filter averages over the full column set, not
// just the visible columns, and drops students with no defined average.
func FilterStudents(students []models.Student, columns []string, st State) []models.Student {
	filtered := students

	// Search is accent-insensitive: "an" finds both "An" and "Hoàn".
	if term := gradebook.NormalizeForCompare(st.SearchTerm); term != "" {
		filtered = keep(filtered, func(s models.Student) bool {
			return strings.Contains(gradebook.NormalizeForCompare(s.Name), term)
		})
	}

	if st.Presence != PresenceAll && st.Presence != "" && st.PresenceColumn != "" {
		filtered = keep(filtered, func(s models.Student) bool {
			has := strings.TrimSpace(s.Scores[st.PresenceColumn]) != ""
			if st.Presence == PresenceHas {
				return has
			}
			return !has
		})
	}

	if st.Band != BandAll && st.Band != "" {
		filtered = keep(filtered, func(s models.Student) bool {
			avg, ok := scoring.Average(s, columns)
			return ok && scoring.Classify(avg) == scoring.Band(st.Band)
		})
	}

	return filtered
}

func keep(students []models.Student, pred func(models.Student) bool) []models.Student {
	out := make([]models.Student, 0, len(students))
	for _, s := range students {
		if pred(s) {
			out = append(out, s)
		}
	}
	return out
}

// FilterRecords narrows the record list on the overview screen: the term is
// matched accent-insensitively against the record name, class label and every
// student name.
func FilterRecords(records []models.GradeRecord, term string) []models.GradeRecord {
	term = gradebook.NormalizeForCompare(term)
	if term == "" {
		return records
	}
	out := make([]models.GradeRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(gradebook.NormalizeForCompare(rec.RecordName), term) ||
			strings.Contains(gradebook.NormalizeForCompare(rec.RecordClass), term) {
			out = append(out, rec)
			continue
		}
		for _, st := range rec.Students {
			if strings.Contains(gradebook.NormalizeForCompare(st.Name), term) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}
