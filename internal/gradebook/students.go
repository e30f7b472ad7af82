package gradebook

import (
	"strings"

	"github.com/quangdm/cloudscore/internal/models"
)

// AddOrUpdateStudent writes a student at position index, or appends when
// index is negative. Empty score values are dropped rather than stored.
// An out-of-range index is a caller bug, not user input, and panics.
func AddOrUpdateStudent(rec *models.GradeRecord, index int, name string, scores map[string]string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStudentName
	}

	kept := make(map[string]string, len(scores))
	for col, v := range scores {
		if v != "" {
			kept[col] = v
		}
	}

	st := models.Student{Name: name, Scores: kept}
	if index < 0 {
		rec.Students = append(rec.Students, st)
		return nil
	}
	rec.Students[index] = st
	return nil
}

// SetScore updates one cell of an existing student, dropping the key when
// the value is cleared.
func SetScore(rec *models.GradeRecord, index int, column, value string) {
	st := &rec.Students[index]
	if st.Scores == nil {
		st.Scores = map[string]string{}
	}
	if value == "" {
		delete(st.Scores, column)
		return
	}
	st.Scores[column] = value
}

// RemoveStudent deletes by position. Later students shift down one slot, so
// any held index for another student must be re-resolved before reuse.
func RemoveStudent(rec *models.GradeRecord, index int) {
	rec.Students = append(rec.Students[:index], rec.Students[index+1:]...)
}

// BatchImport parses pasted text, one student per non-empty line:
// name, then values mapped positionally onto the current column order.
// Values past the last column are ignored, lines without a name are skipped,
// and no deduplication happens. Returns how many students were appended.
func BatchImport(rec *models.GradeRecord, text string) int {
	imported := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		name := parts[0]
		if name == "" {
			continue
		}

		scores := map[string]string{}
		for i := 1; i < len(parts) && i-1 < len(rec.ScoreColumns); i++ {
			if parts[i] == "" {
				continue
			}
			scores[rec.ScoreColumns[i-1]] = parts[i]
		}

		rec.Students = append(rec.Students, models.Student{Name: name, Scores: scores})
		imported++
	}
	return imported
}
