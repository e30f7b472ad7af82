package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangdm/cloudscore/internal/models"
)

func roster() []models.Student {
	return []models.Student{
		{Name: "An", Scores: map[string]string{"Mid": "9"}},
		{Name: "Bình", Scores: map[string]string{"Mid": "6", "Final": "  "}},
		{Name: "Hoàn", Scores: map[string]string{"Final": "4"}},
	}
}

func names(students []models.Student) []string {
	out := make([]string, len(students))
	for i, s := range students {
		out[i] = s.Name
	}
	return out
}

func TestFilterStudentsSearch(t *testing.T) {
	st := NewState()
	st.SearchTerm = " AN "

	got := FilterStudents(roster(), []string{"Mid", "Final"}, st)
	assert.Equal(t, []string{"An", "Hoàn"}, names(got), "case- and accent-insensitive substring")

	st.SearchTerm = "hoan"
	assert.Equal(t, []string{"Hoàn"}, names(FilterStudents(roster(), []string{"Mid", "Final"}, st)))
}

func TestFilterStudentsPresence(t *testing.T) {
	cols := []string{"Mid", "Final"}

	t.Run("has-value requires non-blank after trim", func(t *testing.T) {
		st := NewState()
		st.Presence = PresenceHas
		st.PresenceColumn = "Final"
		assert.Equal(t, []string{"Hoàn"}, names(FilterStudents(roster(), cols, st)))
	})

	t.Run("no-value keeps the complement", func(t *testing.T) {
		st := NewState()
		st.Presence = PresenceMissing
		st.PresenceColumn = "Final"
		assert.Equal(t, []string{"An", "Bình"}, names(FilterStudents(roster(), cols, st)))
	})

	t.Run("ignored without a column", func(t *testing.T) {
		st := NewState()
		st.Presence = PresenceHas
		assert.Len(t, FilterStudents(roster(), cols, st), 3)
	})
}

func TestFilterStudentsBand(t *testing.T) {
	cols := []string{"Mid", "Final"}
	students := append(roster(), models.Student{Name: "Khuyết", Scores: map[string]string{"Mid": "x"}})

	st := NewState()
	st.Band = "excellent"
	assert.Equal(t, []string{"An"}, names(FilterStudents(students, cols, st)))

	st.Band = "weak"
	assert.Equal(t, []string{"Hoàn"}, names(FilterStudents(students, cols, st)),
		"undefined averages are excluded, not classified weak")
}

func TestFilterStudentsCombined(t *testing.T) {
	cols := []string{"Mid", "Final"}
	st := NewState()
	st.SearchTerm = "n"
	st.Presence = PresenceHas
	st.PresenceColumn = "Mid"
	st.Band = "excellent"

	got := FilterStudents(roster(), cols, st)
	assert.Equal(t, []string{"An"}, names(got))
}

func TestFilterRecords(t *testing.T) {
	records := []models.GradeRecord{
		{RecordName: "Toán 9A", RecordClass: "9A"},
		{RecordName: "Văn", RecordClass: "8B", Students: []models.Student{{Name: "Hoàng Anh"}}},
		{RecordName: "Lý", RecordClass: "7C"},
	}

	assert.Len(t, FilterRecords(records, ""), 3)
	assert.Equal(t, "Toán 9A", FilterRecords(records, "toán")[0].RecordName)

	byStudent := FilterRecords(records, "hoàng")
	assert.Len(t, byStudent, 1)
	assert.Equal(t, "Văn", byStudent[0].RecordName)

	// Accentless terms still hit accented names.
	assert.Equal(t, "Toán 9A", FilterRecords(records, "toan")[0].RecordName)
	assert.Len(t, FilterRecords(records, "hoang anh"), 1)
}
