package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdm/cloudscore/internal/models"
)

func TestAddOrUpdateStudent(t *testing.T) {
	rec := newTestRecord()

	t.Run("append drops empty scores", func(t *testing.T) {
		err := AddOrUpdateStudent(rec, -1, " Châu ", map[string]string{"Mid": "9", "Final": ""})
		require.NoError(t, err)

		st := rec.Students[len(rec.Students)-1]
		assert.Equal(t, "Châu", st.Name)
		assert.Equal(t, map[string]string{"Mid": "9"}, st.Scores)
	})

	t.Run("overwrite in place", func(t *testing.T) {
		err := AddOrUpdateStudent(rec, 0, "An Sửa", map[string]string{"Final": "10"})
		require.NoError(t, err)
		assert.Equal(t, "An Sửa", rec.Students[0].Name)
		assert.Equal(t, map[string]string{"Final": "10"}, rec.Students[0].Scores)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		before := len(rec.Students)
		assert.ErrorIs(t, AddOrUpdateStudent(rec, -1, "   ", nil), ErrEmptyStudentName)
		assert.Len(t, rec.Students, before)
	})
}

func TestRemoveStudent(t *testing.T) {
	rec := newTestRecord()
	RemoveStudent(rec, 0)

	require.Len(t, rec.Students, 1)
	assert.Equal(t, "Bình", rec.Students[0].Name, "later students shift down")
}

func TestSetScore(t *testing.T) {
	rec := newTestRecord()

	SetScore(rec, 1, "Mid", "5,5")
	assert.Equal(t, "5,5", rec.Students[1].Scores["Mid"])

	SetScore(rec, 1, "Mid", "")
	assert.NotContains(t, rec.Students[1].Scores, "Mid", "clearing removes the key")
}

func TestBatchImport(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		imported int
		students []models.Student
	}{
		{
			name:     "values map positionally",
			text:     "Nam, 8, 9\nLan, 7",
			imported: 2,
			students: []models.Student{
				{Name: "Nam", Scores: map[string]string{"Mid": "8", "Final": "9"}},
				{Name: "Lan", Scores: map[string]string{"Mid": "7"}},
			},
		},
		{
			name:     "extra values past the columns are ignored",
			text:     "Nam, 8, 9, 10, 4",
			imported: 1,
			students: []models.Student{
				{Name: "Nam", Scores: map[string]string{"Mid": "8", "Final": "9"}},
			},
		},
		{
			name:     "blank lines and nameless lines skipped",
			text:     "\n   \n, 8\nLan",
			imported: 1,
			students: []models.Student{
				{Name: "Lan", Scores: map[string]string{}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &models.GradeRecord{ScoreColumns: []string{"Mid", "Final"}}
			assert.Equal(t, tc.imported, BatchImport(rec, tc.text))
			assert.Equal(t, tc.students, rec.Students)
		})
	}
}

func TestBatchImportDoesNotDeduplicate(t *testing.T) {
	rec := &models.GradeRecord{ScoreColumns: []string{"Mid"}}
	BatchImport(rec, "Nam, 8")
	BatchImport(rec, "Nam, 9")
	assert.Len(t, rec.Students, 2)
}
