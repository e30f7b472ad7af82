package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangdm/cloudscore/internal/models"
)

func TestNormalizeForCompare(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Điểm Cộng", "diem cong"},
		{"  Họ Và Tên ", "ho va ten"},
		{"LỚP", "lop"},
		{"score", "score"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, NormalizeForCompare(tc.in))
	}
}

func TestIsTextColumn(t *testing.T) {
	rec := &models.GradeRecord{
		ScoreColumns: []string{"Mid", "Ghi chú", "Điểm cộng"},
		Students: []models.Student{
			{Name: "An", Scores: map[string]string{"Mid": "7,5", "Ghi chú": "vắng"}},
			{Name: "Bình", Scores: map[string]string{"Mid": "8"}},
		},
	}

	t.Run("bonus column by name, regardless of data", func(t *testing.T) {
		assert.True(t, IsTextColumn(rec, "Điểm cộng"))
		assert.True(t, IsTextColumn(nil, "diem cong"))
	})

	t.Run("numeric values keep the column numeric", func(t *testing.T) {
		assert.False(t, IsTextColumn(rec, "Mid"))
	})

	t.Run("any non-numeric value flips to text", func(t *testing.T) {
		assert.True(t, IsTextColumn(rec, "Ghi chú"))
	})

	t.Run("classification reflects current data, not history", func(t *testing.T) {
		SetScore(rec, 0, "Ghi chú", "9")
		assert.False(t, IsTextColumn(rec, "Ghi chú"))

		SetScore(rec, 1, "Ghi chú", "x")
		assert.True(t, IsTextColumn(rec, "Ghi chú"))
	})

	t.Run("empty values are not evidence", func(t *testing.T) {
		assert.False(t, IsTextColumn(rec, "Không tồn tại"))
	})
}
