package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quangdm/cloudscore/internal/models"
)

func TestAverage(t *testing.T) {
	cols := []string{"Mid", "Final"}

	testCases := []struct {
		name    string
		scores  map[string]string
		want    float64
		defined bool
	}{
		{
			name:    "comma decimal separator",
			scores:  map[string]string{"Mid": "8", "Final": "9,5"},
			want:    8.75,
			defined: true,
		},
		{
			name:    "missing value skipped, not zero",
			scores:  map[string]string{"Mid": "8"},
			want:    8,
			defined: true,
		},
		{
			name:    "out of range and text skipped",
			scores:  map[string]string{"Mid": "11", "Final": "x"},
			defined: false,
		},
		{
			name:    "no scores at all",
			scores:  nil,
			defined: false,
		},
		{
			name:    "nan parses but never counts",
			scores:  map[string]string{"Mid": "nan", "Final": "8"},
			want:    8,
			defined: true,
		},
		{
			name:    "boundaries are inclusive",
			scores:  map[string]string{"Mid": "0", "Final": "10"},
			want:    5,
			defined: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			avg, ok := Average(models.Student{Name: "S", Scores: tc.scores}, cols)
			assert.Equal(t, tc.defined, ok)
			if tc.defined {
				assert.InDelta(t, tc.want, avg, 1e-9)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		avg  float64
		want Band
	}{
		{10, BandExcellent},
		{8.0, BandExcellent},
		{7.999, BandGood},
		{6.5, BandGood},
		{6.499, BandAverage},
		{5.0, BandAverage},
		{4.999, BandWeak},
		{0, BandWeak},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Classify(tc.avg), "avg=%v", tc.avg)
	}
}
