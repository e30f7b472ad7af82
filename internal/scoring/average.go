// internal/scoring/average.go
package scoring

import (
	"strconv"
	"strings"

	"github.com/quangdm/cloudscore/internal/models"
)

// Scores outside [MinScore, MaxScore] are treated as non-numeric noise and
// excluded from averages.
const (
	MinScore = 0.0
	MaxScore = 10.0
)

// Average computes a student's mean over the given columns at full precision.
// Comma decimal separators are accepted. Empty, unparseable and out-of-range
// values are skipped; with nothing left the average is undefined and ok is
// false — an all-text roster has no average, not a zero one.
func Average(st models.Student, columns []string) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, col := range columns {
		raw := strings.TrimSpace(st.Scores[col])
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		// Positive range check so NaN (which ParseFloat accepts) is skipped too.
		if err != nil || !(v >= MinScore && v <= MaxScore) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
