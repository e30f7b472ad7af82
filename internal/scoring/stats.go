package scoring

import (
	"math"

	"github.com/quangdm/cloudscore/internal/models"
)

type BandStat struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Summary holds class-level aggregates over students with a defined average.
// ClassAverage/Highest/Lowest are meaningful only when Graded > 0.
type Summary struct {
	Graded       int      `json:"graded"`
	Excellent    BandStat `json:"excellent"`
	Good         BandStat `json:"good"`
	Average      BandStat `json:"average"`
	Weak         BandStat `json:"weak"`
	ClassAverage float64  `json:"classAverage"`
	Highest      float64  `json:"highest"`
	Lowest       float64  `json:"lowest"`
}

// Summarize computes the four band counts with percentages (one decimal) and
// the class mean/max/min (two decimals). Students without a defined average
// are left out entirely; an ungraded roster yields the zero Summary.
func Summarize(students []models.Student, columns []string) Summary {
	var averages []float64
	for _, st := range students {
		if avg, ok := Average(st, columns); ok {
			averages = append(averages, avg)
		}
	}

	var s Summary
	s.Graded = len(averages)
	if s.Graded == 0 {
		return s
	}

	var sum float64
	s.Highest = averages[0]
	s.Lowest = averages[0]
	for _, avg := range averages {
		sum += avg
		s.Highest = math.Max(s.Highest, avg)
		s.Lowest = math.Min(s.Lowest, avg)
		switch Classify(avg) {
		case BandExcellent:
			s.Excellent.Count++
		case BandGood:
			s.Good.Count++
		case BandAverage:
			s.Average.Count++
		case BandWeak:
			s.Weak.Count++
		}
	}

	total := float64(s.Graded)
	s.Excellent.Percent = round(float64(s.Excellent.Count)/total*100, 1)
	s.Good.Percent = round(float64(s.Good.Count)/total*100, 1)
	s.Average.Percent = round(float64(s.Average.Count)/total*100, 1)
	s.Weak.Percent = round(float64(s.Weak.Count)/total*100, 1)
	s.ClassAverage = round(sum/total, 2)
	s.Highest = round(s.Highest, 2)
	s.Lowest = round(s.Lowest, 2)
	return s
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
