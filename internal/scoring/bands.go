package scoring

// Band is the performance classification derived from a student's average.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandAverage   Band = "average"
	BandWeak      Band = "weak"
)

// Band boundaries. The aggregator, the band filter and the per-student badge
// all classify through Classify so the cutoffs cannot drift apart.
const (
	ExcellentMin = 8.0
	GoodMin      = 6.5
	AverageMin   = 5.0
)

func Classify(avg float64) Band {
	switch {
	case avg >= ExcellentMin:
		return BandExcellent
	case avg >= GoodMin:
		return BandGood
	case avg >= AverageMin:
		return BandAverage
	default:
		return BandWeak
	}
}
