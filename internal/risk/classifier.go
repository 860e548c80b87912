// Package risk maps a 0-100 risk score onto the three-tier threshold policy.
package risk

// Thresholds on the risk score, checked from the highest down.
const (
	HighThreshold     = 20.0
	ModerateThreshold = 9.0
)

// Classification is the label set reported alongside a risk score.
type Classification struct {
	Level    string
	Category string
	Status   string
	Priority string
}

var (
	High = Classification{
		Level:    "Risiko Tinggi",
		Category: "Berbahaya",
		Status:   "Memerlukan Tindakan",
		Priority: "Segera",
	}
	Moderate = Classification{
		Level:    "Risiko Sedang",
		Category: "Waspada",
		Status:   "Perlu Perhatian",
		Priority: "Monitoring",
	}
	Low = Classification{
		Level:    "Risiko Rendah",
		Category: "Baik",
		Status:   "Sehat",
		Priority: "Rutin",
	}
)

// Classify returns the tier for score. It is total: NaN falls through to Low.
func Classify(score float64) Classification {
	switch {
	case score >= HighThreshold:
		return High
	case score >= ModerateThreshold:
		return Moderate
	default:
		return Low
	}
}

// Levels lists every risk level, highest first.
func Levels() []string {
	return []string{High.Level, Moderate.Level, Low.Level}
}
