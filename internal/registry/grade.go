package registry

// gradeBands maps average thresholds to letter grades, evaluated top
// down with non-strict comparisons. Averages below every threshold
// grade as "F".
var gradeBands = []struct {
	min    float64
	letter string
}{
	{90, "A+"},
	{80, "A"},
	{70, "B"},
	{60, "C"},
	{50, "D"},
}

// ToLetterGrade converts an average to a letter grade. Total over all
// float64 inputs: values above 100 or below 0 still map to a band
// rather than failing.
func ToLetterGrade(avg float64) string {
	for _, band := range gradeBands {
		if avg >= band.min {
			return band.letter
		}
	}
	return "F"
}
