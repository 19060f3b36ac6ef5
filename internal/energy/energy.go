package energy

import "math"

// Composite weights. Sleep dominates on purpose: a bad night caps the
// day regardless of how the other inputs look.
const (
	sleepWeight     = 0.35
	trainingWeight  = 0.20
	focusWeight     = 0.25
	nutritionWeight = 0.20
)

// Label band boundaries. These are NOT the same thresholds the coach
// fallback uses (40/70); the two sets were tuned independently.
const (
	lowMax      = 35
	moderateMax = 65
	highMax     = 85
)

// Score turns the four daily inputs into a 0-100 energy value.
//
// Sleep hours go through a step function (sleep deprivation has cliff
// effects, not linear ones); the other three inputs are 0-10 scores
// rescaled to 0-100 without clamping. Only the final composite is
// clamped, then rounded with math.Round (half away from zero).
func Score(sleep, training, focus, nutrition float64) int {
	composite := sleepScore(sleep)*sleepWeight +
		(training/10*100)*trainingWeight +
		(focus/10*100)*focusWeight +
		(nutrition/10*100)*nutritionWeight

	clamped := math.Max(0, math.Min(100, composite))
	return int(math.Round(clamped))
}

func sleepScore(hours float64) float64 {
	switch {
	case hours <= 0:
		return 20
	case hours >= 8:
		return 100
	case hours >= 6.5:
		return 85
	case hours >= 5.5:
		return 70
	default:
		return 50
	}
}

// Label maps an energy value to its descriptive band. A nil energy means
// no score has been computed yet.
func Label(energy *int) string {
	if energy == nil {
		return "No data for today."
	}
	switch {
	case *energy < lowMax:
		return "Low energy · Good day for light tasks and review."
	case *energy < moderateMax:
		return "Moderate energy · Mix medium tasks with small deliverables."
	case *energy < highMax:
		return "High energy · Ideal for deep study and complex work."
	default:
		return "Peak energy · Excellent for high-impact projects."
	}
}
