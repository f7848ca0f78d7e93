package scoring

import "math"

// ScaleFactor maps a weighted rating onto the score scale. With weight 1 a
// 1..5 rating becomes 20..100.
const ScaleFactor = 20

// Score returns round(weight * rating * ScaleFactor).
func Score(weight float64, rating int) int {
	return ScoreWithFactor(weight, rating, ScaleFactor)
}

// ScoreWithFactor is Score with an explicit scale factor. Halves round away
// from zero. A non-positive weight always scores 0.
func ScoreWithFactor(weight float64, rating int, factor float64) int {
	if weight <= 0 {
		return 0
	}
	return int(math.Round(weight * float64(rating) * factor))
}
