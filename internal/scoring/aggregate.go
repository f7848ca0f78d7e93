package scoring

import (
	"sort"
	"time"

	"github.com/godilite/ticket-scoring/internal/repository/models"
)

// ScoredPoint is one rating reduced to its date and score.
type ScoredPoint struct {
	Date  time.Time
	Score int
}

// BucketedPoint is the truncated mean of all points sharing a bucket key.
type BucketedPoint struct {
	Key   BucketKey
	Score int
	Count int
}

// Points scores every rating with the given scale factor, keeping input order.
func Points(ratings []models.Rating, factor float64) []ScoredPoint {
	out := make([]ScoredPoint, len(ratings))
	for i, r := range ratings {
		out[i] = ScoredPoint{
			Date:  DateOf(r.CreatedAt),
			Score: ScoreWithFactor(r.Weight, r.Rating, factor),
		}
	}
	return out
}

// ScoreSeries buckets points under g and returns one entry per bucket in
// ascending key order.
func ScoreSeries(points []ScoredPoint, g Granularity) []BucketedPoint {
	keys, groups := GroupBy(points, func(p ScoredPoint) BucketKey {
		return KeyFor(p.Date, g)
	})

	series := make([]BucketedPoint, 0, len(keys))
	for _, k := range keys {
		members := groups[k]
		series = append(series, BucketedPoint{
			Key:   k,
			Score: OverallScore(members),
			Count: len(members),
		})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Key.Before(series[j].Key)
	})
	return series
}

// OverallScore is the mean of all point scores truncated toward zero, 0 when
// there are no points.
func OverallScore(points []ScoredPoint) int {
	if len(points) == 0 {
		return 0
	}
	total := 0
	for _, p := range points {
		total += p.Score
	}
	return total / len(points)
}

// RatingsSum adds up the raw rating values. It is a sum, not an average.
func RatingsSum(ratings []models.Rating) int {
	total := 0
	for _, r := range ratings {
		total += r.Rating
	}
	return total
}

// GroupBy partitions items by key. The returned slice lists keys in the order
// they were first seen; members keep their input order.
func GroupBy[K comparable, V any](items []V, key func(V) K) ([]K, map[K][]V) {
	var keys []K
	groups := make(map[K][]V)
	for _, item := range items {
		k := key(item)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], item)
	}
	return keys, groups
}
