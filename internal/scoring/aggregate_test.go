package scoring

import (
	"testing"

	"github.com/godilite/ticket-scoring/internal/repository/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	ratings := []models.Rating{
		{TicketID: 1, Category: "tone", Weight: 1.0, Rating: 4, CreatedAt: date(2024, 1, 1)},
		{TicketID: 1, Category: "tone", Weight: 1.0, Rating: 5, CreatedAt: date(2024, 1, 2)},
		{TicketID: 2, Category: "gdpr", Weight: 0, Rating: 5, CreatedAt: date(2024, 1, 2)},
	}

	points := Points(ratings, ScaleFactor)

	require.Len(t, points, 3)
	assert.Equal(t, ScoredPoint{Date: date(2024, 1, 1), Score: 80}, points[0])
	assert.Equal(t, ScoredPoint{Date: date(2024, 1, 2), Score: 100}, points[1])
	assert.Equal(t, 0, points[2].Score)
}

func TestScoreSeries(t *testing.T) {
	t.Run("daily buckets sorted by date", func(t *testing.T) {
		points := []ScoredPoint{
			{Date: date(2024, 1, 3), Score: 60},
			{Date: date(2024, 1, 1), Score: 80},
			{Date: date(2024, 1, 3), Score: 75},
			{Date: date(2024, 1, 2), Score: 100},
		}

		series := ScoreSeries(points, Daily)

		require.Len(t, series, 3)
		assert.Equal(t, "2024-01-01", series[0].Key.String())
		assert.Equal(t, 80, series[0].Score)
		assert.Equal(t, "2024-01-02", series[1].Key.String())
		assert.Equal(t, 100, series[1].Score)
		assert.Equal(t, "2024-01-03", series[2].Key.String())
		assert.Equal(t, 67, series[2].Score, "(60+75)/2 truncates")
		assert.Equal(t, 2, series[2].Count)
	})

	t.Run("weekly buckets across a year boundary", func(t *testing.T) {
		points := []ScoredPoint{
			{Date: date(2024, 1, 1), Score: 100},
			{Date: date(2023, 12, 31), Score: 40},
			{Date: date(2023, 12, 25), Score: 60},
			{Date: date(2024, 1, 7), Score: 80},
		}

		series := ScoreSeries(points, Weekly)

		require.Len(t, series, 2)
		assert.Equal(t, "2023-W52", series[0].Key.String())
		assert.Equal(t, 50, series[0].Score)
		assert.Equal(t, 2, series[0].Count)
		assert.Equal(t, "2024-W01", series[1].Key.String())
		assert.Equal(t, 90, series[1].Score)
		assert.Equal(t, 2, series[1].Count)
	})

	t.Run("empty input", func(t *testing.T) {
		series := ScoreSeries(nil, Daily)
		assert.NotNil(t, series)
		assert.Empty(t, series)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		points := []ScoredPoint{
			{Date: date(2024, 1, 2), Score: 10},
			{Date: date(2024, 1, 1), Score: 20},
		}
		snapshot := append([]ScoredPoint(nil), points...)

		_ = ScoreSeries(points, Daily)

		assert.Equal(t, snapshot, points)
	})
}

func TestScoreSeries_Totality(t *testing.T) {
	var points []ScoredPoint
	start := date(2023, 11, 20)
	for i := 0; i < 90; i++ {
		points = append(points, ScoredPoint{Date: start.AddDate(0, 0, i%45), Score: i})
	}

	for _, g := range []Granularity{Daily, Weekly} {
		t.Run(g.String(), func(t *testing.T) {
			total := 0
			seen := map[BucketKey]bool{}
			for _, b := range ScoreSeries(points, g) {
				assert.False(t, seen[b.Key], "bucket %s listed twice", b.Key)
				seen[b.Key] = true
				total += b.Count
			}
			assert.Equal(t, len(points), total)
		})
	}
}

func TestOverallScore(t *testing.T) {
	t.Run("truncated mean", func(t *testing.T) {
		points := []ScoredPoint{{Score: 80}, {Score: 100}, {Score: 75}}
		assert.Equal(t, 85, OverallScore(points))
	})

	t.Run("empty is zero", func(t *testing.T) {
		assert.Equal(t, 0, OverallScore(nil))
	})

	t.Run("negative mean truncates toward zero", func(t *testing.T) {
		points := []ScoredPoint{{Score: -3}, {Score: -4}}
		assert.Equal(t, -3, OverallScore(points))
	})

	t.Run("bounded by min and max", func(t *testing.T) {
		sets := [][]int{{5}, {1, 2}, {20, 40, 100, 60}, {0, 0, 7}, {-10, 30}}
		for _, scores := range sets {
			points := make([]ScoredPoint, len(scores))
			lo, hi := scores[0], scores[0]
			for i, s := range scores {
				points[i] = ScoredPoint{Score: s}
				lo = min(lo, s)
				hi = max(hi, s)
			}
			got := OverallScore(points)
			assert.GreaterOrEqual(t, got, lo)
			assert.LessOrEqual(t, got, hi)
		}
	})

	t.Run("differs from mean of bucket means", func(t *testing.T) {
		points := []ScoredPoint{
			{Date: date(2024, 1, 1), Score: 100},
			{Date: date(2024, 1, 1), Score: 100},
			{Date: date(2024, 1, 1), Score: 100},
			{Date: date(2024, 1, 2), Score: 20},
		}
		assert.Equal(t, 80, OverallScore(points))

		series := ScoreSeries(points, Daily)
		assert.Equal(t, 60, (series[0].Score+series[1].Score)/2)
	})
}

func TestRatingsSum(t *testing.T) {
	ratings := []models.Rating{{Rating: 4}, {Rating: 5}, {Rating: 1}}
	assert.Equal(t, 10, RatingsSum(ratings))
	assert.Equal(t, 0, RatingsSum(nil))
}

func TestGroupBy(t *testing.T) {
	ratings := []models.Rating{
		{TicketID: 2, Category: "tone"},
		{TicketID: 1, Category: "grammar"},
		{TicketID: 2, Category: "gdpr"},
		{TicketID: 1, Category: "tone"},
	}

	keys, groups := GroupBy(ratings, func(r models.Rating) int64 { return r.TicketID })

	assert.Equal(t, []int64{2, 1}, keys)
	require.Len(t, groups[2], 2)
	assert.Equal(t, "tone", groups[2][0].Category)
	assert.Equal(t, "gdpr", groups[2][1].Category)
	assert.Equal(t, "grammar", groups[1][0].Category)
	assert.Equal(t, "tone", groups[1][1].Category)
}
