package movie_test

import (
	"testing"

	"mflix/movie"

	"github.com/stretchr/testify/assert"
)

func TestFillBuckets(t *testing.T) {
	t.Run("fills every range when nothing matched", func(t *testing.T) {
		buckets := movie.FillBuckets(movie.RuntimeBoundaries, nil)

		assert.Equal(t, []movie.Bucket{
			{ID: 0, Count: 0},
			{ID: 60, Count: 0},
			{ID: 90, Count: 0},
			{ID: 120, Count: 0},
			{ID: movie.OtherBucket, Count: 0},
		}, buckets)
		assert.Zero(t, movie.Total(buckets))
	})

	t.Run("keeps store counts whatever the numeric type", func(t *testing.T) {
		got := []movie.Bucket{
			{ID: int32(50), Count: 3},
			{ID: int64(90), Count: 1},
			{ID: float64(0), Count: 2},
			{ID: "other", Count: 4},
		}

		buckets := movie.FillBuckets(movie.RatingBoundaries, got)

		assert.Equal(t, []movie.Bucket{
			{ID: 0, Count: 2},
			{ID: 50, Count: 3},
			{ID: 70, Count: 0},
			{ID: 90, Count: 1},
			{ID: movie.OtherBucket, Count: 4},
		}, buckets)
		assert.Equal(t, int64(10), movie.Total(buckets))
	})
}
