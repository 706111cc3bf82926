package movie

import "fmt"

// OtherBucket collects values outside every boundary range, including
// documents missing the field.
const OtherBucket = "other"

var (
	RuntimeBoundaries = []int{0, 60, 90, 120, 180}
	RatingBoundaries  = []int{0, 50, 70, 90, 100}
)

// Bucket is one histogram range. ID is the inclusive lower boundary, or
// OtherBucket for the overflow bucket.
type Bucket struct {
	ID    interface{} `bson:"_id" json:"_id"`
	Count int64       `bson:"count" json:"count"`
}

type FacetResult struct {
	Movies  []Movie  `json:"movies"`
	Runtime []Bucket `json:"runtime"`
	Rating  []Bucket `json:"rating"`
	Count   int64    `json:"count"`
}

// FillBuckets returns one bucket per range of boundaries plus the overflow
// bucket, in order, taking counts from got. Ranges absent from got count zero.
func FillBuckets(boundaries []int, got []Bucket) []Bucket {
	counts := make(map[string]int64, len(got))
	for _, b := range got {
		counts[fmt.Sprint(b.ID)] += b.Count
	}

	buckets := make([]Bucket, 0, len(boundaries))
	for _, lower := range boundaries[:len(boundaries)-1] {
		buckets = append(buckets, Bucket{ID: lower, Count: counts[fmt.Sprint(lower)]})
	}
	return append(buckets, Bucket{ID: OtherBucket, Count: counts[OtherBucket]})
}

// Total sums the counts of all buckets.
func Total(buckets []Bucket) int64 {
	var n int64
	for _, b := range buckets {
		n += b.Count
	}
	return n
}
