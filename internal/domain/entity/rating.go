package entity

import "math"

// RatingSummary is the derived view over a worker's feedback collection.
// Average is nil (not zero) when there is no feedback, so callers can tell
// "unrated" apart from "rated 0.0".
type RatingSummary struct {
	Average *float64 `json:"averageRating"`
	Count   int      `json:"totalFeedbacks"`
}

// SummarizeRatings folds a feedback rating list into its summary: the
// arithmetic mean rounded to one decimal place, and the count. The fold is
// order-independent, so concurrent inserts need no coordination on the read
// side.
func SummarizeRatings(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{Average: nil, Count: 0}
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}

	avg := math.Round(float64(sum)/float64(len(ratings))*10) / 10

	return RatingSummary{Average: &avg, Count: len(ratings)}
}
