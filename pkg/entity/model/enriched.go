package model

import (
	"math"
	"time"
)

// EnrichedProfile is one profile joined with the aggregates of its posts.
// A profile with no posts keeps zero sums, nil timestamps and zero
// recency/frequency. EngagementRate is NaN when the profile has no
// followers; callers ranking by it must filter sentinel rows first.
type EnrichedProfile struct {
	Profile

	LikesSum        int        `json:"likesSum"`
	CommentsSum     int        `json:"commentsSum"`
	PostCount       int        `json:"postCount"`
	MinTimestamp    *time.Time `json:"minTimestamp"`
	MaxTimestamp    *time.Time `json:"maxTimestamp"`
	TotalEngagement int        `json:"totalEngagement"`
	EngagementRate  float64    `json:"engagementRate"`
	Recency         float64    `json:"recency"`
	Frequency       float64    `json:"frequency"`
}

// HasPosts reports whether any post was joined onto this profile.
func (e *EnrichedProfile) HasPosts() bool {
	return e.PostCount > 0
}

// HasEngagementRate reports whether EngagementRate carries a measured value
// rather than the divide-by-zero sentinel.
func (e *EnrichedProfile) HasEngagementRate() bool {
	return !math.IsNaN(e.EngagementRate)
}
