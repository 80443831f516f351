package model

import "math"

// KpiRow is one profile's descriptive statistics for report consumption.
// AvgLikes/AvgComments/EngagementRatePct are NaN for a profile without posts
// (or without followers, for the rate): "no data" is distinct from a measured
// zero.
type KpiRow struct {
	Username          string  `json:"username"`
	FollowersCount    int     `json:"followersCount"`
	FollowsCount      int     `json:"followsCount"`
	TotalPosts        int     `json:"totalPosts"`
	AvgLikes          float64 `json:"avgLikes"`
	AvgComments       float64 `json:"avgComments"`
	EngagementRatePct float64 `json:"engagementRatePct"`
}

// HasData reports whether the averages carry measured values.
func (k *KpiRow) HasData() bool {
	return !math.IsNaN(k.AvgLikes)
}
