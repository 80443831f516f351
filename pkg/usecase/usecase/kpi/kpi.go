package kpi

import (
	"math"
	"social-insights-backend/pkg/entity/model"
)

// Summarize computes per-profile descriptive statistics for the report
// tables: average likes/comments per post and the engagement rate as a
// percentage of followers, both rounded to two decimals for presentation.
// A profile without posts yields NaN averages, never zero, so "no data"
// stays distinguishable from measured zero engagement.
func Summarize(profiles []*model.Profile, posts []*model.Post) []*model.KpiRow {
	type totals struct {
		likes    int
		comments int
		count    int
	}

	byUsername := make(map[string]*totals)
	for _, post := range posts {
		t := byUsername[post.OwnerUsername]
		if t == nil {
			t = &totals{}
			byUsername[post.OwnerUsername] = t
		}
		t.likes += post.LikesCount
		t.comments += post.CommentsCount
		t.count++
	}

	rows := make([]*model.KpiRow, 0, len(profiles))
	for _, p := range profiles {
		row := &model.KpiRow{
			Username:          p.Username,
			FollowersCount:    p.FollowersCount,
			FollowsCount:      p.FollowsCount,
			AvgLikes:          math.NaN(),
			AvgComments:       math.NaN(),
			EngagementRatePct: math.NaN(),
		}

		if t := byUsername[p.Username]; t != nil && t.count > 0 {
			row.TotalPosts = t.count
			row.AvgLikes = round2(float64(t.likes) / float64(t.count))
			row.AvgComments = round2(float64(t.comments) / float64(t.count))
			if p.FollowersCount > 0 {
				rate := (float64(t.likes)/float64(t.count) + float64(t.comments)/float64(t.count)) /
					float64(p.FollowersCount) * 100
				row.EngagementRatePct = round2(rate)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
