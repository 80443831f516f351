package kpi_test

import (
	"math"
	"testing"
	"time"

	"social-insights-backend/pkg/entity/model"
	"social-insights-backend/pkg/usecase/usecase/kpi"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	ts := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	post := func(username string, likes, comments int) *model.Post {
		return &model.Post{
			OwnerUsername: username,
			Timestamp:     ts,
			LikesCount:    likes,
			CommentsCount: comments,
		}
	}

	tests := []struct {
		name     string
		profiles []*model.Profile
		posts    []*model.Post
		assert   func(t *testing.T, got []*model.KpiRow)
	}{
		{
			name: "Should average per post and round to two decimals",
			profiles: []*model.Profile{
				{Username: "a", FollowersCount: 300, FollowsCount: 12},
			},
			posts: []*model.Post{
				post("a", 10, 1),
				post("a", 11, 2),
				post("a", 12, 2),
			},
			assert: func(t *testing.T, got []*model.KpiRow) {
				require.Len(t, got, 1)
				row := got[0]
				require.Equal(t, 3, row.TotalPosts)
				require.Equal(t, 11.0, row.AvgLikes)
				require.InDelta(t, 1.67, row.AvgComments, 1e-9)
				// (11 + 5/3) / 300 * 100, rounded.
				require.InDelta(t, 4.22, row.EngagementRatePct, 1e-9)
				require.Equal(t, 300, row.FollowersCount)
				require.Equal(t, 12, row.FollowsCount)
			},
		},
		{
			name: "Should keep NaN for a profile without posts",
			profiles: []*model.Profile{
				{Username: "a", FollowersCount: 100},
			},
			posts: nil,
			assert: func(t *testing.T, got []*model.KpiRow) {
				row := got[0]
				require.Zero(t, row.TotalPosts)
				require.True(t, math.IsNaN(row.AvgLikes))
				require.True(t, math.IsNaN(row.AvgComments))
				require.True(t, math.IsNaN(row.EngagementRatePct))
				require.False(t, row.HasData())
			},
		},
		{
			name: "Should keep NaN rate for zero followers",
			profiles: []*model.Profile{
				{Username: "a", FollowersCount: 0},
			},
			posts: []*model.Post{
				post("a", 4, 2),
			},
			assert: func(t *testing.T, got []*model.KpiRow) {
				row := got[0]
				require.Equal(t, 4.0, row.AvgLikes)
				require.True(t, math.IsNaN(row.EngagementRatePct))
			},
		},
		{
			name: "Should emit one row per profile in input order",
			profiles: []*model.Profile{
				{Username: "b", FollowersCount: 10},
				{Username: "a", FollowersCount: 10},
			},
			posts: []*model.Post{
				post("a", 2, 0),
			},
			assert: func(t *testing.T, got []*model.KpiRow) {
				require.Len(t, got, 2)
				require.Equal(t, "b", got[0].Username)
				require.Equal(t, "a", got[1].Username)
				require.True(t, got[1].HasData())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kpi.Summarize(tt.profiles, tt.posts)
			tt.assert(t, got)
		})
	}
}
