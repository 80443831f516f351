package controller_test

import (
	"math"
	"testing"

	"social-insights-backend/pkg/adapter/controller"
	"social-insights-backend/pkg/entity/model"

	"github.com/stretchr/testify/require"
)

func newResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Enriched: []*model.EnrichedProfile{
			{Profile: model.Profile{Username: "a", FollowersCount: 100}, EngagementRate: 0.35, TotalEngagement: 35},
			{Profile: model.Profile{Username: "b", FollowersCount: 500}, EngagementRate: math.NaN()},
			{Profile: model.Profile{Username: "c", FollowersCount: 200}, EngagementRate: 0.10, TotalEngagement: 20},
		},
		Posts: []*model.Post{
			{ID: "p1", LikesCount: 5, CommentsCount: 1, TotalEngagement: 6},
			{ID: "p2", LikesCount: 50, CommentsCount: 2, TotalEngagement: 52},
		},
	}
}

func TestTopProfiles(t *testing.T) {
	ctrl := controller.NewAnalysisController(nil)
	result := newResult()

	tests := []struct {
		name      string
		metric    string
		highlight string
		assert    func(t *testing.T, got []*model.EnrichedProfile, highlight int, err error)
	}{
		{
			name:   "Should rank by followers",
			metric: "followersCount",
			assert: func(t *testing.T, got []*model.EnrichedProfile, highlight int, err error) {
				require.NoError(t, err)
				require.Len(t, got, 3)
				require.Equal(t, "b", got[0].Username)
				require.Equal(t, -1, highlight)
			},
		},
		{
			name:      "Should exclude NaN rates and find the highlight",
			metric:    "engagementRate",
			highlight: "c",
			assert: func(t *testing.T, got []*model.EnrichedProfile, highlight int, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)
				require.Equal(t, "a", got[0].Username)
				require.Equal(t, 1, highlight)
			},
		},
		{
			name:   "Should reject an unknown metric",
			metric: "nope",
			assert: func(t *testing.T, got []*model.EnrichedProfile, highlight int, err error) {
				require.Error(t, err)
				require.Nil(t, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, highlight, err := ctrl.TopProfiles(result, tt.metric, 5, tt.highlight)
			tt.assert(t, got, highlight, err)
		})
	}
}

func TestTopPosts(t *testing.T) {
	ctrl := controller.NewAnalysisController(nil)
	result := newResult()

	got, err := ctrl.TopPosts(result, "totalEngagement", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "p2", got[0].ID)

	_, err = ctrl.TopPosts(result, "nope", 1)
	require.Error(t, err)
}
