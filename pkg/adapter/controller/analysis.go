package controller

import (
	"context"
	"fmt"
	"social-insights-backend/pkg/entity/model"
	"social-insights-backend/pkg/usecase/usecase/analysis"
	"social-insights-backend/pkg/usecase/usecase/ranking"
)

// Analysis is the call/return contract handed to the narrative and document
// collaborators: one full pipeline run plus metric-based selections over its
// tables. Everything returned across this boundary is either a model table
// or plain JSON-serializable data.
type Analysis interface {
	Run(ctx context.Context) (*model.AnalysisResult, *model.RunSummary, error)
	Tables(ctx context.Context) (map[string]interface{}, *model.RunSummary, error)
	TopProfiles(result *model.AnalysisResult, metric string, n int, highlightKey string) ([]*model.EnrichedProfile, int, error)
	TopPosts(result *model.AnalysisResult, metric string, n int) ([]*model.Post, error)
}

type analysisController struct {
	pipeline *analysis.Pipeline
}

// NewAnalysisController wires the pipeline behind the Analysis contract.
func NewAnalysisController(p *analysis.Pipeline) Analysis {
	return &analysisController{pipeline: p}
}

func (c *analysisController) Run(ctx context.Context) (*model.AnalysisResult, *model.RunSummary, error) {
	return c.pipeline.Run(ctx)
}

// Tables runs the pipeline and flattens the result for collaborators that
// only consume plain structured data.
func (c *analysisController) Tables(ctx context.Context) (map[string]interface{}, *model.RunSummary, error) {
	result, summary, err := c.pipeline.Run(ctx)
	if err != nil {
		return nil, summary, err
	}
	return result.Tables(), summary, nil
}

func (c *analysisController) TopProfiles(
	result *model.AnalysisResult,
	metric string,
	n int,
	highlightKey string,
) ([]*model.EnrichedProfile, int, error) {
	accessor, err := profileMetric(metric)
	if err != nil {
		return nil, -1, err
	}
	top, highlight := ranking.TopNWithHighlight(
		result.Enriched,
		n,
		accessor,
		func(e *model.EnrichedProfile) string { return e.Username },
		highlightKey,
	)
	return top, highlight, nil
}

func (c *analysisController) TopPosts(
	result *model.AnalysisResult,
	metric string,
	n int,
) ([]*model.Post, error) {
	accessor, err := postMetric(metric)
	if err != nil {
		return nil, err
	}
	return ranking.TopN(result.Posts, n, accessor), nil
}

func profileMetric(name string) (func(*model.EnrichedProfile) float64, error) {
	switch name {
	case "followersCount":
		return func(e *model.EnrichedProfile) float64 { return float64(e.FollowersCount) }, nil
	case "followsCount":
		return func(e *model.EnrichedProfile) float64 { return float64(e.FollowsCount) }, nil
	case "postsCount":
		return func(e *model.EnrichedProfile) float64 { return float64(e.PostsCount) }, nil
	case "likesSum":
		return func(e *model.EnrichedProfile) float64 { return float64(e.LikesSum) }, nil
	case "commentsSum":
		return func(e *model.EnrichedProfile) float64 { return float64(e.CommentsSum) }, nil
	case "totalEngagement":
		return func(e *model.EnrichedProfile) float64 { return float64(e.TotalEngagement) }, nil
	case "engagementRate":
		return func(e *model.EnrichedProfile) float64 { return e.EngagementRate }, nil
	case "recency":
		return func(e *model.EnrichedProfile) float64 { return e.Recency }, nil
	case "frequency":
		return func(e *model.EnrichedProfile) float64 { return e.Frequency }, nil
	}
	return nil, fmt.Errorf("unknown profile metric %q", name)
}

func postMetric(name string) (func(*model.Post) float64, error) {
	switch name {
	case "likesCount":
		return func(p *model.Post) float64 { return float64(p.LikesCount) }, nil
	case "commentsCount":
		return func(p *model.Post) float64 { return float64(p.CommentsCount) }, nil
	case "totalEngagement":
		return func(p *model.Post) float64 { return float64(p.TotalEngagement) }, nil
	}
	return nil, fmt.Errorf("unknown post metric %q", name)
}
