package analysis

import (
	"context"
	"os"
	"time"

	"social-insights-backend/pkg/entity/model"
	"social-insights-backend/pkg/usecase/repository"
	"social-insights-backend/pkg/usecase/usecase/aggregator"
	"social-insights-backend/pkg/usecase/usecase/kpi"
	"social-insights-backend/pkg/usecase/usecase/loader"
	"social-insights-backend/pkg/usecase/usecase/ranking"
	"social-insights-backend/pkg/usecase/usecase/temporal"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Pipeline runs one full analysis: snapshot -> loader -> aggregation and
// classification -> pivots -> KPIs, strictly in that order. Each run reads a
// fresh snapshot and builds fresh tables, so independent runs can execute
// concurrently without sharing state.
type Pipeline struct {
	snapshot   repository.Snapshot
	aggregator *aggregator.Aggregator
	logger     *zap.SugaredLogger
}

// NewPipeline creates a Pipeline over the given snapshot source.
func NewPipeline(snapshot repository.Snapshot) *Pipeline {
	logger := newAnalysisLogger()
	return &Pipeline{
		snapshot:   snapshot,
		aggregator: aggregator.NewAggregator(logger),
		logger:     logger,
	}
}

// Run executes one analysis over the current snapshot. On failure the
// returned summary identifies the failed run; the result is nil.
func (p *Pipeline) Run(ctx context.Context) (*model.AnalysisResult, *model.RunSummary, error) {
	startedAt := time.Now()
	runID := ulid.Make().String()
	p.logger.Infow("analysis run started", "run_id", runID)

	result, err := p.buildResult(ctx)
	completedAt := time.Now()
	summary := &model.RunSummary{
		RunID:           runID,
		StartedAt:       startedAt,
		CompletedAt:     &completedAt,
		DurationSeconds: int(completedAt.Sub(startedAt).Seconds()),
	}

	if err != nil {
		summary.Status = model.RunStatusFailed
		errMsg := err.Error()
		summary.ErrorSummary = &errMsg
		p.logger.Errorw("analysis run failed", "run_id", runID, "error", err)
		return nil, summary, err
	}

	summary.Status = model.RunStatusSuccess
	summary.ProfileCount = len(result.Profiles)
	summary.PostCount = len(result.Posts)
	summary.SearchCount = len(result.Search)
	p.logger.Infow(
		"analysis run completed",
		"run_id", runID,
		"profiles", summary.ProfileCount,
		"posts", summary.PostCount,
		"duration_seconds", summary.DurationSeconds,
	)
	return result, summary, nil
}

func (p *Pipeline) buildResult(ctx context.Context) (*model.AnalysisResult, error) {
	rawProfiles, profileSource, err := p.snapshot.Profiles(ctx)
	if err != nil {
		return nil, err
	}
	rawPosts, postSource, err := p.snapshot.Posts(ctx)
	if err != nil {
		return nil, err
	}
	rawSearch, searchSource, err := p.snapshot.SearchResults(ctx)
	if err != nil {
		return nil, err
	}

	profiles, err := loader.LoadProfiles(profileSource, rawProfiles)
	if err != nil {
		return nil, err
	}
	posts, err := loader.LoadPosts(postSource, rawPosts)
	if err != nil {
		return nil, err
	}

	var search []*model.SearchResult
	if rawSearch != nil {
		search, err = loader.LoadSearchResults(searchSource, rawSearch)
		if err != nil {
			return nil, err
		}
	}

	enriched := p.aggregator.Aggregate(profiles, posts)
	classified := temporal.Classify(posts)

	return &model.AnalysisResult{
		Profiles:   profiles,
		Posts:      posts,
		Search:     search,
		Enriched:   enriched,
		Classified: classified,
		Kpis:       kpi.Summarize(profiles, posts),

		TypeCounts:     ranking.Pivot(classified, ranking.ByUsername, ranking.CountPosts),
		TypeEngagement: ranking.Pivot(classified, ranking.ByUsername, ranking.SumEngagement),
		TypeLikes:      ranking.Pivot(classified, ranking.ByUsername, ranking.SumLikes),
		TypeComments:   ranking.Pivot(classified, ranking.ByUsername, ranking.SumComments),
		PeriodByType:   ranking.Pivot(classified, ranking.ByPeriod, ranking.CountPosts),
		WeekdayByType:  ranking.Pivot(classified, ranking.ByWeekday, ranking.CountPosts),
		PeriodCounts:   ranking.CountByPeriod(classified),
		WeekdayCounts:  ranking.CountByWeekday(classified),
	}, nil
}

func newAnalysisLogger() *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)

	return zap.New(core).Sugar()
}
