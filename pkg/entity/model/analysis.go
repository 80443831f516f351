package model

import (
	"math"
	"time"
)

// Run statuses, mirrored into RunSummary.Status.
const (
	RunStatusSuccess = "SUCCESS"
	RunStatusFailed  = "FAILED"
)

// RunSummary describes one pipeline execution for logging and callers.
type RunSummary struct {
	RunID           string     `json:"runId"`
	Status          string     `json:"status"`
	StartedAt       time.Time  `json:"startedAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	DurationSeconds int        `json:"durationSeconds"`
	ProfileCount    int        `json:"profileCount"`
	PostCount       int        `json:"postCount"`
	SearchCount     int        `json:"searchCount"`
	ErrorSummary    *string    `json:"errorSummary"`
}

// AnalysisResult is the full set of derived tables of one run. Every slice
// and table is freshly allocated per run; nothing here aliases the caller's
// inputs.
type AnalysisResult struct {
	Profiles   []*Profile         `json:"profiles"`
	Posts      []*Post            `json:"posts"`
	Search     []*SearchResult    `json:"search"`
	Enriched   []*EnrichedProfile `json:"enriched"`
	Classified []*ClassifiedPost  `json:"classified"`
	Kpis       []*KpiRow          `json:"kpis"`

	TypeCounts     *PivotTable `json:"typeCounts"`
	TypeEngagement *PivotTable `json:"typeEngagement"`
	TypeLikes      *PivotTable `json:"typeLikes"`
	TypeComments   *PivotTable `json:"typeComments"`
	PeriodByType   *PivotTable `json:"periodByType"`
	WeekdayByType  *PivotTable `json:"weekdayByType"`
	PeriodCounts   []CountRow  `json:"periodCounts"`
	WeekdayCounts  []CountRow  `json:"weekdayCounts"`
}

// Tables flattens the result into JSON-serializable primitives for the
// narrative and document collaborators. NaN sentinels become nil, since JSON
// has no NaN. Column names and axis order are stable across runs.
func (r *AnalysisResult) Tables() map[string]interface{} {
	enriched := make([]map[string]interface{}, 0, len(r.Enriched))
	for _, e := range r.Enriched {
		enriched = append(enriched, map[string]interface{}{
			"username":        e.Username,
			"followersCount":  e.FollowersCount,
			"followsCount":    e.FollowsCount,
			"postsCount":      e.PostsCount,
			"likesSum":        e.LikesSum,
			"commentsSum":     e.CommentsSum,
			"postCount":       e.PostCount,
			"totalEngagement": e.TotalEngagement,
			"engagementRate":  floatOrNil(e.EngagementRate),
			"recency":         floatOrNil(e.Recency),
			"frequency":       floatOrNil(e.Frequency),
			"minTimestamp":    timeOrNil(e.MinTimestamp),
			"maxTimestamp":    timeOrNil(e.MaxTimestamp),
		})
	}

	kpis := make([]map[string]interface{}, 0, len(r.Kpis))
	for _, k := range r.Kpis {
		kpis = append(kpis, map[string]interface{}{
			"username":          k.Username,
			"followersCount":    k.FollowersCount,
			"followsCount":      k.FollowsCount,
			"totalPosts":        k.TotalPosts,
			"avgLikes":          floatOrNil(k.AvgLikes),
			"avgComments":       floatOrNil(k.AvgComments),
			"engagementRatePct": floatOrNil(k.EngagementRatePct),
		})
	}

	return map[string]interface{}{
		"enriched":       enriched,
		"kpis":           kpis,
		"typeCounts":     pivotMap(r.TypeCounts),
		"typeEngagement": pivotMap(r.TypeEngagement),
		"typeLikes":      pivotMap(r.TypeLikes),
		"typeComments":   pivotMap(r.TypeComments),
		"periodByType":   pivotMap(r.PeriodByType),
		"weekdayByType":  pivotMap(r.WeekdayByType),
		"periodCounts":   countRows(r.PeriodCounts),
		"weekdayCounts":  countRows(r.WeekdayCounts),
	}
}

func pivotMap(p *PivotTable) map[string]interface{} {
	if p == nil {
		return nil
	}
	return map[string]interface{}{
		"rowKey": p.RowKey,
		"colKey": p.ColKey,
		"rows":   p.Rows,
		"cols":   p.Cols,
		"cells":  p.Cells,
	}
}

func countRows(rows []CountRow) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, map[string]interface{}{
			"label": row.Label,
			"count": row.Count,
		})
	}
	return out
}

func floatOrNil(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func timeOrNil(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
