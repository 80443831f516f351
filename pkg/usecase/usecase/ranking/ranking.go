package ranking

import (
	"math"
	"sort"
)

// TopN returns the n rows with the highest metric, descending. Rows whose
// metric is the NaN sentinel are excluded before ranking. Ties keep the
// original input order (first-seen wins), which also makes the selection
// idempotent: TopN(TopN(rows, n), n) == TopN(rows, n). When fewer than n
// rows are eligible, all of them are returned.
func TopN[T any](rows []T, n int, metric func(T) float64) []T {
	if n <= 0 {
		return []T{}
	}

	eligible := make([]T, 0, len(rows))
	for _, row := range rows {
		if !math.IsNaN(metric(row)) {
			eligible = append(eligible, row)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return metric(eligible[i]) > metric(eligible[j])
	})

	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}

// TopNWithHighlight ranks like TopN and additionally reports the position of
// highlightKey within the result, or -1 when absent. The highlight never
// affects the ranking itself; callers use it to flag the client's own row.
func TopNWithHighlight[T any](
	rows []T,
	n int,
	metric func(T) float64,
	key func(T) string,
	highlightKey string,
) ([]T, int) {
	top := TopN(rows, n, metric)
	for i, row := range top {
		if key(row) == highlightKey {
			return top, i
		}
	}
	return top, -1
}
