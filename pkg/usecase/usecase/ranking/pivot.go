package ranking

import (
	"social-insights-backend/pkg/entity/model"
	"sort"
)

// RowDimension selects the pivot row axis.
type RowDimension int

const (
	ByUsername RowDimension = iota
	ByWeekday
	ByPeriod
)

func (d RowDimension) name() string {
	switch d {
	case ByWeekday:
		return "dayOfWeek"
	case ByPeriod:
		return "periodOfDay"
	default:
		return "username"
	}
}

// Aggregation selects the pivot cell value.
type Aggregation int

const (
	CountPosts Aggregation = iota
	SumLikes
	SumComments
	SumEngagement
)

func (a Aggregation) value(p *model.ClassifiedPost) float64 {
	switch a {
	case SumLikes:
		return float64(p.LikesCount)
	case SumComments:
		return float64(p.CommentsCount)
	case SumEngagement:
		return float64(p.TotalEngagement)
	default:
		return 1
	}
}

// Pivot cross-tabulates a row dimension against the post type. Canonical
// axes (weekday, period) always carry their complete fixed-order axis with
// zeros for empty buckets; the open username axis lists only rows present in
// the data, in first-seen order. Type columns are sorted so column order is
// stable across runs.
func Pivot(posts []*model.ClassifiedPost, dim RowDimension, agg Aggregation) *model.PivotTable {
	table := model.NewPivotTable(dim.name(), "type")

	// Canonical axes are seeded up front so missing buckets still appear.
	switch dim {
	case ByWeekday:
		for _, day := range model.WeekdayOrder {
			table.EnsureRow(day)
		}
	case ByPeriod:
		for _, period := range model.PeriodOrder {
			table.EnsureRow(string(period))
		}
	}

	for _, postType := range postTypes(posts) {
		table.EnsureCol(postType)
	}

	for _, post := range posts {
		table.Add(rowLabel(post, dim), post.Type, agg.value(post))
	}
	return table
}

// CountByPeriod counts posts per day period, over the complete canonical
// axis.
func CountByPeriod(posts []*model.ClassifiedPost) []model.CountRow {
	counts := make(map[string]int, len(model.PeriodOrder))
	for _, post := range posts {
		counts[string(post.Period)]++
	}
	rows := make([]model.CountRow, 0, len(model.PeriodOrder))
	for _, period := range model.PeriodOrder {
		rows = append(rows, model.CountRow{Label: string(period), Count: counts[string(period)]})
	}
	return rows
}

// CountByWeekday counts posts per weekday, over the complete canonical axis.
func CountByWeekday(posts []*model.ClassifiedPost) []model.CountRow {
	counts := make(map[string]int, len(model.WeekdayOrder))
	for _, post := range posts {
		counts[post.DayOfWeek]++
	}
	rows := make([]model.CountRow, 0, len(model.WeekdayOrder))
	for _, day := range model.WeekdayOrder {
		rows = append(rows, model.CountRow{Label: day, Count: counts[day]})
	}
	return rows
}

func rowLabel(post *model.ClassifiedPost, dim RowDimension) string {
	switch dim {
	case ByWeekday:
		return post.DayOfWeek
	case ByPeriod:
		return string(post.Period)
	default:
		return post.OwnerUsername
	}
}

func postTypes(posts []*model.ClassifiedPost) []string {
	seen := make(map[string]struct{})
	var types []string
	for _, post := range posts {
		if _, ok := seen[post.Type]; !ok {
			seen[post.Type] = struct{}{}
			types = append(types, post.Type)
		}
	}
	sort.Strings(types)
	return types
}
