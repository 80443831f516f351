package temporal

import (
	"social-insights-backend/pkg/entity/model"
)

// Classify attaches the day-of-week and period-of-day buckets to every post.
// It is a pure function of each post's timestamp: day names come from the
// canonical vocabulary in the model package, never from the host locale.
func Classify(posts []*model.Post) []*model.ClassifiedPost {
	classified := make([]*model.ClassifiedPost, 0, len(posts))
	for _, post := range posts {
		classified = append(classified, &model.ClassifiedPost{
			Post:      post,
			DayOfWeek: model.WeekdayName(post.Timestamp),
			Period:    model.PeriodOfHour(post.Timestamp.Hour()),
		})
	}
	return classified
}
