package aggregator

import (
	"math"
	"social-insights-backend/pkg/entity/model"
	"social-insights-backend/pkg/util/datetime"
	"time"

	"go.uber.org/zap"
)

// Aggregator joins the post table onto the profile table, one enriched row
// per profile. It never mutates its inputs; concurrent runs over the same
// tables are safe.
type Aggregator struct {
	logger *zap.SugaredLogger
}

// NewAggregator creates an Aggregator. A nil logger disables anomaly logging.
func NewAggregator(logger *zap.SugaredLogger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Aggregator{logger: logger}
}

// postGroup accumulates per-owner aggregates during the grouping pass.
type postGroup struct {
	likesSum      int
	commentsSum   int
	postCount     int
	minTs         time.Time
	maxTs         time.Time
	usernameFreqs map[string]int
	usernameOrder []string
}

// Aggregate groups posts by owner and left-joins the aggregates onto the
// profiles. Every input profile appears exactly once in the output, in input
// order. Profiles without posts keep zero sums, nil timestamps and zero
// recency/frequency; EngagementRate is NaN when followersCount is zero.
func (a *Aggregator) Aggregate(profiles []*model.Profile, posts []*model.Post) []*model.EnrichedProfile {
	groups := a.groupPosts(posts)

	// Resolve each profile's group before computing recency: the recency
	// denominator is anchored at the batch-wide newest post among matched
	// profiles and is fixed for the whole batch.
	matched := make([]*postGroup, len(profiles))
	var globalMax time.Time
	var haveGlobalMax bool
	for i, p := range profiles {
		g := groups[p.ID]
		if g == nil {
			g = groups[p.Username]
		}
		matched[i] = g
		if g != nil && (!haveGlobalMax || g.maxTs.After(globalMax)) {
			globalMax = g.maxTs
			haveGlobalMax = true
		}
	}

	enriched := make([]*model.EnrichedProfile, 0, len(profiles))
	for i, p := range profiles {
		row := &model.EnrichedProfile{Profile: *p}
		g := matched[i]
		if g == nil {
			// Left join: no posts, no measurement, zero activity.
			row.EngagementRate = engagementRate(0, p.FollowersCount)
			enriched = append(enriched, row)
			continue
		}

		minTs, maxTs := g.minTs, g.maxTs
		row.LikesSum = g.likesSum
		row.CommentsSum = g.commentsSum
		row.PostCount = g.postCount
		row.MinTimestamp = &minTs
		row.MaxTimestamp = &maxTs
		row.TotalEngagement = g.likesSum + g.commentsSum
		row.EngagementRate = engagementRate(row.TotalEngagement, p.FollowersCount)
		row.Recency = 1 / float64(datetime.DaysBetween(globalMax, maxTs)+1)
		row.Frequency = float64(g.postCount) / float64(datetime.DaysBetween(maxTs, minTs)+1)
		enriched = append(enriched, row)
	}

	return enriched
}

func (a *Aggregator) groupPosts(posts []*model.Post) map[string]*postGroup {
	groups := make(map[string]*postGroup)
	for _, post := range posts {
		key := post.OwnerKey()
		g := groups[key]
		if g == nil {
			g = &postGroup{
				minTs:         post.Timestamp,
				maxTs:         post.Timestamp,
				usernameFreqs: make(map[string]int),
			}
			groups[key] = g
		}
		g.likesSum += post.LikesCount
		g.commentsSum += post.CommentsCount
		g.postCount++
		if post.Timestamp.Before(g.minTs) {
			g.minTs = post.Timestamp
		}
		if post.Timestamp.After(g.maxTs) {
			g.maxTs = post.Timestamp
		}
		if _, seen := g.usernameFreqs[post.OwnerUsername]; !seen {
			g.usernameOrder = append(g.usernameOrder, post.OwnerUsername)
		}
		g.usernameFreqs[post.OwnerUsername]++
	}

	// Posts sharing an owner id but disagreeing on the username are data
	// drift, not a fatal condition: keep the most frequent username and
	// log the anomaly.
	for key, g := range groups {
		if len(g.usernameFreqs) > 1 {
			a.logger.Warnw(
				"conflicting owner usernames in post group",
				"ownerKey", key,
				"variants", len(g.usernameFreqs),
				"resolved", mostFrequentUsername(g),
			)
		}
	}

	return groups
}

// mostFrequentUsername picks the group's dominant username; ties keep the
// first-seen one.
func mostFrequentUsername(g *postGroup) string {
	winner := ""
	best := -1
	for _, username := range g.usernameOrder {
		if n := g.usernameFreqs[username]; n > best {
			winner = username
			best = n
		}
	}
	return winner
}

func engagementRate(totalEngagement, followers int) float64 {
	if followers == 0 {
		return math.NaN()
	}
	return float64(totalEngagement) / float64(followers)
}
