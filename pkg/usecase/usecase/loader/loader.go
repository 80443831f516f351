package loader

import (
	"encoding/json"
	"regexp"
	"social-insights-backend/pkg/entity/model"
	"social-insights-backend/pkg/util/datetime"

	"github.com/hashicorp/go-multierror"
)

// The loader is the only place raw snapshot JSON is validated. Any record
// with a missing or malformed required field fails the whole load: the
// downstream join assumes a complete table, so a silently skipped record
// would corrupt every derived metric. All record errors of one file are
// collected so a single pass reports everything that is wrong.

type rawProfile struct {
	ID             *string `json:"id"`
	Username       *string `json:"username"`
	FullName       string  `json:"fullName"`
	Biography      string  `json:"biography"`
	ExternalURL    string  `json:"externalUrl"`
	FollowersCount *int    `json:"followersCount"`
	FollowsCount   *int    `json:"followsCount"`
	PostsCount     *int    `json:"postsCount"`
}

type rawPost struct {
	ID            *string  `json:"id"`
	ShortCode     string   `json:"shortCode"`
	OwnerID       *string  `json:"ownerId"`
	OwnerUsername *string  `json:"ownerUsername"`
	Timestamp     *string  `json:"timestamp"`
	Type          *string  `json:"type"`
	LikesCount    *int     `json:"likesCount"`
	CommentsCount *int     `json:"commentsCount"`
	Hashtags      []string `json:"hashtags"`
	Caption       *string  `json:"caption"`
}

// LoadProfiles parses a raw profile collection. source names the input in
// errors.
func LoadProfiles(source string, raw []byte) ([]*model.Profile, error) {
	var records []rawProfile
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &model.ParseError{Source: source, Index: -1, Reason: "malformed profile collection", Err: err}
	}

	var loadErr *multierror.Error
	profiles := make([]*model.Profile, 0, len(records))

	for i, rec := range records {
		if err := requireProfileFields(source, i, rec); err != nil {
			loadErr = multierror.Append(loadErr, err)
			continue
		}
		profiles = append(profiles, &model.Profile{
			ID:             *rec.ID,
			Username:       *rec.Username,
			FullName:       rec.FullName,
			Biography:      rec.Biography,
			ExternalURL:    rec.ExternalURL,
			FollowersCount: *rec.FollowersCount,
			FollowsCount:   *rec.FollowsCount,
			PostsCount:     *rec.PostsCount,
		})
	}

	if err := loadErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return profiles, nil
}

// LoadPosts parses a raw post collection, eagerly parsing timestamps and
// deriving TotalEngagement.
func LoadPosts(source string, raw []byte) ([]*model.Post, error) {
	var records []rawPost
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &model.ParseError{Source: source, Index: -1, Reason: "malformed post collection", Err: err}
	}

	var loadErr *multierror.Error
	posts := make([]*model.Post, 0, len(records))

	for i, rec := range records {
		if err := requirePostFields(source, i, rec); err != nil {
			loadErr = multierror.Append(loadErr, err)
			continue
		}

		ts, err := datetime.ParseTimestamp(*rec.Timestamp)
		if err != nil {
			loadErr = multierror.Append(loadErr, &model.ParseError{
				Source: source,
				Index:  i,
				Reason: "unparseable timestamp",
				Err:    err,
			})
			continue
		}

		post := &model.Post{
			ID:            *rec.ID,
			ShortCode:     rec.ShortCode,
			Timestamp:     ts,
			Type:          *rec.Type,
			LikesCount:    *rec.LikesCount,
			CommentsCount: *rec.CommentsCount,
			Hashtags:      rec.Hashtags,
			Caption:       rec.Caption,
		}
		if rec.OwnerID != nil {
			post.OwnerID = *rec.OwnerID
		}
		if rec.OwnerUsername != nil {
			post.OwnerUsername = *rec.OwnerUsername
		}
		post.TotalEngagement = post.LikesCount + post.CommentsCount
		posts = append(posts, post)
	}

	if err := loadErr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return posts, nil
}

func requireProfileFields(source string, index int, rec rawProfile) error {
	switch {
	case rec.ID == nil || *rec.ID == "":
		return &model.SchemaError{Source: source, Index: index, Field: "id"}
	case rec.Username == nil || *rec.Username == "":
		return &model.SchemaError{Source: source, Index: index, Field: "username"}
	case rec.FollowersCount == nil:
		return &model.SchemaError{Source: source, Index: index, Field: "followersCount"}
	case rec.FollowsCount == nil:
		return &model.SchemaError{Source: source, Index: index, Field: "followsCount"}
	case rec.PostsCount == nil:
		return &model.SchemaError{Source: source, Index: index, Field: "postsCount"}
	case *rec.FollowersCount < 0:
		return &model.SchemaError{Source: source, Index: index, Field: "followersCount", Reason: "must be non-negative"}
	case *rec.FollowsCount < 0:
		return &model.SchemaError{Source: source, Index: index, Field: "followsCount", Reason: "must be non-negative"}
	case *rec.PostsCount < 0:
		return &model.SchemaError{Source: source, Index: index, Field: "postsCount", Reason: "must be non-negative"}
	}
	return nil
}

func requirePostFields(source string, index int, rec rawPost) error {
	switch {
	case rec.ID == nil || *rec.ID == "":
		return &model.SchemaError{Source: source, Index: index, Field: "id"}
	case rec.Timestamp == nil || *rec.Timestamp == "":
		return &model.SchemaError{Source: source, Index: index, Field: "timestamp"}
	case rec.Type == nil || *rec.Type == "":
		return &model.SchemaError{Source: source, Index: index, Field: "type"}
	case rec.LikesCount == nil:
		return &model.SchemaError{Source: source, Index: index, Field: "likesCount"}
	case rec.CommentsCount == nil:
		return &model.SchemaError{Source: source, Index: index, Field: "commentsCount"}
	case *rec.LikesCount < 0:
		return &model.SchemaError{Source: source, Index: index, Field: "likesCount", Reason: "must be non-negative"}
	case *rec.CommentsCount < 0:
		return &model.SchemaError{Source: source, Index: index, Field: "commentsCount", Reason: "must be non-negative"}
	}
	// A post must be attributable to an owner one way or the other.
	if (rec.OwnerID == nil || *rec.OwnerID == "") && (rec.OwnerUsername == nil || *rec.OwnerUsername == "") {
		return &model.SchemaError{Source: source, Index: index, Field: "ownerId", Reason: "either ownerId or ownerUsername is required"}
	}
	return nil
}

type rawSearchPayload struct {
	Organic []rawOrganicResult `json:"organic"`
}

type rawOrganicResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

var profileURLPattern = regexp.MustCompile(`instagram\.com/([a-zA-Z0-9_\.]+)/?`)

// Path segments under instagram.com that are never usernames.
var excludedPathSegments = map[string]struct{}{
	"tv":        {},
	"explore":   {},
	"reels":     {},
	"p":         {},
	"locations": {},
}

// LoadSearchResults parses a search-engine payload into a flat table of
// candidate profile URLs. Results whose URL does not lead to a profile are
// skipped; a malformed top-level payload is a ParseError naming the source.
func LoadSearchResults(source string, raw []byte) ([]*model.SearchResult, error) {
	var payload rawSearchPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &model.ParseError{Source: source, Index: -1, Reason: "malformed search payload", Err: err}
	}

	results := make([]*model.SearchResult, 0, len(payload.Organic))
	for _, rec := range payload.Organic {
		username, ok := UsernameFromURL(rec.URL)
		if !ok {
			continue
		}
		results = append(results, &model.SearchResult{
			Position: rec.Position,
			Title:    rec.Title,
			URL:      rec.URL,
			Username: username,
		})
	}
	return results, nil
}

// UsernameFromURL extracts a profile username from an Instagram URL. It
// reports false for URLs whose first path segment is not a username.
func UsernameFromURL(url string) (string, bool) {
	m := profileURLPattern.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	if _, excluded := excludedPathSegments[m[1]]; excluded {
		return "", false
	}
	return m[1], true
}
