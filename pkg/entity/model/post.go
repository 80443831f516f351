package model

import "time"

// PostType is the content format of a post. The set is open: snapshots may
// carry formats we have never seen, so PostType stays a plain string with
// constants for the common ones.
type PostType = string

const (
	PostTypeImage   PostType = "Image"
	PostTypeVideo   PostType = "Video"
	PostTypeSidecar PostType = "Sidecar"
)

// Post is one published item. TotalEngagement is derived once at load time
// and never recomputed downstream.
type Post struct {
	ID              string    `json:"id"`
	ShortCode       string    `json:"shortCode"`
	OwnerID         string    `json:"ownerId"`
	OwnerUsername   string    `json:"ownerUsername"`
	Timestamp       time.Time `json:"timestamp"`
	Type            PostType  `json:"type"`
	LikesCount      int       `json:"likesCount"`
	CommentsCount   int       `json:"commentsCount"`
	Hashtags        []string  `json:"hashtags"`
	Caption         *string   `json:"caption"`
	TotalEngagement int       `json:"totalEngagement"`
}

// OwnerKey returns the grouping key for this post: the owner id when present,
// otherwise the owner username.
func (p *Post) OwnerKey() string {
	if p.OwnerID != "" {
		return p.OwnerID
	}
	return p.OwnerUsername
}
