package model

// Profile is one social account as captured in a raw snapshot.
// Profiles are immutable after load.
type Profile struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Biography      string `json:"biography"`
	ExternalURL    string `json:"externalUrl"`
	FollowersCount int    `json:"followersCount"`
	FollowsCount   int    `json:"followsCount"`
	PostsCount     int    `json:"postsCount"`
}
