package repository

import (
	"context"
)

//go:generate mockgen -source=snapshot.go -destination=./mocks/snapshot_repository_mock.go -package=mocks

// Snapshot supplies the raw JSON collections of one extraction. The pipeline
// never reaches into ambient file state; everything it reads comes through
// this interface.
type Snapshot interface {
	// Profiles returns the raw profile collection and its source name.
	Profiles(ctx context.Context) ([]byte, string, error)
	// Posts returns the raw post collection and its source name.
	Posts(ctx context.Context) ([]byte, string, error)
	// SearchResults returns the raw search payload and its source name.
	// A snapshot without search data returns (nil, "", nil).
	SearchResults(ctx context.Context) ([]byte, string, error)
}
