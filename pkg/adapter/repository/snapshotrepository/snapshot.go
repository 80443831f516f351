package snapshotrepository

import (
	"context"
	"os"
	"path/filepath"
	"social-insights-backend/pkg/usecase/repository"

	"github.com/pkg/errors"
)

type snapshotRepository struct {
	profilePath string
	postPath    string
	searchPath  string
}

// NewSnapshotRepository creates a filesystem-backed snapshot over the raw
// JSON files of one extraction. searchPath may be empty when no search
// payload was collected.
func NewSnapshotRepository(profilePath, postPath, searchPath string) repository.Snapshot {
	return &snapshotRepository{
		profilePath: profilePath,
		postPath:    postPath,
		searchPath:  searchPath,
	}
}

func (r *snapshotRepository) Profiles(ctx context.Context) ([]byte, string, error) {
	return r.read(ctx, r.profilePath)
}

func (r *snapshotRepository) Posts(ctx context.Context) ([]byte, string, error) {
	return r.read(ctx, r.postPath)
}

func (r *snapshotRepository) SearchResults(ctx context.Context) ([]byte, string, error) {
	if r.searchPath == "" {
		return nil, "", nil
	}
	return r.read(ctx, r.searchPath)
}

func (r *snapshotRepository) read(ctx context.Context, path string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	source := filepath.Base(path)
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, source, errors.Wrapf(err, "failed to read snapshot file %s", path)
	}
	return raw, source, nil
}
