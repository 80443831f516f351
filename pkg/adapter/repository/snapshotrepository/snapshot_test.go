package snapshotrepository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"social-insights-backend/pkg/adapter/repository/snapshotrepository"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSnapshotRepository(t *testing.T) {
	dir := t.TempDir()
	profilePath := writeFile(t, dir, "profiles.json", `[{"id":"1"}]`)
	postPath := writeFile(t, dir, "posts.json", `[]`)
	searchPath := writeFile(t, dir, "search.json", `{"organic":[]}`)

	repo := snapshotrepository.NewSnapshotRepository(profilePath, postPath, searchPath)
	ctx := context.Background()

	raw, source, err := repo.Profiles(ctx)
	require.NoError(t, err)
	require.Equal(t, "profiles.json", source)
	require.JSONEq(t, `[{"id":"1"}]`, string(raw))

	raw, source, err = repo.Posts(ctx)
	require.NoError(t, err)
	require.Equal(t, "posts.json", source)
	require.JSONEq(t, `[]`, string(raw))

	raw, source, err = repo.SearchResults(ctx)
	require.NoError(t, err)
	require.Equal(t, "search.json", source)
	require.JSONEq(t, `{"organic":[]}`, string(raw))
}

func TestSnapshotRepository_NoSearchConfigured(t *testing.T) {
	dir := t.TempDir()
	profilePath := writeFile(t, dir, "profiles.json", `[]`)
	postPath := writeFile(t, dir, "posts.json", `[]`)

	repo := snapshotrepository.NewSnapshotRepository(profilePath, postPath, "")

	raw, source, err := repo.SearchResults(context.Background())
	require.NoError(t, err)
	require.Nil(t, raw)
	require.Empty(t, source)
}

func TestSnapshotRepository_MissingFile(t *testing.T) {
	repo := snapshotrepository.NewSnapshotRepository("/nonexistent/profiles.json", "/nonexistent/posts.json", "")

	_, _, err := repo.Profiles(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "profiles.json")
}

func TestSnapshotRepository_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	profilePath := writeFile(t, dir, "profiles.json", `[]`)
	postPath := writeFile(t, dir, "posts.json", `[]`)

	repo := snapshotrepository.NewSnapshotRepository(profilePath, postPath, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := repo.Profiles(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
