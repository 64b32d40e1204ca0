package timeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cosmicui/internal/config"
)

func TestFromConfigParsesDates(t *testing.T) {
	t.Parallel()

	entries, err := FromConfig([]config.TimelineEntry{
		{Date: "2024-06", Title: "Senior Frontend Engineer"},
		{Date: "2022-03-15", Title: "Full Stack Developer", Description: "APIs"},
		{Date: "2019", Title: "Intern"},
	})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), entries[0].Date)
	require.Equal(t, "Mar 2022", entries[1].Label())
	require.Equal(t, "APIs", entries[1].Description)
	require.Equal(t, "config", entries[2].Source)
}

func TestFromConfigRejectsBadDate(t *testing.T) {
	t.Parallel()

	_, err := FromConfig([]config.TimelineEntry{{Date: "June 2024", Title: "x"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "timeline entry 0")
}

func TestMergeSortsNewestFirstAndTruncates(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month) time.Time { return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC) }
	a := []Entry{{Title: "old", Date: day(2019, 1)}, {Title: "new", Date: day(2024, 1)}}
	b := []Entry{{Title: "mid", Date: day(2021, 5)}, {Title: "mid-twin", Date: day(2021, 5)}}

	merged := Merge(0, a, b)
	titles := make([]string, 0, len(merged))
	for _, e := range merged {
		titles = append(titles, e.Title)
	}
	require.Equal(t, []string{"new", "mid", "mid-twin", "old"}, titles)

	require.Len(t, Merge(2, a, b), 2)
	require.Empty(t, Merge(3))
}

func TestEntryLabelWithoutDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "—", Entry{Title: "x"}.Label())
}

func TestFromGitReadsTags(t *testing.T) {
	t.Parallel()

	dir := initTaggedRepo(t)

	entries, err := FromGit(context.Background(), dir, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "v1.0.0", entries[0].Title)
	require.Equal(t, "First stable release", entries[0].Description)
	require.Equal(t, "git", entries[0].Source)

	require.Equal(t, "v0.1.0", entries[1].Title)
	require.Equal(t, "initial", entries[1].Description)

	limited, err := FromGit(context.Background(), dir, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, "v1.0.0", limited[0].Title)
}

func TestFromGitHonoursCancellation(t *testing.T) {
	t.Parallel()

	dir := initTaggedRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FromGit(ctx, dir, 10)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFromGitMissingRepository(t *testing.T) {
	t.Parallel()

	_, err := FromGit(context.Background(), t.TempDir(), 10)
	require.Error(t, err)
	require.ErrorIs(t, err, git.ErrRepositoryNotExists)
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, "subject", firstLine("  subject\n\nbody\n"))
	require.Equal(t, "single", firstLine("single\n"))
	require.Equal(t, "", firstLine(""))
}

// initTaggedRepo creates a repository with a lightweight tag on the first
// commit and a newer annotated tag on the second.
func initTaggedRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	base := time.Date(2023, time.January, 10, 12, 0, 0, 0, time.UTC)
	commit := func(name, content, message string, when time.Time) plumbing.Hash {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
		_, err := wt.Add(name)
		require.NoError(t, err)
		hash, err := wt.Commit(message, &git.CommitOptions{
			Author: &object.Signature{Name: "CosmicUI", Email: "cosmic@example.com", When: when},
		})
		require.NoError(t, err)
		return hash
	}

	first := commit("README.md", "hello", "initial", base)
	_, err = repo.CreateTag("v0.1.0", first, nil)
	require.NoError(t, err)

	second := commit("CHANGELOG.md", "v1", "release prep", base.AddDate(1, 0, 0))
	_, err = repo.CreateTag("v1.0.0", second, &git.CreateTagOptions{
		Tagger:  &object.Signature{Name: "CosmicUI", Email: "cosmic@example.com", When: base.AddDate(1, 0, 1)},
		Message: "First stable release\n\nNotes",
	})
	require.NoError(t, err)

	return dir
}
