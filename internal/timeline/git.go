package timeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// FromGit reads the tags of the repository at path and returns one entry per
// tag, newest first, truncated to limit. Annotated tags use the tagger date and
// message; lightweight tags use the tagged commit.
func FromGit(ctx context.Context, path string, limit int) ([]Entry, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}

	tags, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags in %s: %w", path, err)
	}
	defer tags.Close()

	var entries []Entry
	err = tags.ForEach(func(ref *plumbing.Reference) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		entry, err := entryForTag(repo, ref)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return Merge(limit, entries), nil
}

func entryForTag(repo *git.Repository, ref *plumbing.Reference) (Entry, error) {
	name := ref.Name().Short()

	tag, err := repo.TagObject(ref.Hash())
	switch {
	case err == nil:
		return Entry{
			Date:        tag.Tagger.When,
			Title:       name,
			Description: firstLine(tag.Message),
			Source:      "git",
		}, nil
	case errors.Is(err, plumbing.ErrObjectNotFound):
		commit, err := repo.CommitObject(ref.Hash())
		if err != nil {
			return Entry{}, fmt.Errorf("resolve tag %s: %w", name, err)
		}
		return Entry{
			Date:        commit.Committer.When,
			Title:       name,
			Description: firstLine(commit.Message),
			Source:      "git",
		}, nil
	default:
		return Entry{}, fmt.Errorf("read tag %s: %w", name, err)
	}
}

func firstLine(message string) string {
	message = strings.TrimSpace(message)
	if idx := strings.IndexByte(message, '\n'); idx >= 0 {
		return strings.TrimSpace(message[:idx])
	}
	return message
}
