package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/novog93/split-changes-into-dirs/internal/action"
	"github.com/novog93/split-changes-into-dirs/internal/changes"
	"github.com/novog93/split-changes-into-dirs/internal/dirs"
	"github.com/novog93/split-changes-into-dirs/internal/event"
	"github.com/novog93/split-changes-into-dirs/internal/exclusion"
)

// ListerFactory builds the change lister for a run.
type ListerFactory func(in Inputs, ec *event.Context) (changes.Lister, error)

// EventLoader reads the trigger context. It is only called when changes have
// to be listed.
type EventLoader func() (*event.Context, error)

// Run computes the changed directories. Override directories skip the event
// and the lister entirely.
func Run(ctx context.Context, in Inputs, loadEvent EventLoader, newLister ListerFactory) ([]string, error) {
	policy := exclusion.MissingAsEmpty
	if in.ConfigRequired {
		policy = exclusion.MissingAsError
	}
	cfg, err := exclusion.Load(in.ConfigFile, policy)
	if err != nil {
		return nil, err
	}
	logJSON("Configuration", cfg)

	var found []string
	if len(in.OverrideDirectories) > 0 {
		found = in.OverrideDirectories
	} else {
		files, err := listFiles(ctx, in, loadEvent, newLister)
		if err != nil {
			return nil, err
		}
		found = dirs.Group(files, in.BaseFolders, in.Depth, in.IncludeParent)
	}

	directories := exclusion.Filter(found, cfg.ExcludedDirectories)
	logJSON("Directories", directories)
	return directories, nil
}

func listFiles(ctx context.Context, in Inputs, loadEvent EventLoader, newLister ListerFactory) ([]string, error) {
	ec, err := loadEvent()
	if err != nil {
		return nil, err
	}
	if ec == nil {
		return nil, errors.New("no event context available")
	}
	r, err := event.Resolve(ec, in.GetAllDirectories)
	if err != nil {
		return nil, err
	}

	lister, err := newLister(in, ec)
	if err != nil {
		return nil, err
	}

	action.Group("Listing files")
	defer action.EndGroup()

	var files []string
	if r.All {
		files, err = lister.All(ctx, r.Head)
	} else {
		files, err = lister.AddedOrModified(ctx, r.Base, r.Head)
	}
	if errors.Is(err, changes.ErrNotAhead) {
		return nil, fmt.Errorf("%s event: %w", ec.EventName, err)
	}
	if err != nil {
		return nil, err
	}
	action.Debug("%d files listed", len(files))
	return files, nil
}

// newLister picks the change source named by the inputs.
func newLister(in Inputs, ec *event.Context) (changes.Lister, error) {
	if in.Source == SourceGit {
		return changes.NewGit(in.WorkingDirectory, in.RequireHeadAheadOfBase), nil
	}

	owner, repo := ec.Owner, ec.Repo
	if in.Repository != "" {
		owner, repo = event.SplitRepository(in.Repository)
	}
	if owner == "" || repo == "" {
		return nil, errors.New("repository is not set (expected owner/repo in the repository input or GITHUB_REPOSITORY)")
	}

	client, err := changes.NewGitHubClient(in.Token, in.APIURL)
	if err != nil {
		return nil, err
	}
	return changes.NewGitHub(client, owner, repo, in.RequireHeadAheadOfBase), nil
}

func logJSON(label string, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		action.Warning("could not encode %s: %v", label, err)
		return
	}
	action.Info("%s: %s", label, b)
}
