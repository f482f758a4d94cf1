// Package changes lists the files touched between two commits, or every file
// at a commit, either through the GitHub REST API or a local git checkout.
package changes

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotAhead is returned when head is required to be strictly ahead of base
// and is not.
var ErrNotAhead = errors.New("the head commit is not ahead of the base commit")

// Lister lists repository files.
type Lister interface {
	// AddedOrModified returns files added or modified between base and head.
	// Renamed and removed files are not included.
	AddedOrModified(ctx context.Context, base, head string) ([]string, error)
	// All returns every file in the tree at commit.
	All(ctx context.Context, commit string) ([]string, error)
}

// APIError reports a failed or unexpected hosting API response.
type APIError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: the GitHub API returned %d, expected 200", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": unexpected GitHub API response"
	}
}

func (e *APIError) Unwrap() error { return e.Err }
