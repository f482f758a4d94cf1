// Package event turns the GitHub Actions trigger context into the commit
// range whose changes should be listed.
package event

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v68/github"
	"github.com/sethvargo/go-githubactions"
)

// Supported event names.
const (
	PullRequest      = "pull_request"
	Push             = "push"
	WorkflowDispatch = "workflow_dispatch"
)

// ErrMissingHeadCommit is returned when the event does not name a head commit.
var ErrMissingHeadCommit = errors.New("no HEAD commit was found to compare to")

// UnsupportedEventError is returned for triggers other than pull requests,
// pushes and manual dispatches.
type UnsupportedEventError struct {
	Event string
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("this action only supports pull requests, pushes and workflow_dispatch, %s events are not supported", e.Event)
}

// Context describes the workflow run that triggered the action. Only the
// payload matching EventName is decoded.
type Context struct {
	EventName   string
	SHA         string
	Owner       string
	Repo        string
	Push        *github.PushEvent
	PullRequest *github.PullRequestEvent
}

// LoadContext builds a Context from the runner environment read through
// getenv. The event payload is read from GITHUB_EVENT_PATH when it is set.
func LoadContext(getenv func(string) string) (*Context, error) {
	gc, err := githubactions.New(githubactions.WithGetenv(getenv)).Context()
	if err != nil {
		return nil, fmt.Errorf("load workflow context: %w", err)
	}
	return FromActions(gc)
}

// FromActions converts the toolkit's workflow context, decoding the push or
// pull request payload into go-github event types.
func FromActions(gc *githubactions.GitHubContext) (*Context, error) {
	c := &Context{
		EventName: strings.TrimSpace(gc.EventName),
		SHA:       strings.TrimSpace(gc.SHA),
	}
	c.Owner, c.Repo = SplitRepository(gc.Repository)
	if len(gc.Event) == 0 {
		return c, nil
	}

	raw, err := json.Marshal(gc.Event)
	if err != nil {
		return nil, fmt.Errorf("encode event payload: %w", err)
	}
	switch c.EventName {
	case PullRequest:
		c.PullRequest = new(github.PullRequestEvent)
		err = json.Unmarshal(raw, c.PullRequest)
	case Push:
		c.Push = new(github.PushEvent)
		err = json.Unmarshal(raw, c.Push)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", c.EventName, err)
	}
	return c, nil
}

// SplitRepository splits "owner/repo". Malformed values yield empty strings.
func SplitRepository(full string) (owner, repo string) {
	owner, repo, ok := strings.Cut(strings.TrimSpace(full), "/")
	if !ok || owner == "" || repo == "" {
		return "", ""
	}
	return owner, repo
}

// Range is the span of history to inspect. When All is set every file at Head
// is listed and Base is ignored.
type Range struct {
	Base string
	Head string
	All  bool
}

// Resolve picks base and head commits for the triggering event. getAll forces
// listing every file at head.
func Resolve(c *Context, getAll bool) (Range, error) {
	var r Range
	switch c.EventName {
	case PullRequest:
		pr := c.PullRequest.GetPullRequest()
		r.Base = pr.GetBase().GetSHA()
		r.Head = pr.GetHead().GetSHA()
	case Push:
		r.Base = c.Push.GetBefore()
		r.Head = c.Push.GetAfter()
	case WorkflowDispatch:
		r.All = true
		r.Head = c.SHA
	default:
		return Range{}, &UnsupportedEventError{Event: c.EventName}
	}

	if r.Head == "" {
		return Range{}, ErrMissingHeadCommit
	}
	if getAll {
		r.All = true
	}
	return r, nil
}
