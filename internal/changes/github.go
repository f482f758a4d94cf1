package changes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v68/github"

	"github.com/novog93/split-changes-into-dirs/internal/action"
)

// NewGitHubClient returns an authenticated client. apiURL overrides the REST
// endpoint (GITHUB_API_URL on GitHub Enterprise Server); empty keeps the
// public API.
func NewGitHubClient(token, apiURL string) (*github.Client, error) {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	client.UserAgent = "split-changes-into-dirs"

	apiURL = strings.TrimSpace(apiURL)
	if apiURL == "" {
		return client, nil
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", apiURL, err)
	}
	client.BaseURL = u
	return client, nil
}

// GitHub lists files through the compare and git tree endpoints.
type GitHub struct {
	Client *github.Client
	Owner  string
	Repo   string
	// RequireHeadAheadOfBase rejects comparisons GitHub does not report as
	// "ahead".
	RequireHeadAheadOfBase bool
}

// NewGitHub creates a GitHub lister for owner/repo.
func NewGitHub(client *github.Client, owner, repo string, requireAhead bool) *GitHub {
	return &GitHub{
		Client:                 client,
		Owner:                  owner,
		Repo:                   repo,
		RequireHeadAheadOfBase: requireAhead,
	}
}

func (g *GitHub) AddedOrModified(ctx context.Context, base, head string) ([]string, error) {
	action.Info("Base commit: %s", base)
	action.Info("Head commit: %s", head)

	cmp, resp, err := g.Client.Repositories.CompareCommits(ctx, g.Owner, g.Repo, base, head, nil)
	if err := checkResponse("compare commits", resp, err); err != nil {
		return nil, err
	}

	if g.RequireHeadAheadOfBase && cmp.GetStatus() != "ahead" {
		return nil, fmt.Errorf("%w (status %q)", ErrNotAhead, cmp.GetStatus())
	}

	files := make([]string, 0, len(cmp.Files))
	for _, f := range cmp.Files {
		switch f.GetStatus() {
		case "added", "modified":
			files = append(files, f.GetFilename())
		}
	}
	return files, nil
}

func (g *GitHub) All(ctx context.Context, commit string) ([]string, error) {
	action.Info("Commit SHA: %s", commit)

	tree, resp, err := g.Client.Git.GetTree(ctx, g.Owner, g.Repo, commit, true)
	if err := checkResponse("get tree", resp, err); err != nil {
		return nil, err
	}
	if tree.GetTruncated() {
		action.Warning("The git tree for %s was truncated by the GitHub API; some directories may be missing.", commit)
	}

	files := make([]string, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		if e.GetType() == "blob" && e.GetPath() != "" {
			files = append(files, e.GetPath())
		}
	}
	return files, nil
}

func checkResponse(op string, resp *github.Response, err error) error {
	status := 0
	if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}
	if err != nil {
		return &APIError{Op: op, StatusCode: status, Err: err}
	}
	if status != http.StatusOK {
		return &APIError{Op: op, StatusCode: status}
	}
	return nil
}
