package changes

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// CommandRunner defines the interface for running commands and looking up paths.
type CommandRunner interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// RealCommandRunner implements CommandRunner using os/exec.
type RealCommandRunner struct{}

func (r *RealCommandRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run returns the command's stdout. A non-zero exit carries stderr in the error.
func (r *RealCommandRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return out, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return out, err
}

// Git lists files from a local checkout. The commits must be present in the
// clone, so shallow checkouts need fetch-depth: 0.
type Git struct {
	Cmd CommandRunner
	Dir string
	// RequireHeadAheadOfBase rejects ranges where head is behind base or
	// identical to it.
	RequireHeadAheadOfBase bool
}

// NewGit creates a Git lister for the checkout at dir.
func NewGit(dir string, requireAhead bool) *Git {
	if dir == "" {
		dir = "."
	}
	return &Git{
		Cmd:                    &RealCommandRunner{},
		Dir:                    dir,
		RequireHeadAheadOfBase: requireAhead,
	}
}

func (g *Git) AddedOrModified(ctx context.Context, base, head string) ([]string, error) {
	if err := g.ensureGit(); err != nil {
		return nil, err
	}

	if g.RequireHeadAheadOfBase {
		behind, ahead, err := g.aheadBehind(ctx, base, head)
		if err != nil {
			return nil, err
		}
		if behind != 0 || ahead == 0 {
			return nil, fmt.Errorf("%w (%d ahead, %d behind)", ErrNotAhead, ahead, behind)
		}
	}

	rangeSpec := base + "..." + head
	out, err := g.git(ctx, "diff", "-z", "--name-only", "--find-renames", "--diff-filter=AM", rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("git diff %s failed (is the history fetched? use fetch-depth: 0 with actions/checkout): %w", rangeSpec, err)
	}
	return splitPaths(out), nil
}

func (g *Git) All(ctx context.Context, commit string) ([]string, error) {
	if err := g.ensureGit(); err != nil {
		return nil, err
	}

	out, err := g.git(ctx, "ls-tree", "-r", "-z", commit)
	if err != nil {
		return nil, fmt.Errorf("git ls-tree %s failed: %w", commit, err)
	}

	// <mode> SP <type> SP <object> TAB <path>
	var files []string
	for _, line := range splitPaths(out) {
		meta, path, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		fields := strings.Fields(meta)
		if len(fields) >= 2 && fields[1] == "blob" {
			files = append(files, path)
		}
	}
	if files == nil {
		files = []string{}
	}
	return files, nil
}

func (g *Git) ensureGit() error {
	if _, err := g.Cmd.LookPath("git"); err != nil {
		return fmt.Errorf("git is not available: %w", err)
	}
	return nil
}

// aheadBehind counts commits only in base (behind) and only in head (ahead).
func (g *Git) aheadBehind(ctx context.Context, base, head string) (behind, ahead int, err error) {
	out, err := g.git(ctx, "rev-list", "--left-right", "--count", base+"..."+head)
	if err != nil {
		return 0, 0, fmt.Errorf("git rev-list %s...%s failed: %w", base, head, err)
	}
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected git rev-list output %q", strings.TrimSpace(string(out)))
	}
	if behind, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, fmt.Errorf("parse git rev-list output: %w", err)
	}
	if ahead, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("parse git rev-list output: %w", err)
	}
	return behind, ahead, nil
}

func (g *Git) git(ctx context.Context, args ...string) ([]byte, error) {
	// quotepath=off keeps non-ASCII paths unescaped; safe.directory avoids the
	// "dubious ownership" refusal when the workspace is mounted into a container.
	prefix := []string{"-c", "core.quotepath=off", "-c", "safe.directory=*"}
	return g.Cmd.Run(ctx, g.Dir, "git", append(prefix, args...)...)
}

// splitPaths splits -z output. Paths are kept byte for byte.
func splitPaths(out []byte) []string {
	files := []string{}
	for _, p := range strings.Split(string(out), "\x00") {
		if p != "" {
			files = append(files, p)
		}
	}
	return files
}
