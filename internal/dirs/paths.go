package dirs

import (
	"path"
	"strings"
)

// NormalizeDir returns a slash-separated, lexically cleaned directory path
// without leading "./" or surrounding slashes. The repository root is ".".
func NormalizeDir(dir string) string {
	d := strings.TrimSpace(dir)
	if d == "" {
		return "."
	}
	d = strings.ReplaceAll(d, "\\", "/")
	d = strings.TrimPrefix(d, "./")
	d = strings.Trim(d, "/")
	if d == "" {
		return "."
	}
	return path.Clean(d)
}

// NormalizePath is NormalizeDir for file paths: an empty path stays empty.
func NormalizePath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.ReplaceAll(p, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	return path.Clean(p)
}

// Contains reports whether file, made relative to parent, stays inside it.
func Contains(parent, file string) bool {
	parent = NormalizeDir(parent)
	file = NormalizePath(file)

	if parent == "." {
		return file != ".." && !strings.HasPrefix(file, "../")
	}
	if file == "" {
		return false
	}
	return file == parent || strings.HasPrefix(file, parent+"/")
}

// RelativeDir returns the directory containing file, relative to parent.
// Files directly inside parent (or equal to it) yield "".
func RelativeDir(parent, file string) string {
	parent = NormalizeDir(parent)
	dir := path.Dir(NormalizePath(file))

	if parent == "." {
		if dir == "." {
			return ""
		}
		return dir
	}
	if rel, ok := strings.CutPrefix(dir, parent+"/"); ok {
		return rel
	}
	return ""
}
