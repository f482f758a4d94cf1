package dirs

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureFiles = []string{
	"private/test-package/deep/test/index",
	"public/test-package/deep/test/index",
	"private/test-package/test/index",
	"public/test-package/test/index",
	"private/test-package/index",
	"public/test-package/index",
	"private/config",
	"public/config",
}

var fixtureParents = []string{"private", "public"}

func TestGroup(t *testing.T) {
	tests := []struct {
		name          string
		files         []string
		parents       []string
		depth         int
		includeParent bool
		expected      []string
	}{
		{
			name:     "depth 1 across two parents keeps first occurrence order",
			files:    []string{"private/pkg/a/file", "public/pkg/a/file", "private/pkg/b/file"},
			parents:  []string{"private", "public"},
			depth:    1,
			expected: []string{"pkg/a", "pkg/b"},
		},
		{
			name:          "depth 0 with parent prefix",
			files:         []string{"private/pkg/a/file", "public/pkg/a/file", "private/pkg/b/file"},
			parents:       []string{"private", "public"},
			depth:         0,
			includeParent: true,
			expected:      []string{"private/pkg", "public/pkg"},
		},
		{
			name:     "files directly in the parent group to the empty name",
			files:    fixtureFiles,
			parents:  fixtureParents,
			depth:    0,
			expected: []string{"test-package", ""},
		},
		{
			name:     "maximum depth keeps the whole directory",
			files:    []string{"apps/web/src/main.go", "apps/api/cmd/server/main.go"},
			parents:  []string{"apps"},
			depth:    math.MaxInt,
			expected: []string{"web/src", "api/cmd/server"},
		},
		{
			name:     "shallow directories are not padded",
			files:    fixtureFiles,
			parents:  fixtureParents,
			depth:    1,
			expected: []string{"test-package/deep", "test-package/test", "test-package", ""},
		},
		{
			name:          "parent prefix with deep grouping",
			files:         fixtureFiles,
			parents:       fixtureParents,
			depth:         2,
			includeParent: true,
			expected: []string{
				"private/test-package/deep/test",
				"private/test-package/test",
				"private/test-package",
				"private/",
				"public/test-package/deep/test",
				"public/test-package/test",
				"public/test-package",
				"public/",
			},
		},
		{
			name:     "unlimited depth keeps the whole directory",
			files:    []string{"charts/a/templates/x.yaml", "charts/a/Chart.yaml", "charts/b/values.yaml"},
			parents:  []string{"charts"},
			depth:    Unlimited,
			expected: []string{"a/templates", "a", "b"},
		},
		{
			name:     "files outside every parent are ignored",
			files:    []string{"docs/readme.md", "privateer/x/y", "../private/x/y", "private/x/y"},
			parents:  []string{"private"},
			depth:    0,
			expected: []string{"x"},
		},
		{
			name:          "parents are normalized",
			files:         []string{"./apps/web/src/main.go", "apps\\api\\main.go"},
			parents:       []string{"./apps/"},
			depth:         0,
			includeParent: true,
			expected:      []string{"apps/web", "apps/api"},
		},
		{
			name:     "root parent groups top level directories",
			files:    []string{"a/b/c.txt", "README.md", "a/d.txt"},
			parents:  []string{"."},
			depth:    0,
			expected: []string{"a", ""},
		},
		{
			name:     "nested parent",
			files:    []string{"services/go/api/cmd/main.go", "services/go/worker/main.go", "services/py/x/a.py"},
			parents:  []string{"services/go"},
			depth:    0,
			expected: []string{"api", "worker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Group(tt.files, tt.parents, tt.depth, tt.includeParent)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGroup_DepthZeroIsDistinctFirstLevelDirectories(t *testing.T) {
	files := []string{
		"pkgs/a/x.go", "pkgs/b/y/z.go", "pkgs/a/q/r.go", "pkgs/c/d/e/f.go", "other/a/x.go",
	}
	got := Group(files, []string{"pkgs"}, 0, false)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
}

func TestGroup_IsIdempotent(t *testing.T) {
	first := Group(fixtureFiles, fixtureParents, 1, true)
	second := Group(fixtureFiles, fixtureParents, 1, true)
	assert.Equal(t, first, second)
}

func TestGroup_DuplicateFilesProduceOneEntryAtFirstPosition(t *testing.T) {
	files := []string{"p/b/1", "p/a/1", "p/b/1", "p/b/2", "p/a/2"}
	got := Group(files, []string{"p"}, 0, false)
	assert.Equal(t, []string{"b", "a"}, got)
}

func TestGroup_IncludeParentPrefixesMatchedParent(t *testing.T) {
	got := Group(fixtureFiles, fixtureParents, 0, true)
	require.NotEmpty(t, got)
	for _, d := range got {
		assert.True(t, strings.HasPrefix(d, "private/") || strings.HasPrefix(d, "public/"), d)
	}
}

func TestGroup_PrefixUsesNormalizedParent(t *testing.T) {
	got := Group([]string{"apps/web/main.go"}, []string{"./apps/"}, 0, true)
	assert.Equal(t, []string{"apps/web"}, got)
}

func TestGroup_NoMatchesReturnsEmptyJSONArray(t *testing.T) {
	got := Group([]string{"docs/readme.md"}, []string{"apps"}, 0, false)
	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"x", "y", "z"}, Unique([]string{"x", "y", "x", "z", "y"}))
	assert.NotNil(t, Unique(nil))
}
