// Package action wraps the GitHub Actions toolkit for the tool: reading
// inputs, writing outputs and workflow commands.
package action

import (
	"os"
	"strings"
	"unicode"
)

// GetInput returns the trimmed value of the named input.
//
// The runner exposes inputs as INPUT_<NAME> with the name upper-cased and
// spaces replaced by underscores. Hyphenated names are also looked up with
// underscores, and finally the SCREAMING_SNAKE name without prefix is
// consulted so the tool can be driven by plain env vars (or a .env file)
// outside of Actions.
func GetInput(name string) string {
	a := current()
	if v := a.GetInput(name); v != "" {
		return v
	}
	if v := a.GetInput(strings.ReplaceAll(name, "-", "_")); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(screamingSnake(name)))
}

// screamingSnake converts camelCase and kebab-case names: "baseFolders" and
// "base-folders" both become "BASE_FOLDERS".
func screamingSnake(name string) string {
	var b strings.Builder
	runes := []rune(strings.TrimSpace(name))
	for i, r := range runes {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
		case unicode.IsUpper(r) && i > 0 && unicode.IsLower(runes[i-1]):
			b.WriteByte('_')
			b.WriteRune(r)
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
