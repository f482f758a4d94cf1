package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/novog93/split-changes-into-dirs/internal/dirs"
)

// Change sources.
const (
	SourceAPI = "api"
	SourceGit = "git"
)

// Inputs are the action inputs after parsing.
type Inputs struct {
	Token                  string
	BaseFolders            []string
	IncludeParent          bool
	Depth                  int
	RequireHeadAheadOfBase bool
	ConfigFile             string
	ConfigRequired         bool
	GetAllDirectories      bool
	OverrideDirectories    []string
	Source                 string
	WorkingDirectory       string
	Repository             string
	APIURL                 string
}

// inputNames lists every recognised input; each is also a CLI flag.
var inputNames = []string{
	"token",
	"baseFolders",
	"baseFolder",
	"includeParent",
	"depth",
	"requireHeadAheadOfBase",
	"configFile",
	"configRequired",
	"getAllDirectories",
	"overrideDirectories",
	"source",
	"workingDirectory",
	"repository",
	"apiUrl",
}

// LoadInputs parses inputs through lookup, which returns "" for unset names.
func LoadInputs(lookup func(name string) string) (Inputs, error) {
	isTrue := func(name string) bool { return lookup(name) == "true" }

	in := Inputs{
		Token:                  lookup("token"),
		IncludeParent:          isTrue("includeParent"),
		RequireHeadAheadOfBase: isTrue("requireHeadAheadOfBase"),
		ConfigFile:             lookup("configFile"),
		ConfigRequired:         isTrue("configRequired"),
		GetAllDirectories:      isTrue("getAllDirectories"),
		Source:                 strings.ToLower(firstNonEmpty(lookup("source"), SourceAPI)),
		WorkingDirectory:       firstNonEmpty(lookup("workingDirectory"), "."),
		Repository:             lookup("repository"),
		APIURL:                 firstNonEmpty(lookup("apiUrl"), os.Getenv("GITHUB_API_URL")),
	}

	var err error
	raw := firstNonEmpty(lookup("baseFolders"), lookup("baseFolder"))
	if in.BaseFolders, err = parseFolders(raw); err != nil {
		return Inputs{}, fmt.Errorf("invalid baseFolders: %w", err)
	}
	if in.Depth, err = parseDepth(lookup("depth")); err != nil {
		return Inputs{}, err
	}
	if in.OverrideDirectories, err = parseOverride(lookup("overrideDirectories")); err != nil {
		return Inputs{}, fmt.Errorf("invalid overrideDirectories: %w", err)
	}

	if err := in.validate(); err != nil {
		return Inputs{}, err
	}
	return in, nil
}

func (in Inputs) validate() error {
	if len(in.BaseFolders) == 0 {
		return errors.New("input required and not supplied: baseFolders")
	}
	switch in.Source {
	case SourceAPI:
		if in.Token == "" && len(in.OverrideDirectories) == 0 {
			return errors.New("input required and not supplied: token")
		}
	case SourceGit:
	default:
		return fmt.Errorf("unknown source %q (expected %q or %q)", in.Source, SourceAPI, SourceGit)
	}
	return nil
}

// parseFolders accepts a YAML list or a single folder name.
func parseFolders(raw string) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var list []string
	if err := yaml.Unmarshal([]byte(raw), &list); err == nil {
		return compact(list), nil
	}
	var single string
	if err := yaml.Unmarshal([]byte(raw), &single); err != nil {
		return nil, err
	}
	return compact([]string{single}), nil
}

// parseDepth treats an empty depth as unlimited.
func parseDepth(raw string) (int, error) {
	if raw == "" {
		return dirs.Unlimited, nil
	}
	depth, err := strconv.Atoi(raw)
	if err != nil || depth < 0 {
		return 0, fmt.Errorf("invalid depth %q: expected a non-negative integer", raw)
	}
	return depth, nil
}

func parseOverride(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var list []string
	if err := yaml.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	return list, nil
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
