// Package scan implements the exclusion-aware discovery and aggregation
// engine behind codeclip: rule merging, deterministic traversal, document
// assembly, and output routing.
package scan

import (
	"path"
	"strings"
)

// ExtensionRule excludes files by name. A pattern starting with '.' is a
// literal filename suffix; anything else is a shell-style glob ('*' and '?')
// matched against the filename alone.
type ExtensionRule struct {
	Pattern string
}

// DirectoryRule excludes a whole directory subtree by segment name. The name
// is always a single path segment, never a path.
type DirectoryRule struct {
	Name string
}

// RuleSet is the merged, immutable collection of exclusion rules for one
// invocation. Duplicates are harmless and kept as-is.
type RuleSet struct {
	Extensions  []ExtensionRule
	Directories []DirectoryRule
}

// NewExtensionRule validates and builds an extension rule.
// Returns ok=false for patterns that are empty after trimming.
func NewExtensionRule(pattern string) (ExtensionRule, bool) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return ExtensionRule{}, false
	}
	return ExtensionRule{Pattern: pattern}, true
}

// NewDirectoryRule validates and builds a directory rule. Trailing path
// separators are stripped; names containing interior separators are rejected
// because directory matching is strictly per-segment.
func NewDirectoryRule(name string) (DirectoryRule, bool) {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, "/")
	if name == "" || strings.Contains(name, "/") {
		return DirectoryRule{}, false
	}
	return DirectoryRule{Name: name}, true
}

// Matches reports whether the rule excludes the file at relPath
// (slash-separated). Only the final path segment is considered.
func (r ExtensionRule) Matches(relPath string) bool {
	name := path.Base(relPath)
	if strings.HasPrefix(r.Pattern, ".") {
		return strings.HasSuffix(name, r.Pattern)
	}
	return matchGlob(r.Pattern, name)
}

// MatchesSegment reports whether a single path segment equals the rule name.
// Matching is exact; "tests" never matches "testsuite".
func (r DirectoryRule) MatchesSegment(segment string) bool {
	return segment == r.Name
}

// ExcludesDir reports whether any directory rule matches the given directory
// name. The walker calls this per directory entry, so ancestors have already
// been checked by the time a name reaches here.
func (rs RuleSet) ExcludesDir(name string) bool {
	for _, r := range rs.Directories {
		if r.MatchesSegment(name) {
			return true
		}
	}
	return false
}

// ExcludesFile reports whether the file at relPath (slash-separated) is
// excluded, either by an extension rule on its filename or by a directory
// rule on one of its parent segments.
func (rs RuleSet) ExcludesFile(relPath string) bool {
	for _, r := range rs.Extensions {
		if r.Matches(relPath) {
			return true
		}
	}
	if dir := path.Dir(relPath); dir != "." {
		for _, segment := range strings.Split(dir, "/") {
			for _, r := range rs.Directories {
				if r.MatchesSegment(segment) {
					return true
				}
			}
		}
	}
	return false
}

// matchGlob matches name against a pattern supporting '*' (any run of
// characters) and '?' (any single character). Matching is rune-wise, so '?'
// consumes one character even in multibyte filenames. The matcher is
// deliberately self-contained so its behavior never shifts underneath the
// rule language: no character classes, no errors, no separator
// special-casing.
func matchGlob(pattern, name string) bool {
	p := []rune(pattern)
	n := []rune(name)
	pi, ni := 0, 0
	star, mark := -1, 0
	for ni < len(n) {
		switch {
		case pi < len(p) && (p[pi] == '?' || p[pi] == n[ni]):
			pi++
			ni++
		case pi < len(p) && p[pi] == '*':
			star = pi
			mark = ni
			pi++
		case star >= 0:
			// Backtrack: let the last '*' swallow one more character.
			pi = star + 1
			mark++
			ni = mark
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == '*' {
		pi++
	}
	return pi == len(p)
}
