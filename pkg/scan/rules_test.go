package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionRuleSuffixMatching(t *testing.T) {
	rule := ExtensionRule{Pattern: ".md"}

	tests := []struct {
		path string
		want bool
	}{
		{"a.md", true},
		{"README.md", true},
		{"docs/guide.md", true},
		{".md", true}, // a file literally named after the suffix
		{"amd", false},
		{"a.mdx", false},
		{"md", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rule.Matches(tt.path), "pattern .md against %q", tt.path)
	}
}

func TestExtensionRuleGlobMatching(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.tmp", "a.tmp", true},
		{"*.tmp", "src/b.tmp", true},
		{"*.tmp", "a.tmp.bak", false},
		{"*.tmp", ".tmp", true},
		{"x?z", "xyz", true},
		{"x?z", "xz", false},
		{"x?z", "xyyz", false},
		{"*", "anything", true},
		{"a*b*c", "aXbYc", true},
		{"a*b*c", "abc", true},
		{"a*b*c", "acb", false},
		{"Makefile", "Makefile", true},
		{"Makefile", "Makefile.am", false},
		{"x?z", "xéz", true}, // '?' consumes one character, not one byte
		{"?", "ü", true},
		{"*é.txt", "café.txt", true},
	}
	for _, tt := range tests {
		rule := ExtensionRule{Pattern: tt.pattern}
		assert.Equal(t, tt.want, rule.Matches(tt.path), "pattern %q against %q", tt.pattern, tt.path)
	}
}

func TestDirectoryRuleSegmentMatching(t *testing.T) {
	rs := RuleSet{Directories: []DirectoryRule{{Name: "tests"}}}

	assert.True(t, rs.ExcludesFile("tests/a.go"))
	assert.True(t, rs.ExcludesFile("src/tests/b.go"))
	assert.True(t, rs.ExcludesFile("src/tests/deep/c.go"))
	assert.False(t, rs.ExcludesFile("testsuite/a.go"), "substring of a segment must not match")
	assert.False(t, rs.ExcludesFile("a/mytests/b.go"))
	assert.False(t, rs.ExcludesFile("tests"), "a plain file named like the directory is not excluded")
}

func TestNewDirectoryRule(t *testing.T) {
	rule, ok := NewDirectoryRule("tests/")
	require.True(t, ok)
	assert.Equal(t, "tests", rule.Name, "trailing separator is stripped")

	_, ok = NewDirectoryRule("a/b")
	assert.False(t, ok, "interior separators are rejected")

	_, ok = NewDirectoryRule("   ")
	assert.False(t, ok)

	_, ok = NewDirectoryRule("/")
	assert.False(t, ok)
}

func TestNewExtensionRule(t *testing.T) {
	rule, ok := NewExtensionRule("  .md ")
	require.True(t, ok)
	assert.Equal(t, ".md", rule.Pattern)

	_, ok = NewExtensionRule("  ")
	assert.False(t, ok)
}

func TestMergeRulesIdempotentEffect(t *testing.T) {
	once := MergeRules([]string{".md"}, []string{"tests"}, nil, nil, false, nil)
	twice := MergeRules([]string{".md", ".md"}, []string{"tests", "tests"}, []string{".md"}, []string{"tests"}, false, nil)

	paths := []string{"a.md", "a.go", "tests/b.go", "src/tests/c.go", "testsuite/d.go"}
	for _, p := range paths {
		assert.Equal(t, once.ExcludesFile(p), twice.ExcludesFile(p),
			"duplicated rules must not change the effective exclusion of %q", p)
	}
}
