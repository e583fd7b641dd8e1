package util

import (
	"regexp"
	"strings"

	"quality-metrics/src/config"
)

// ExclusionMatcher matches classes and methods against exclusion patterns
type ExclusionMatcher struct {
	packages       []string
	languages      map[string]bool
	classPatterns  []*regexp.Regexp
	methodPatterns []*regexp.Regexp
}

// NewExclusionMatcher creates a new exclusion matcher from config.
// Invalid patterns are logged and skipped.
func NewExclusionMatcher(cfg config.ExclusionsConfig) *ExclusionMatcher {
	m := &ExclusionMatcher{
		packages:  cfg.Packages,
		languages: make(map[string]bool, len(cfg.Languages)),
	}

	for _, lang := range cfg.Languages {
		m.languages[strings.ToLower(lang)] = true
	}

	for _, p := range cfg.ClassPatterns {
		if re, err := regexp.Compile(p); err == nil {
			m.classPatterns = append(m.classPatterns, re)
		} else {
			Warn("Ignoring invalid class exclusion pattern %q: %v", p, err)
		}
	}

	for _, p := range cfg.MethodPatterns {
		if re, err := regexp.Compile(p); err == nil {
			m.methodPatterns = append(m.methodPatterns, re)
		} else {
			Warn("Ignoring invalid method exclusion pattern %q: %v", p, err)
		}
	}

	return m
}

// MatchesClass checks if a class should be excluded. Class patterns are
// matched against the simple name.
func (m *ExclusionMatcher) MatchesClass(pkg, className, language string) bool {
	if m.languages[strings.ToLower(language)] {
		return true
	}

	for _, p := range m.packages {
		if MatchPackage(p, pkg) {
			return true
		}
	}

	simple := SimpleName(className)
	for _, re := range m.classPatterns {
		if re.MatchString(simple) {
			return true
		}
	}

	return false
}

// MatchesMethod checks if a method should be excluded
func (m *ExclusionMatcher) MatchesMethod(methodName string) bool {
	for _, re := range m.methodPatterns {
		if re.MatchString(methodName) {
			return true
		}
	}
	return false
}

// MatchPackage matches a package against a pattern. A trailing ".**"
// matches the package and all its subpackages; "*" matches one segment.
func MatchPackage(pattern, pkg string) bool {
	if prefix, ok := strings.CutSuffix(pattern, ".**"); ok {
		return pkg == prefix || strings.HasPrefix(pkg, prefix+".")
	}

	pp := strings.Split(pattern, ".")
	ps := strings.Split(pkg, ".")
	if len(pp) != len(ps) {
		return false
	}
	for i := range pp {
		if pp[i] != "*" && pp[i] != ps[i] {
			return false
		}
	}
	return true
}

// SimpleName returns the last segment of a qualified name
func SimpleName(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}
