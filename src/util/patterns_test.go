package util

import (
	"testing"

	"quality-metrics/src/config"
)

func TestExclusionMatcher(t *testing.T) {
	m := NewExclusionMatcher(config.ExclusionsConfig{
		ClassPatterns:  []string{"Test$", "^Generated"},
		MethodPatterns: []string{"^test", "^component\\d+$"},
		Packages:       []string{"com.acme.internal.**", "com.*.gen"},
		Languages:      []string{"Java"},
	})

	classTests := []struct {
		pkg, class, lang string
		want             bool
	}{
		{"com.acme", "com.acme.OrderTest", "kotlin", true},
		{"com.acme", "com.acme.GeneratedMapper", "kotlin", true},
		{"com.acme", "com.acme.Order", "kotlin", false},
		{"com.acme.internal", "com.acme.internal.Cache", "kotlin", true},
		{"com.acme.internal.io", "com.acme.internal.io.Buf", "kotlin", true},
		{"com.other.gen", "com.other.gen.Mapper", "kotlin", true},
		{"com.other.gen.sub", "com.other.gen.sub.Mapper", "kotlin", false},
		{"com.acme", "com.acme.Order", "java", true},
	}
	for _, tt := range classTests {
		if got := m.MatchesClass(tt.pkg, tt.class, tt.lang); got != tt.want {
			t.Errorf("MatchesClass(%q, %q, %q): expected %v, got %v", tt.pkg, tt.class, tt.lang, tt.want, got)
		}
	}

	methodTests := []struct {
		name string
		want bool
	}{
		{"testOrder", true},
		{"component1", true},
		{"compute", false},
	}
	for _, tt := range methodTests {
		if got := m.MatchesMethod(tt.name); got != tt.want {
			t.Errorf("MatchesMethod(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}
