package util

import (
	"strings"

	"quality-metrics/src/config"
)

// TypeTable classifies type references of one language as library, root or
// project types.
type TypeTable struct {
	prefixes []string
	roots    map[string]bool
	builtins map[string]bool
}

// NewTypeTable creates a type table from language config
func NewTypeTable(cfg config.LanguageConfig) *TypeTable {
	t := &TypeTable{
		prefixes: cfg.LibraryPrefixes,
		roots:    make(map[string]bool, len(cfg.RootTypes)),
		builtins: make(map[string]bool, len(cfg.BuiltinTypes)),
	}
	for _, r := range cfg.RootTypes {
		t.roots[r] = true
	}
	for _, b := range cfg.BuiltinTypes {
		t.builtins[b] = true
	}
	return t
}

// TypeTables holds one TypeTable per language
type TypeTables map[string]*TypeTable

// NewTypeTables builds tables for every configured language
func NewTypeTables(langs map[string]config.LanguageConfig) TypeTables {
	tables := make(TypeTables, len(langs))
	for name, cfg := range langs {
		tables[strings.ToLower(name)] = NewTypeTable(cfg)
	}
	return tables
}

// For returns the table of a language, or an empty table when unknown
func (t TypeTables) For(language string) *TypeTable {
	if table, ok := t[strings.ToLower(language)]; ok {
		return table
	}
	return NewTypeTable(config.LanguageConfig{})
}

// IsRoot reports whether the type is the implicit root of the hierarchy
func (t *TypeTable) IsRoot(name string) bool {
	return t.roots[NormalizeType(name)]
}

// IsLibrary reports whether the type belongs to a library namespace or is a
// builtin of the language. Root types are library types too.
func (t *TypeTable) IsLibrary(name string) bool {
	base := NormalizeType(name)
	if base == "" {
		return true
	}
	if t.roots[base] || t.builtins[base] {
		return true
	}
	for _, p := range t.prefixes {
		if strings.HasPrefix(base, p) {
			return true
		}
	}
	return false
}

// NormalizeType strips generic arguments, nullability, arrays and variance
// from a type reference.
func NormalizeType(name string) string {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, "?")
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
	}
	name = strings.TrimPrefix(name, "out ")
	name = strings.TrimPrefix(name, "in ")
	return strings.TrimSpace(name)
}

// SplitType returns the normalized base type followed by its generic
// arguments, recursively. "Map<Foo, List<Bar?>>" yields Map, Foo, List, Bar.
func SplitType(name string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if s := NormalizeType(cur.String()); s != "" && s != "*" {
			out = append(out, s)
		}
		cur.Reset()
	}
	for _, r := range name {
		switch r {
		case '<', '>', ',':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}
