package model

import "strings"

// Language identifies the front-end that produced a class
type Language string

const (
	LanguageKotlin Language = "kotlin"
	LanguageJava   Language = "java"
)

// ClassKind is the declaration form of a class
type ClassKind string

const (
	ClassKindClass     ClassKind = "class"
	ClassKindInterface ClassKind = "interface"
	ClassKindObject    ClassKind = "object"
	ClassKindData      ClassKind = "data"
	ClassKindEnum      ClassKind = "enum"
)

// Visibility of a declaration
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityInternal  Visibility = "internal"
	VisibilityPrivate   Visibility = "private"
)

// IsPublic treats an empty visibility as public, which is the default for
// the implicit-accessor language.
func (v Visibility) IsPublic() bool {
	return v == "" || v == VisibilityPublic
}

// AccessorKind describes how a field's accessors are declared
type AccessorKind string

const (
	AccessorPlain        AccessorKind = "plain"
	AccessorCustomGetter AccessorKind = "custom_getter"
	AccessorCustomSetter AccessorKind = "custom_setter"
	AccessorCustomBoth   AccessorKind = "custom_both"
)

// Project is the root of the structural model handed over by a front-end
type Project struct {
	Name    string       `json:"name" yaml:"name"`
	Classes []ClassModel `json:"classes" yaml:"classes"`
}

// Modifiers holds class-level modifiers
type Modifiers struct {
	Abstract   bool       `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Open       bool       `json:"open,omitempty" yaml:"open,omitempty"`
	Final      bool       `json:"final,omitempty" yaml:"final,omitempty"`
	Visibility Visibility `json:"visibility,omitempty" yaml:"visibility,omitempty"`
}

// ClassModel is a class, interface or object declaration.
// Name is the fully-qualified identity; Superclass is a single declared
// reference or empty for an implicit root.
type ClassModel struct {
	Name       string        `json:"name" yaml:"name"`
	Package    string        `json:"package" yaml:"package"`
	Language   Language      `json:"language" yaml:"language"`
	Kind       ClassKind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Modifiers  Modifiers     `json:"modifiers" yaml:"modifiers"`
	Superclass string        `json:"superclass,omitempty" yaml:"superclass,omitempty"`
	Interfaces []string      `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Fields     []FieldModel  `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods    []MethodModel `json:"methods,omitempty" yaml:"methods,omitempty"`
	Nested     []ClassModel  `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// Field returns the declared field with the given name
func (c *ClassModel) Field(name string) (*FieldModel, bool) {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i], true
		}
	}
	return nil, false
}

// PackageName returns the declared package, falling back to the identity prefix
func (c *ClassModel) PackageName() string {
	if c.Package != "" {
		return c.Package
	}
	if i := strings.LastIndex(c.Name, "."); i > 0 {
		return c.Name[:i]
	}
	return ""
}

// FieldModel is a field or property declaration
type FieldModel struct {
	Name              string       `json:"name" yaml:"name"`
	Type              string       `json:"type,omitempty" yaml:"type,omitempty"`
	Visibility        Visibility   `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Mutable           bool         `json:"mutable,omitempty" yaml:"mutable,omitempty"`
	Static            bool         `json:"static,omitempty" yaml:"static,omitempty"`
	Synthetic         bool         `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
	Accessor          AccessorKind `json:"accessor,omitempty" yaml:"accessor,omitempty"`
	ImplicitAccessors bool         `json:"implicit_accessors,omitempty" yaml:"implicit_accessors,omitempty"`
}

// Parameter is a declared method parameter
type Parameter struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// MethodModel is a method, constructor or custom accessor body
type MethodModel struct {
	Name         string      `json:"name" yaml:"name"`
	Owner        string      `json:"owner,omitempty" yaml:"owner,omitempty"`
	Parameters   []Parameter `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ReturnType   string      `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Visibility   Visibility  `json:"visibility,omitempty" yaml:"visibility,omitempty"`
	Constructor  bool        `json:"constructor,omitempty" yaml:"constructor,omitempty"`
	Abstract     bool        `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Override     bool        `json:"override,omitempty" yaml:"override,omitempty"`
	Synthetic    bool        `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
	AccessorFor  string      `json:"accessor_for,omitempty" yaml:"accessor_for,omitempty"`
	AccessorKind string      `json:"accessor_kind,omitempty" yaml:"accessor_kind,omitempty"`
	Body         []Node      `json:"body,omitempty" yaml:"body,omitempty"`
}

// IsAccessor reports whether the method is a getter or setter for a field
func (m *MethodModel) IsAccessor() bool {
	return m.AccessorFor != ""
}

// Signature renders name(paramTypes), used to keep overloads apart
func (m *MethodModel) Signature() string {
	types := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		types[i] = p.Type
	}
	return m.Name + "(" + strings.Join(types, ",") + ")"
}

// IsRecursiveCandidate reports whether the body calls a self method with
// this method's name
func (m *MethodModel) IsRecursiveCandidate() bool {
	found := false
	Inspect(m.Body, func(n *Node) bool {
		if n.Kind == NodeCall && n.Target == TargetSelf && n.Callee == m.Name {
			found = true
		}
		return !found
	})
	return found
}

// MethodEntity is the identity of a method in results: Class#name(types)
func MethodEntity(class string, m *MethodModel) string {
	return class + "#" + m.Signature()
}
