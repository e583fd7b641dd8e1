package index

import (
	"fmt"
	"sort"
	"strings"

	"quality-metrics/src/model"
	"quality-metrics/src/util"
)

// Index is a read-only arena over the classes of a project. Classes are
// addressed by identity; superclass edges are resolved by name on demand.
type Index struct {
	classes  []*model.ClassModel
	byName   map[string]*model.ClassModel
	methods  map[string][]*model.MethodModel
	children map[string][]string
	failures []model.EntityFailure
}

// Build flattens nested classes, validates identities and method ownership
// and resolves inheritance edges. Entities violating an invariant are left
// out and reported through Failures.
func Build(project *model.Project) *Index {
	idx := &Index{
		byName:   make(map[string]*model.ClassModel),
		methods:  make(map[string][]*model.MethodModel),
		children: make(map[string][]string),
	}

	for i := range project.Classes {
		idx.add(&project.Classes[i], "")
	}

	for _, c := range idx.classes {
		if parent, ok := idx.Superclass(c); ok && parent.Name != c.Name {
			idx.children[parent.Name] = append(idx.children[parent.Name], c.Name)
		}
	}
	for name := range idx.children {
		sort.Strings(idx.children[name])
	}

	util.Debug("Indexed %d classes (%d entity failures)", len(idx.classes), len(idx.failures))
	return idx
}

func (idx *Index) add(c *model.ClassModel, outer string) {
	if c.Name == "" {
		idx.fail(model.ScopeClass, outer+".<anonymous>", model.ErrEmptyIdentity, "")
		return
	}

	if outer != "" && !strings.HasPrefix(c.Name, outer+".") {
		qualified := *c
		qualified.Name = outer + "." + c.Name
		if qualified.Package == "" {
			qualified.Package = idx.byName[outer].PackageName()
		}
		c = &qualified
	}

	if _, exists := idx.byName[c.Name]; exists {
		idx.fail(model.ScopeClass, c.Name, model.ErrDuplicateEntity, "")
		return
	}

	idx.classes = append(idx.classes, c)
	idx.byName[c.Name] = c

	simple := util.SimpleName(c.Name)
	for i := range c.Methods {
		m := &c.Methods[i]
		if m.Owner != "" && m.Owner != c.Name && m.Owner != simple {
			idx.fail(model.ScopeMethod, model.MethodEntity(c.Name, m), model.ErrOrphanMethod,
				fmt.Sprintf("declared owner %s", m.Owner))
			continue
		}
		idx.methods[c.Name] = append(idx.methods[c.Name], m)
	}

	for i := range c.Nested {
		idx.add(&c.Nested[i], c.Name)
	}
}

func (idx *Index) fail(scope model.Scope, entity string, err error, detail string) {
	merr := &model.ModelError{Scope: scope, Entity: entity, Err: err, Detail: detail}
	util.Warn("Model invariant violated: %v", merr)
	idx.failures = append(idx.failures, merr.Failure())
}

// Classes returns the indexed classes in declaration order, nested classes
// following their outer class
func (idx *Index) Classes() []*model.ClassModel {
	return idx.classes
}

// Class looks up a class by identity
func (idx *Index) Class(name string) (*model.ClassModel, bool) {
	c, ok := idx.byName[name]
	return c, ok
}

// Methods returns the methods of a class that passed validation
func (idx *Index) Methods(className string) []*model.MethodModel {
	return idx.methods[className]
}

// Children returns the identities of classes directly extending the class
func (idx *Index) Children(className string) []string {
	return idx.children[className]
}

// Failures returns the entities rejected while building the index
func (idx *Index) Failures() []model.EntityFailure {
	return idx.failures
}

// Superclass resolves the declared superclass of c inside the analyzed set
func (idx *Index) Superclass(c *model.ClassModel) (*model.ClassModel, bool) {
	return idx.Resolve(c, c.Superclass)
}

// Resolve finds a type referenced from a class by exact identity, then
// relative to the referencing class's package.
func (idx *Index) Resolve(from *model.ClassModel, name string) (*model.ClassModel, bool) {
	name = util.NormalizeType(name)
	if name == "" {
		return nil, false
	}
	if c, ok := idx.byName[name]; ok {
		return c, true
	}
	if pkg := from.PackageName(); pkg != "" {
		if c, ok := idx.byName[pkg+"."+name]; ok {
			return c, true
		}
	}
	return nil, false
}

// Ancestors walks the superclass chain of c inside the analyzed set, nearest
// first. The walk stops at a root type or at the first superclass outside
// the set; the latter is returned as external. A chain that revisits a
// class yields ErrInheritanceCycle.
func (idx *Index) Ancestors(c *model.ClassModel, types *util.TypeTable) (chain []*model.ClassModel, external string, err error) {
	visited := map[string]bool{c.Name: true}
	cur := c
	for {
		sup := cur.Superclass
		if sup == "" || types.IsRoot(sup) {
			return chain, "", nil
		}
		parent, ok := idx.Superclass(cur)
		if !ok {
			return chain, util.NormalizeType(sup), nil
		}
		if visited[parent.Name] {
			return nil, "", &model.ModelError{
				Scope:  model.ScopeClass,
				Entity: c.Name,
				Err:    model.ErrInheritanceCycle,
				Detail: fmt.Sprintf("%s revisited", parent.Name),
			}
		}
		visited[parent.Name] = true
		chain = append(chain, parent)
		cur = parent
	}
}
