package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// Scope is the level of the entity a metric value belongs to
type Scope string

const (
	ScopeProject Scope = "project"
	ScopePackage Scope = "package"
	ScopeClass   Scope = "class"
	ScopeMethod  Scope = "method"
)

func (s Scope) rank() int {
	switch s {
	case ScopeProject:
		return 0
	case ScopePackage:
		return 1
	case ScopeClass:
		return 2
	default:
		return 3
	}
}

// MetricKey is the short identifier of a metric
type MetricKey string

const (
	KeyCyclomatic     MetricKey = "CC"
	KeyCognitive      MetricKey = "CCM"
	KeyConditionDepth MetricKey = "CND"
	KeyLoopDepth      MetricKey = "LND"
	KeyNestingDepth   MetricKey = "MND"
	KeyLoops          MetricKey = "NOL"
	KeyParameters     MetricKey = "NOPM"
	KeyLocality       MetricKey = "LAA"
	KeyProviders      MetricKey = "FDP"
	KeyVariables      MetricKey = "NOAV"
	KeyCouplingCalls  MetricKey = "MPC"
	KeyIntensity      MetricKey = "CINT"
	KeyDispersion     MetricKey = "CDISP"

	KeyForeignData     MetricKey = "ATFD"
	KeyCoupling        MetricKey = "CBO"
	KeyPublicFields    MetricKey = "NOPA"
	KeyAccessors       MetricKey = "NOAC"
	KeyAttributes      MetricKey = "NOA"
	KeyMethods         MetricKey = "NOM"
	KeyWeightedMethods MetricKey = "WMC"
	KeyInheritance     MetricKey = "DIT"
	KeyChildren        MetricKey = "NOC"
	KeyOverridden      MetricKey = "NOOM"
	KeyOperations      MetricKey = "NOO"
	KeyResponse        MetricKey = "RFC"
	KeyDataAbstraction MetricKey = "DAC"
	KeyLackOfCohesion  MetricKey = "LCOM"
	KeyTightCohesion   MetricKey = "TCC"
)

// ValueKind distinguishes counts from ratios; it decides the default reduction
type ValueKind string

const (
	KindCount ValueKind = "count"
	KindRatio ValueKind = "ratio"
	KindDepth ValueKind = "depth"
)

// MetricDefinition describes a computed metric
type MetricDefinition struct {
	Key         MetricKey
	Name        string
	Scope       Scope
	Kind        ValueKind
	Description string
}

// Definitions lists every metric the engine computes, method scope first
var Definitions = []MetricDefinition{
	{KeyCyclomatic, "McCabe Cyclomatic Complexity", ScopeMethod, KindDepth, "independent paths through the method"},
	{KeyCognitive, "Cognitive Complexity", ScopeMethod, KindDepth, "nesting-weighted decision points"},
	{KeyConditionDepth, "Condition Nesting Depth", ScopeMethod, KindDepth, "deepest nesting of conditionals"},
	{KeyLoopDepth, "Loop Nesting Depth", ScopeMethod, KindDepth, "deepest nesting of loops"},
	{KeyNestingDepth, "Maximum Nesting Depth", ScopeMethod, KindDepth, "deepest nesting of any control construct"},
	{KeyLoops, "Number Of Loops", ScopeMethod, KindCount, "loop statements in the method"},
	{KeyParameters, "Number Of Parameters", ScopeMethod, KindCount, "declared parameters"},
	{KeyLocality, "Locality Of Attribute Accesses", ScopeMethod, KindRatio, "own attribute accesses over all attribute accesses"},
	{KeyProviders, "Foreign Data Providers", ScopeMethod, KindCount, "distinct foreign objects whose data is used"},
	{KeyVariables, "Number Of Accessed Variables", ScopeMethod, KindCount, "distinct variables read or written"},
	{KeyCouplingCalls, "Message Passing Coupling", ScopeMethod, KindCount, "constructor and foreign method calls"},
	{KeyIntensity, "Coupling Intensity", ScopeMethod, KindCount, "distinct foreign operations called"},
	{KeyDispersion, "Coupling Dispersion", ScopeMethod, KindRatio, "distinct providers over coupling intensity"},
	{KeyForeignData, "Access To Foreign Data", ScopeClass, KindCount, "distinct foreign types whose data is accessed"},
	{KeyCoupling, "Coupling Between Objects", ScopeClass, KindCount, "distinct non-library types referenced"},
	{KeyPublicFields, "Number Of Public Attributes", ScopeClass, KindCount, "public non-synthetic fields"},
	{KeyAccessors, "Number Of Accessor Methods", ScopeClass, KindCount, "public getters and setters"},
	{KeyAttributes, "Number Of Attributes", ScopeClass, KindCount, "non-synthetic fields"},
	{KeyMethods, "Number Of Methods", ScopeClass, KindCount, "measured methods"},
	{KeyWeightedMethods, "Weighted Methods Per Class", ScopeClass, KindCount, "sum of method cyclomatic complexity"},
	{KeyInheritance, "Depth Of Inheritance Tree", ScopeClass, KindDepth, "superclass chain length"},
	{KeyChildren, "Number Of Children", ScopeClass, KindCount, "direct subclasses"},
	{KeyOverridden, "Number Of Overridden Methods", ScopeClass, KindCount, "methods overriding an inherited method"},
	{KeyOperations, "Number Of Operations", ScopeClass, KindCount, "non-abstract methods and custom accessors, constructors excluded"},
	{KeyResponse, "Response For A Class", ScopeClass, KindCount, "declared methods plus distinct operations they call"},
	{KeyDataAbstraction, "Data Abstraction Coupling", ScopeClass, KindCount, "distinct project types used as field types"},
	{KeyLackOfCohesion, "Lack Of Cohesion Of Methods", ScopeClass, KindCount, "groups of methods connected through shared fields"},
	{KeyTightCohesion, "Tight Class Cohesion", ScopeClass, KindRatio, "method pairs sharing a field over all method pairs"},
}

// Definition returns the definition for a key
func Definition(key MetricKey) (MetricDefinition, bool) {
	for _, d := range Definitions {
		if d.Key == key {
			return d, true
		}
	}
	return MetricDefinition{}, false
}

// Classification is the threshold band of a value. The zero value means no
// threshold was configured for the metric.
type Classification string

const (
	Unclassified          Classification = ""
	ClassificationNormal  Classification = "normal"
	ClassificationWarning Classification = "warning"
	ClassificationError   Classification = "error"
)

// Rank orders classifications from unclassified (0) to error (3)
func (c Classification) Rank() int {
	switch c {
	case ClassificationNormal:
		return 1
	case ClassificationWarning:
		return 2
	case ClassificationError:
		return 3
	default:
		return 0
	}
}

// ClassOf returns the class part of a method or class entity
func ClassOf(entity string) string {
	if i := strings.Index(entity, "#"); i >= 0 {
		return entity[:i]
	}
	return entity
}

// MetricValue is one computed metric for one entity
type MetricValue struct {
	Scope          Scope          `json:"scope"`
	Entity         string         `json:"entity"`
	Key            MetricKey      `json:"key"`
	Value          float64        `json:"value"`
	Classification Classification `json:"classification,omitempty"`
}

type valueKey struct {
	scope  Scope
	entity string
	key    MetricKey
}

// ResultSet maps (scope, entity, key) to a value. It is not safe for
// concurrent writes.
type ResultSet struct {
	values map[valueKey]MetricValue
}

// NewResultSet creates an empty result set
func NewResultSet() *ResultSet {
	return &ResultSet{values: make(map[valueKey]MetricValue)}
}

// Put stores a value, replacing any previous value for the same identity
func (r *ResultSet) Put(v MetricValue) {
	r.values[valueKey{v.Scope, v.Entity, v.Key}] = v
}

// Get looks up a value
func (r *ResultSet) Get(scope Scope, entity string, key MetricKey) (MetricValue, bool) {
	v, ok := r.values[valueKey{scope, entity, key}]
	return v, ok
}

// Len returns the number of values
func (r *ResultSet) Len() int {
	return len(r.values)
}

// Values enumerates all values ordered by scope, entity and key
func (r *ResultSet) Values() []MetricValue {
	out := make([]MetricValue, 0, len(r.values))
	for _, v := range r.values {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Scope != b.Scope {
			return a.Scope.rank() < b.Scope.rank()
		}
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		return a.Key < b.Key
	})
	return out
}

// Scope enumerates the values of one scope in stable order
func (r *ResultSet) Scope(scope Scope) []MetricValue {
	var out []MetricValue
	for _, v := range r.Values() {
		if v.Scope == scope {
			out = append(out, v)
		}
	}
	return out
}

// MarshalJSON renders the ordered value list
func (r *ResultSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Values())
}

// EntityFailure records an entity whose metrics could not be computed
type EntityFailure struct {
	Scope     Scope  `json:"scope"`
	Entity    string `json:"entity"`
	Invariant string `json:"invariant"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

// Diagnostics are non-fatal observations collected during a run
type Diagnostics struct {
	OpaqueConstructs int         `json:"opaque_constructs"`
	Unclassified     []MetricKey `json:"unclassified,omitempty"`
	ExcludedClasses  int         `json:"excluded_classes"`
	ExcludedMethods  int         `json:"excluded_methods"`
}
