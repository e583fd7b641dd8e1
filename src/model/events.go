package model

// Event is one observation emitted by the body walker. The variants below are
// the complete set; consumers switch on the concrete type.
type Event interface {
	isEvent()
}

// ControlKind identifies a control-flow event
type ControlKind string

const (
	ControlIf             ControlKind = "if"
	ControlElseIf         ControlKind = "else_if"
	ControlAnd            ControlKind = "and"
	ControlOr             ControlKind = "or"
	ControlLoop           ControlKind = "loop"
	ControlWhenBranch     ControlKind = "when_branch"
	ControlCatch          ControlKind = "catch"
	ControlElvis          ControlKind = "elvis"
	ControlSafeNavigation ControlKind = "safe_navigation"
	ControlLabeledJump    ControlKind = "labeled_jump"
)

// ControlEvent marks a decision point or control construct.
//
// Nesting is the combined nesting depth at the point the construct is
// entered. ConditionDepth and LoopDepth are the depths of the construct in
// its own family, counting itself, and are only set for conditional and loop
// constructs respectively.
type ControlEvent struct {
	Kind           ControlKind
	Loop           LoopKind
	Nesting        int
	ConditionDepth int
	LoopDepth      int
	// Chain groups boolean operators of one expression; Branch is the arm
	// index within a when.
	Chain  int
	Branch int
	Label  string
}

// AccessEvent is a read or write of a named member or variable, after local
// shadowing has been applied.
type AccessEvent struct {
	Receiver     ReceiverKind
	ReceiverName string
	ReceiverType string
	Name         string
	Write        bool
	Safe         bool
	Shadowed     bool
}

// CallEvent is an invocation classified by the front-end
type CallEvent struct {
	Target       TargetKind
	Callee       string
	ReceiverName string
	ReceiverType string
	DataAccess   bool
	ArgCount     int
	Safe         bool
}

// OpaqueEvent stands in for a construct the walker does not understand
type OpaqueEvent struct {
	Kind NodeKind
}

func (ControlEvent) isEvent() {}
func (AccessEvent) isEvent()  {}
func (CallEvent) isEvent()    {}
func (OpaqueEvent) isEvent()  {}
