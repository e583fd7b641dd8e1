package model

// NodeKind tags a body node. The set is closed; anything else a front-end
// emits is treated as an unsupported construct.
type NodeKind string

const (
	NodeBlock     NodeKind = "block"
	NodeStatement NodeKind = "statement"
	NodeLiteral   NodeKind = "literal"
	NodeIf        NodeKind = "if"
	NodeWhen      NodeKind = "when"
	NodeLoop      NodeKind = "loop"
	NodeTry       NodeKind = "try"
	NodeBinary    NodeKind = "binary"
	NodeAccess    NodeKind = "access"
	NodeCall      NodeKind = "call"
	NodeLocal     NodeKind = "local"
	NodeJump      NodeKind = "jump"
	NodeLambda    NodeKind = "lambda"
)

// LoopKind distinguishes loop statements
type LoopKind string

const (
	LoopFor     LoopKind = "for"
	LoopForEach LoopKind = "foreach"
	LoopWhile   LoopKind = "while"
	LoopDoWhile LoopKind = "do_while"
)

// Operator of a binary expression. Only the short-circuit and elvis
// operators matter to metrics; everything else is OpOther.
type Operator string

const (
	OpAnd   Operator = "and"
	OpOr    Operator = "or"
	OpElvis Operator = "elvis"
	OpOther Operator = "other"
)

// JumpKind distinguishes jump statements
type JumpKind string

const (
	JumpBreak    JumpKind = "break"
	JumpContinue JumpKind = "continue"
	JumpReturn   JumpKind = "return"
	JumpThrow    JumpKind = "throw"
)

// ReceiverKind says whose state a member access touches
type ReceiverKind string

const (
	ReceiverImplicitSelf ReceiverKind = "implicit_self"
	ReceiverExplicitSelf ReceiverKind = "explicit_self"
	ReceiverLocal        ReceiverKind = "local"
	ReceiverForeign      ReceiverKind = "foreign"
)

// IsSelf reports whether the receiver is the enclosing instance
func (r ReceiverKind) IsSelf() bool {
	return r == ReceiverImplicitSelf || r == ReceiverExplicitSelf
}

// TargetKind classifies a call as resolved by the front-end
type TargetKind string

const (
	TargetConstructor TargetKind = "constructor"
	TargetSelf        TargetKind = "self"
	TargetForeign     TargetKind = "foreign"
	TargetLibrary     TargetKind = "library"
)

// Branch is one arm of a multi-way branch
type Branch struct {
	Conditions []Node `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Body       []Node `json:"body,omitempty" yaml:"body,omitempty"`
	Else       bool   `json:"else,omitempty" yaml:"else,omitempty"`
}

// CatchClause is one catch handler of a try statement
type CatchClause struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Body []Node `json:"body,omitempty" yaml:"body,omitempty"`
}

// Node is one element of a method body. Which fields are meaningful depends
// on Kind.
type Node struct {
	Kind NodeKind `json:"kind" yaml:"kind"`

	// block, statement, literal; the value of a return or throw jump
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`

	// if, loop
	Condition *Node  `json:"condition,omitempty" yaml:"condition,omitempty"`
	Then      []Node `json:"then,omitempty" yaml:"then,omitempty"`
	Else      []Node `json:"else,omitempty" yaml:"else,omitempty"`

	// when
	Subject  *Node    `json:"subject,omitempty" yaml:"subject,omitempty"`
	Branches []Branch `json:"branches,omitempty" yaml:"branches,omitempty"`

	// loop, try, lambda
	Loop    LoopKind      `json:"loop,omitempty" yaml:"loop,omitempty"`
	Body    []Node        `json:"body,omitempty" yaml:"body,omitempty"`
	Catches []CatchClause `json:"catches,omitempty" yaml:"catches,omitempty"`
	Finally []Node        `json:"finally,omitempty" yaml:"finally,omitempty"`

	// binary
	Op    Operator `json:"op,omitempty" yaml:"op,omitempty"`
	Left  *Node    `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Node    `json:"right,omitempty" yaml:"right,omitempty"`

	// access, call; Name is also the loop variable of a foreach
	Receiver     ReceiverKind `json:"receiver,omitempty" yaml:"receiver,omitempty"`
	ReceiverName string       `json:"receiver_name,omitempty" yaml:"receiver_name,omitempty"`
	ReceiverType string       `json:"receiver_type,omitempty" yaml:"receiver_type,omitempty"`
	Object       *Node        `json:"object,omitempty" yaml:"object,omitempty"`
	Name         string       `json:"name,omitempty" yaml:"name,omitempty"`
	Write        bool         `json:"write,omitempty" yaml:"write,omitempty"`
	Safe         bool         `json:"safe,omitempty" yaml:"safe,omitempty"`

	// call; Args also carries lambda parameters
	Target     TargetKind `json:"target,omitempty" yaml:"target,omitempty"`
	Callee     string     `json:"callee,omitempty" yaml:"callee,omitempty"`
	DataAccess bool       `json:"data_access,omitempty" yaml:"data_access,omitempty"`
	Args       []Node     `json:"args,omitempty" yaml:"args,omitempty"`

	// local
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Init *Node  `json:"init,omitempty" yaml:"init,omitempty"`

	// jump, loop
	Jump  JumpKind `json:"jump,omitempty" yaml:"jump,omitempty"`
	Label string   `json:"label,omitempty" yaml:"label,omitempty"`
}

// IsElseIf reports whether an else part is a chained if
func IsElseIf(elsePart []Node) bool {
	return len(elsePart) == 1 && elsePart[0].Kind == NodeIf
}

// Inspect traverses nodes in pre-order. If fn returns false, the children
// of that node are skipped.
func Inspect(nodes []Node, fn func(*Node) bool) {
	for i := range nodes {
		inspectNode(&nodes[i], fn)
	}
}

func inspectNode(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, p := range []*Node{n.Object, n.Condition, n.Subject, n.Left, n.Right, n.Init} {
		inspectNode(p, fn)
	}
	for _, list := range [][]Node{n.Children, n.Then, n.Else, n.Body, n.Args, n.Finally} {
		Inspect(list, fn)
	}
	for i := range n.Branches {
		Inspect(n.Branches[i].Conditions, fn)
		Inspect(n.Branches[i].Body, fn)
	}
	for i := range n.Catches {
		Inspect(n.Catches[i].Body, fn)
	}
}
