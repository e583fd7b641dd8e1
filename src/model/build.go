package model

// Constructors for body nodes. Front-ends written in Go and tests use these
// instead of filling Node literals by hand.

func Block(children ...Node) Node {
	return Node{Kind: NodeBlock, Children: children}
}

func Stmt(children ...Node) Node {
	return Node{Kind: NodeStatement, Children: children}
}

func Lit() Node {
	return Node{Kind: NodeLiteral}
}

// If builds an if statement; pass another If as the only else node to form
// an else-if chain.
func If(cond Node, then []Node, elsePart ...Node) Node {
	return Node{Kind: NodeIf, Condition: &cond, Then: then, Else: elsePart}
}

func When(subject *Node, branches ...Branch) Node {
	return Node{Kind: NodeWhen, Subject: subject, Branches: branches}
}

func Arm(conds []Node, body ...Node) Branch {
	return Branch{Conditions: conds, Body: body}
}

func ElseArm(body ...Node) Branch {
	return Branch{Body: body, Else: true}
}

func Loop(kind LoopKind, cond *Node, body ...Node) Node {
	return Node{Kind: NodeLoop, Loop: kind, Condition: cond, Body: body}
}

func Try(body []Node, catches []CatchClause, finally ...Node) Node {
	return Node{Kind: NodeTry, Body: body, Catches: catches, Finally: finally}
}

func Catch(typ string, body ...Node) CatchClause {
	return CatchClause{Name: "e", Type: typ, Body: body}
}

func Binary(op Operator, left, right Node) Node {
	return Node{Kind: NodeBinary, Op: op, Left: &left, Right: &right}
}

func And(left, right Node) Node   { return Binary(OpAnd, left, right) }
func Or(left, right Node) Node    { return Binary(OpOr, left, right) }
func Elvis(left, right Node) Node { return Binary(OpElvis, left, right) }

// Read is an unqualified member read, subject to local shadowing
func Read(name string) Node {
	return Node{Kind: NodeAccess, Receiver: ReceiverImplicitSelf, Name: name}
}

// Write is an unqualified member write
func Write(name string) Node {
	return Node{Kind: NodeAccess, Receiver: ReceiverImplicitSelf, Name: name, Write: true}
}

// ThisRead is an explicitly qualified member read (this.name)
func ThisRead(name string) Node {
	return Node{Kind: NodeAccess, Receiver: ReceiverExplicitSelf, Name: name}
}

func ThisWrite(name string) Node {
	return Node{Kind: NodeAccess, Receiver: ReceiverExplicitSelf, Name: name, Write: true}
}

// LocalRead reads a local variable or parameter by name
func LocalRead(name string) Node {
	return Node{Kind: NodeAccess, Receiver: ReceiverLocal, Name: name}
}

// ForeignRead reads field name of object recv whose declared type is typ
func ForeignRead(recv, typ, name string) Node {
	return Node{Kind: NodeAccess, Receiver: ReceiverForeign, ReceiverName: recv, ReceiverType: typ, Name: name}
}

func ForeignWrite(recv, typ, name string) Node {
	n := ForeignRead(recv, typ, name)
	n.Write = true
	return n
}

// SafeRead is recv?.name
func SafeRead(recv, typ, name string) Node {
	n := ForeignRead(recv, typ, name)
	n.Safe = true
	return n
}

func SelfCall(callee string, args ...Node) Node {
	return Node{Kind: NodeCall, Target: TargetSelf, Callee: callee, Args: args}
}

func NewCall(typ string, args ...Node) Node {
	return Node{Kind: NodeCall, Target: TargetConstructor, Callee: typ, ReceiverType: typ, Args: args}
}

func ForeignCall(recv, typ, callee string, args ...Node) Node {
	return Node{Kind: NodeCall, Target: TargetForeign, ReceiverName: recv, ReceiverType: typ, Callee: callee, Args: args}
}

// AccessorCall is a foreign getter or setter call, counted as data access
func AccessorCall(recv, typ, callee string, args ...Node) Node {
	n := ForeignCall(recv, typ, callee, args...)
	n.DataAccess = true
	return n
}

func LibraryCall(recv, typ, callee string, args ...Node) Node {
	return Node{Kind: NodeCall, Target: TargetLibrary, ReceiverName: recv, ReceiverType: typ, Callee: callee, Args: args}
}

func Local(name, typ string, init *Node) Node {
	return Node{Kind: NodeLocal, Name: name, Type: typ, Init: init}
}

func Jump(kind JumpKind, label string) Node {
	return Node{Kind: NodeJump, Jump: kind, Label: label}
}

func Lambda(body ...Node) Node {
	return Node{Kind: NodeLambda, Body: body}
}
