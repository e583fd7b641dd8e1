package walker

import (
	"quality-metrics/src/model"
)

// Trace is the ordered event sequence of one method body
type Trace struct {
	Class  *model.ClassModel
	Method *model.MethodModel
	Events []model.Event
	// Opaque counts constructs the walker could not classify
	Opaque int
}

// Walker performs a single pre-order pass over a method body. A Walker is
// used for exactly one method; Walk creates a fresh one per call.
type Walker struct {
	trace *Trace

	nesting   int
	condDepth int
	loopDepth int
	chains    int

	scopes []map[string]bool
}

// Walk emits the events of a method body. Parameters form the outermost
// lexical scope, so they shadow same-named fields like locals do.
func Walk(class *model.ClassModel, method *model.MethodModel) *Trace {
	w := &Walker{trace: &Trace{Class: class, Method: method}}

	w.push()
	for _, p := range method.Parameters {
		w.declare(p.Name)
	}
	w.block(method.Body)
	w.pop()

	return w.trace
}

func (w *Walker) emit(e model.Event) {
	w.trace.Events = append(w.trace.Events, e)
}

func (w *Walker) push() {
	w.scopes = append(w.scopes, make(map[string]bool))
}

func (w *Walker) pop() {
	w.scopes = w.scopes[:len(w.scopes)-1]
}

func (w *Walker) declare(name string) {
	if name != "" {
		w.scopes[len(w.scopes)-1][name] = true
	}
}

func (w *Walker) isLocal(name string) bool {
	for i := len(w.scopes) - 1; i >= 0; i-- {
		if w.scopes[i][name] {
			return true
		}
	}
	return false
}

// block walks a statement list in its own lexical scope
func (w *Walker) block(nodes []model.Node) {
	w.push()
	w.nodes(nodes)
	w.pop()
}

func (w *Walker) nodes(nodes []model.Node) {
	for i := range nodes {
		w.node(&nodes[i])
	}
}

func (w *Walker) expr(n *model.Node) {
	if n != nil {
		w.node(n)
	}
}

func (w *Walker) node(n *model.Node) {
	switch n.Kind {
	case model.NodeBlock:
		w.block(n.Children)
	case model.NodeStatement, model.NodeLiteral:
		w.nodes(n.Children)
	case model.NodeIf:
		w.ifNode(n, model.ControlIf)
	case model.NodeWhen:
		w.when(n)
	case model.NodeLoop:
		w.loop(n)
	case model.NodeTry:
		w.try(n)
	case model.NodeBinary:
		w.binary(n, 0)
	case model.NodeAccess:
		w.access(n)
	case model.NodeCall:
		w.call(n)
	case model.NodeLocal:
		// The initializer is evaluated before the name comes into scope
		w.expr(n.Init)
		w.declare(n.Name)
	case model.NodeJump:
		w.jump(n)
	case model.NodeLambda:
		// A lambda body is one nesting level deeper but is not a condition
		w.push()
		for _, p := range n.Args {
			w.declare(p.Name)
		}
		w.nesting++
		w.nodes(n.Body)
		w.nesting--
		w.pop()
	default:
		w.trace.Opaque++
		w.emit(model.OpaqueEvent{Kind: n.Kind})
	}
}

// ifNode handles if and else-if. A chained else-if is entered at the depth
// of the if that owns it.
func (w *Walker) ifNode(n *model.Node, kind model.ControlKind) {
	w.emit(model.ControlEvent{
		Kind:           kind,
		Nesting:        w.nesting,
		ConditionDepth: w.condDepth + 1,
	})
	w.expr(n.Condition)

	w.enterCondition()
	w.block(n.Then)
	w.exitCondition()

	switch {
	case model.IsElseIf(n.Else):
		w.ifNode(&n.Else[0], model.ControlElseIf)
	case len(n.Else) > 0:
		w.enterCondition()
		w.block(n.Else)
		w.exitCondition()
	}
}

// when is one nesting level no matter how many arms it has
func (w *Walker) when(n *model.Node) {
	w.expr(n.Subject)

	entry := w.nesting
	w.enterCondition()
	for i := range n.Branches {
		b := &n.Branches[i]
		w.emit(model.ControlEvent{
			Kind:           model.ControlWhenBranch,
			Nesting:        entry,
			ConditionDepth: w.condDepth,
			Branch:         i,
		})
		w.nodes(b.Conditions)
		w.block(b.Body)
	}
	w.exitCondition()
}

func (w *Walker) loop(n *model.Node) {
	w.emit(model.ControlEvent{
		Kind:      model.ControlLoop,
		Loop:      n.Loop,
		Nesting:   w.nesting,
		LoopDepth: w.loopDepth + 1,
		Label:     n.Label,
	})

	w.push()
	w.expr(n.Condition)
	// foreach loop variable
	w.declare(n.Name)

	w.nesting++
	w.loopDepth++
	w.block(n.Body)
	w.loopDepth--
	w.nesting--
	w.pop()
}

// try: catch clauses are decision points at the current depth and their
// bodies nest one level. The try block and finally do not nest.
func (w *Walker) try(n *model.Node) {
	w.block(n.Body)
	for i := range n.Catches {
		c := &n.Catches[i]
		w.emit(model.ControlEvent{Kind: model.ControlCatch, Nesting: w.nesting})
		w.push()
		w.declare(c.Name)
		w.nesting++
		w.nodes(c.Body)
		w.nesting--
		w.pop()
	}
	w.block(n.Finally)
}

// binary emits one event per && or ||. Directly nested boolean operators
// share a chain id; any other node in between starts a new chain.
func (w *Walker) binary(n *model.Node, chain int) {
	switch n.Op {
	case model.OpAnd, model.OpOr:
		if chain == 0 {
			w.chains++
			chain = w.chains
		}
		kind := model.ControlAnd
		if n.Op == model.OpOr {
			kind = model.ControlOr
		}
		w.emit(model.ControlEvent{Kind: kind, Nesting: w.nesting, Chain: chain})
		w.operand(n.Left, chain)
		w.operand(n.Right, chain)
	case model.OpElvis:
		w.emit(model.ControlEvent{Kind: model.ControlElvis, Nesting: w.nesting})
		w.expr(n.Left)
		w.expr(n.Right)
	default:
		w.expr(n.Left)
		w.expr(n.Right)
	}
}

func (w *Walker) operand(n *model.Node, chain int) {
	if n == nil {
		return
	}
	if n.Kind == model.NodeBinary && (n.Op == model.OpAnd || n.Op == model.OpOr) {
		w.binary(n, chain)
		return
	}
	w.node(n)
}

func (w *Walker) access(n *model.Node) {
	if n.Safe {
		w.emit(model.ControlEvent{Kind: model.ControlSafeNavigation, Nesting: w.nesting})
	}

	ev := model.AccessEvent{
		Receiver:     n.Receiver,
		ReceiverName: n.ReceiverName,
		ReceiverType: n.ReceiverType,
		Name:         n.Name,
		Write:        n.Write,
		Safe:         n.Safe,
	}
	if ev.Receiver == "" {
		ev.Receiver = model.ReceiverImplicitSelf
	}
	// Only unqualified names can be shadowed; this.x always means the field
	if ev.Receiver == model.ReceiverImplicitSelf && w.isLocal(n.Name) {
		ev.Receiver = model.ReceiverLocal
		ev.Shadowed = true
	}
	w.emit(ev)

	w.expr(n.Object)
}

func (w *Walker) call(n *model.Node) {
	if n.Safe {
		w.emit(model.ControlEvent{Kind: model.ControlSafeNavigation, Nesting: w.nesting})
	}

	w.emit(model.CallEvent{
		Target:       n.Target,
		Callee:       n.Callee,
		ReceiverName: n.ReceiverName,
		ReceiverType: n.ReceiverType,
		DataAccess:   n.DataAccess,
		ArgCount:     len(n.Args),
		Safe:         n.Safe,
	})

	w.expr(n.Object)
	w.nodes(n.Args)
}

func (w *Walker) jump(n *model.Node) {
	if n.Label != "" && n.Jump != model.JumpThrow {
		w.emit(model.ControlEvent{Kind: model.ControlLabeledJump, Nesting: w.nesting, Label: n.Label})
	}
	w.nodes(n.Children)
}

func (w *Walker) enterCondition() {
	w.nesting++
	w.condDepth++
}

func (w *Walker) exitCondition() {
	w.nesting--
	w.condDepth--
}
