package runtime

// Env is a persistent, value-semantic mapping from identifier to Value.
// It is represented as a cons-list of bindings rather than a mutable
// hash map so that capturing an Env in a Frame (see internal/vm) is an
// O(1) pointer copy with structural sharing — every frame on the control
// stack can hold its own snapshot of the environment at no copying cost.
// A nil *Env is the empty environment.
type Env struct {
	name   string
	value  Value
	parent *Env
}

// NewEnv returns the empty environment.
func NewEnv() *Env { return nil }

// Extend returns a new environment that binds name to v on top of e,
// shadowing any existing binding of name. e itself is unmodified.
func (e *Env) Extend(name string, v Value) *Env {
	return &Env{name: name, value: v, parent: e}
}

// Lookup searches e and its ancestors, innermost first, for name.
func (e *Env) Lookup(name string) (Value, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.value, true
		}
	}
	return nil, false
}

// Names lists bound identifiers innermost first, for diagnostics. A
// shadowed name appears once per binding, in shadowing order.
func (e *Env) Names() []string {
	var names []string
	for cur := e; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}
	return names
}
