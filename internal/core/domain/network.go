package domain

// Arc is one directed edge of a learned network, annotated with the
// local score the solver reported for the child's parent set.
type Arc struct {
	Parent VariableName
	Child  VariableName

	// Score is the local score of the child's chosen parent set. All
	// arcs into the same child share it.
	Score float64
}

// LearnedNetwork is the directed graph recovered from a successful
// solver run. The node set equals the data table's variable-name set.
// Networks are created only by the result parser and are never mutated
// after being returned; the accessors below are reads only.
//
// The solver guarantees the structure is a DAG; that property is trusted
// and not re-verified here.
type LearnedNetwork struct {
	// Variables is the ordered node set, matching the normalised data.
	Variables []VariableName

	// Arcs is the learned directed edge set.
	Arcs []Arc

	// Score is the total network score the solver reported.
	Score float64
}

// HasArc reports whether the directed arc parent -> child was learned.
func (n *LearnedNetwork) HasArc(parent, child VariableName) bool {
	for _, a := range n.Arcs {
		if a.Parent == parent && a.Child == child {
			return true
		}
	}
	return false
}

// Parents returns the learned parent set of a variable, in report order.
func (n *LearnedNetwork) Parents(child VariableName) []VariableName {
	var parents []VariableName
	for _, a := range n.Arcs {
		if a.Child == child {
			parents = append(parents, a.Parent)
		}
	}
	return parents
}

// Children returns the learned children of a variable, in report order.
func (n *LearnedNetwork) Children(parent VariableName) []VariableName {
	var children []VariableName
	for _, a := range n.Arcs {
		if a.Parent == parent {
			children = append(children, a.Child)
		}
	}
	return children
}
