package domain

import (
	"fmt"
	"strings"
)

// VariableName identifies a random variable in the data set. The same
// name must appear consistently in the data file, the constraints file
// and the parsed result.
type VariableName string

// String returns the string representation.
func (v VariableName) String() string {
	return string(v)
}

// EdgeRequirement demands the directed arc Parent -> Child be present
// in the learned network.
type EdgeRequirement struct {
	Parent VariableName
	Child  VariableName
}

// NonEdgeRequirement forbids the directed arc Parent -> Child.
type NonEdgeRequirement struct {
	Parent VariableName
	Child  VariableName
}

// IndependenceStatement requires the Left variable set to be independent
// of the Right set given the (possibly empty) conditioning set.
type IndependenceStatement struct {
	Left  []VariableName
	Right []VariableName
	Given []VariableName
}

// ConstraintSet aggregates the structural requirements active for one
// learn run. Each SetConstraints call replaces the set wholesale; there
// is no incremental merge across calls.
type ConstraintSet struct {
	Edges          []EdgeRequirement
	NonEdges       []NonEdgeRequirement
	Independencies []IndependenceStatement
}

// Empty reports whether the set carries no requirements at all.
func (c ConstraintSet) Empty() bool {
	return len(c.Edges) == 0 && len(c.NonEdges) == 0 && len(c.Independencies) == 0
}

// Validate rejects constraints that reference a syntactically empty
// variable name. Duplicate or mutually conflicting constraints are NOT
// rejected: they are passed through verbatim and conflict detection is
// left to the solver, which reports infeasibility.
func (c ConstraintSet) Validate() error {
	for _, e := range c.Edges {
		if e.Parent == "" || e.Child == "" {
			return &MalformedConstraintError{
				Reason: fmt.Sprintf("edge requirement %q -> %q has an empty variable name", e.Parent, e.Child),
			}
		}
	}
	for _, e := range c.NonEdges {
		if e.Parent == "" || e.Child == "" {
			return &MalformedConstraintError{
				Reason: fmt.Sprintf("non-edge requirement %q -> %q has an empty variable name", e.Parent, e.Child),
			}
		}
	}
	for _, ind := range c.Independencies {
		if len(ind.Left) == 0 || len(ind.Right) == 0 {
			return &MalformedConstraintError{
				Reason: "independence statement has an empty left or right set",
			}
		}
		for _, set := range [][]VariableName{ind.Left, ind.Right, ind.Given} {
			for _, v := range set {
				if v == "" {
					return &MalformedConstraintError{
						Reason: "independence statement references an empty variable name",
					}
				}
			}
		}
	}
	return nil
}

// Compile produces one constraint line per requirement in the solver's
// dagconstraints grammar:
//
//	child<-parent      arc forced present
//	~child<-parent     arc forced absent
//	A,B_|_C|D          A,B independent of C given D
//
// The conditioning field is always written, even when empty, so that
// "no conditioning set" is distinguishable from a trivial one. Groups
// appear in the order edges, non-edges, independencies, each preserving
// input order. Validation failure means no lines are produced.
func (c ConstraintSet) Compile() ([]string, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(c.Edges)+len(c.NonEdges)+len(c.Independencies))
	for _, e := range c.Edges {
		lines = append(lines, fmt.Sprintf("%s<-%s", e.Child, e.Parent))
	}
	for _, e := range c.NonEdges {
		lines = append(lines, fmt.Sprintf("~%s<-%s", e.Child, e.Parent))
	}
	for _, ind := range c.Independencies {
		lines = append(lines, fmt.Sprintf("%s_|_%s|%s",
			joinNames(ind.Left), joinNames(ind.Right), joinNames(ind.Given)))
	}
	return lines, nil
}

// ParseConstraints recovers a structured constraint set from compiled
// lines. It accepts exactly the grammar Compile emits and is the basis
// of the compiler round-trip tests.
func ParseConstraints(lines []string) (ConstraintSet, error) {
	var set ConstraintSet
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.Contains(line, "_|_"):
			ind, err := parseIndependence(line)
			if err != nil {
				return ConstraintSet{}, err
			}
			set.Independencies = append(set.Independencies, ind)

		case strings.HasPrefix(line, "~"):
			child, parent, err := parseArc(strings.TrimPrefix(line, "~"))
			if err != nil {
				return ConstraintSet{}, err
			}
			set.NonEdges = append(set.NonEdges, NonEdgeRequirement{Parent: parent, Child: child})

		default:
			child, parent, err := parseArc(line)
			if err != nil {
				return ConstraintSet{}, err
			}
			set.Edges = append(set.Edges, EdgeRequirement{Parent: parent, Child: child})
		}
	}
	return set, nil
}

// parseArc splits "child<-parent" into its endpoints.
func parseArc(line string) (child, parent VariableName, err error) {
	c, p, ok := strings.Cut(line, "<-")
	if !ok || c == "" || p == "" {
		return "", "", &MalformedConstraintError{
			Reason: fmt.Sprintf("arc constraint %q is not of the form child<-parent", line),
		}
	}
	return VariableName(c), VariableName(p), nil
}

// parseIndependence splits "L_|_R|C" into its three variable sets.
// The conditioning field may be empty but must be present.
func parseIndependence(line string) (IndependenceStatement, error) {
	left, rest, _ := strings.Cut(line, "_|_")
	right, given, ok := strings.Cut(rest, "|")
	if left == "" || right == "" || !ok {
		return IndependenceStatement{}, &MalformedConstraintError{
			Reason: fmt.Sprintf("independence constraint %q is not of the form L_|_R|C", line),
		}
	}
	return IndependenceStatement{
		Left:  splitNames(left),
		Right: splitNames(right),
		Given: splitNames(given),
	}, nil
}

// joinNames renders a variable set as a comma-separated member list.
func joinNames(names []VariableName) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ",")
}

// splitNames parses a comma-separated member list. An empty field is an
// empty set, not a set containing the empty name.
func splitNames(field string) []VariableName {
	if field == "" {
		return nil
	}
	parts := strings.Split(field, ",")
	names := make([]VariableName, len(parts))
	for i, p := range parts {
		names[i] = VariableName(p)
	}
	return names
}
