package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

// reportMarker opens the learned-structure report in solver output.
// Everything before it is search progress and is ignored.
const reportMarker = "BN has score"

// ParseResult reconstructs the learned network from captured solver
// output. The report consists of the marker line carrying the total
// score, followed by one family line per node:
//
//	child<-parent1,parent2 score
//
// where the parent list may be empty. Both endpoints of every arc must
// belong to variables. A missing report marker is an UnparsableResult
// error rather than an empty network, because an empty graph would be
// indistinguishable from "learned no edges".
func ParseResult(output string, variables []domain.VariableName) (*domain.LearnedNetwork, error) {
	lines := strings.Split(output, "\n")

	start := -1
	var total float64
	for i, line := range lines {
		if strings.Contains(line, reportMarker) {
			start = i
			total = parseReportScore(line)
			break
		}
	}
	if start == -1 {
		return nil, &domain.UnparsableResultError{
			Reason: fmt.Sprintf("output contains no %q report", reportMarker),
		}
	}

	known := make(map[domain.VariableName]bool, len(variables))
	for _, v := range variables {
		known[v] = true
	}

	var arcs []domain.Arc
	families := 0
	for _, raw := range lines[start+1:] {
		line := strings.TrimSpace(raw)
		if !strings.Contains(line, "<-") {
			if line == "" && families == 0 {
				continue
			}
			break
		}

		child, parents, score, err := parseFamilyLine(line)
		if err != nil {
			return nil, err
		}
		if !known[child] {
			return nil, &domain.UnparsableResultError{
				Reason: fmt.Sprintf("report names unknown variable %q", child),
			}
		}
		for _, p := range parents {
			if !known[p] {
				return nil, &domain.UnparsableResultError{
					Reason: fmt.Sprintf("report names unknown variable %q", p),
				}
			}
			arcs = append(arcs, domain.Arc{Parent: p, Child: child, Score: score})
		}
		families++
	}

	if families == 0 {
		return nil, &domain.UnparsableResultError{
			Reason: "report contains no family lines",
		}
	}

	return &domain.LearnedNetwork{
		Variables: append([]domain.VariableName(nil), variables...),
		Arcs:      arcs,
		Score:     total,
	}, nil
}

// parseReportScore extracts the trailing total score from the marker
// line. Absence is tolerated; some solver verbosity levels omit it.
func parseReportScore(line string) float64 {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0
	}
	score, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0
	}
	return score
}

// parseFamilyLine splits "child<-p1,p2 score" into its parts. The
// parent list may be empty: "child<- score".
func parseFamilyLine(line string) (domain.VariableName, []domain.VariableName, float64, error) {
	head, rest, _ := strings.Cut(line, "<-")
	child := domain.VariableName(strings.TrimSpace(head))
	if child == "" {
		return "", nil, 0, &domain.UnparsableResultError{
			Reason: fmt.Sprintf("family line %q has no child variable", line),
		}
	}

	fields := strings.Fields(rest)
	switch len(fields) {
	case 0:
		return "", nil, 0, &domain.UnparsableResultError{
			Reason: fmt.Sprintf("family line %q has no score", line),
		}

	case 1:
		// Either a bare score (empty parent set) or a parent list with
		// the score missing; only the former is valid.
		score, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return "", nil, 0, &domain.UnparsableResultError{
				Reason: fmt.Sprintf("family line %q has no score", line),
			}
		}
		return child, nil, score, nil

	case 2:
		score, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return "", nil, 0, &domain.UnparsableResultError{
				Reason: fmt.Sprintf("family line %q has malformed score %q", line, fields[1]),
			}
		}
		var parents []domain.VariableName
		for _, p := range strings.Split(fields[0], ",") {
			if p == "" {
				continue
			}
			parents = append(parents, domain.VariableName(p))
		}
		return child, parents, score, nil

	default:
		return "", nil, 0, &domain.UnparsableResultError{
			Reason: fmt.Sprintf("family line %q has unexpected fields", line),
		}
	}
}
