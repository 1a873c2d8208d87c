package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind identifies the scalar type of a setting value.
type ValueKind int

// Available value kinds. Solver settings are scalars only; there is no
// nested structure in the settings grammar.
const (
	// ValueString is a quoted string value.
	ValueString ValueKind = iota

	// ValueInt is a bare integer value.
	ValueInt

	// ValueFloat is a bare floating-point value.
	ValueFloat
)

// SettingValue is a closed scalar variant: string, integer or float.
// The zero value is the empty string.
type SettingValue struct {
	kind ValueKind
	str  string
	num  int64
	flt  float64
}

// String creates a string setting value.
func String(s string) SettingValue {
	return SettingValue{kind: ValueString, str: s}
}

// Int creates an integer setting value.
func Int(i int64) SettingValue {
	return SettingValue{kind: ValueInt, num: i}
}

// Float creates a floating-point setting value.
func Float(f float64) SettingValue {
	return SettingValue{kind: ValueFloat, flt: f}
}

// Kind returns the scalar type of the value.
func (v SettingValue) Kind() ValueKind {
	return v.kind
}

// Render returns the value in the solver's settings grammar.
// Strings are double-quoted, numbers are written bare.
func (v SettingValue) Render() string {
	switch v.kind {
	case ValueInt:
		return strconv.FormatInt(v.num, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	default:
		return strconv.Quote(v.str)
	}
}

// Equal reports whether two values have the same kind and content.
func (v SettingValue) Equal(o SettingValue) bool {
	return v == o
}

// ParseSettingValue interprets a rendered value. Quoted text becomes a
// string, otherwise integer parsing is tried before float; anything else
// is kept as a bare string.
func ParseSettingValue(raw string) SettingValue {
	raw = strings.TrimSpace(raw)
	if unquoted, err := strconv.Unquote(raw); err == nil && strings.HasPrefix(raw, `"`) {
		return String(unquoted)
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return Float(f)
	}
	return String(raw)
}

// Settings maps solver parameter names to scalar values.
// Keys follow the solver's hierarchical naming, e.g. "gobnilp/scoring/palim".
type Settings map[string]SettingValue

// Default solver parameter names. The solver accepts many more; unknown
// keys are deliberately passed through because the solver's accepted key
// set is undocumented and changes across versions.
const (
	// SettingDelimiter is the data file column delimiter.
	SettingDelimiter = "gobnilp/delimiter"

	// SettingMergeDelimiters controls merging of adjacent delimiters.
	SettingMergeDelimiters = "gobnilp/mergedelimiters"

	// SettingConstraintsFile is the path of the structural constraints file.
	SettingConstraintsFile = "gobnilp/dagconstraintsfile"

	// SettingNames indicates whether the data file carries a header row.
	SettingNames = "gobnilp/scoring/names"

	// SettingAlpha is the equivalent sample size for BDeu scoring.
	SettingAlpha = "gobnilp/scoring/alpha"

	// SettingParentLimit caps the number of parents per node.
	SettingParentLimit = "gobnilp/scoring/palim"

	// SettingPrune enables pruning during scoring.
	SettingPrune = "gobnilp/scoring/prune"

	// SettingEdgePenalty biases the search toward sparser graphs.
	SettingEdgePenalty = "gobnilp/edge_penalty"

	// SettingNetworkCount is the number of distinct networks to learn.
	SettingNetworkCount = "gobnilp/nbns"

	// SettingMinFounders is the minimum number of founder variables.
	SettingMinFounders = "gobnilp/minfounders"

	// SettingTimeLimit bounds the solver's wall-clock search time (seconds).
	SettingTimeLimit = "limits/time"

	// SettingGapLimit is the optimality gap at which the search stops.
	SettingGapLimit = "limits/gap"
)

// DefaultSettings returns the baseline solver configuration. Every learn
// run starts from these values with caller overrides merged on top.
func DefaultSettings() Settings {
	return Settings{
		SettingDelimiter:       String("whitespace"),
		SettingMergeDelimiters: String("TRUE"),
		SettingNames:           String("FALSE"),
		SettingAlpha:           Float(1.0),
		SettingParentLimit:     Int(3),
		SettingPrune:           String("TRUE"),
		SettingEdgePenalty:     Float(0.0),
		SettingNetworkCount:    Int(1),
		SettingMinFounders:     Int(0),
		SettingTimeLimit:       Int(3600),
		SettingGapLimit:        Float(0.0),
	}
}

// Merge returns a copy of s with overrides applied key-wise on top, plus
// the override keys not present in s. Unknown keys are still merged;
// validation of the key vocabulary is deferred to the solver itself.
func (s Settings) Merge(overrides Settings) (Settings, []string) {
	merged := make(Settings, len(s)+len(overrides))
	for k, v := range s {
		merged[k] = v
	}

	var unknown []string
	for k, v := range overrides {
		if _, ok := s[k]; !ok {
			unknown = append(unknown, k)
		}
		merged[k] = v
	}
	sort.Strings(unknown)

	return merged, unknown
}

// Render emits the settings in the solver grammar, one "key = value"
// per line, sorted by key for determinism.
func (s Settings) Render() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s\n", k, s[k].Render())
	}
	return b.String()
}

// ParseSettings reads settings back from the rendered grammar.
// Blank lines and lines beginning with '#' are ignored, matching the
// solver's own settings reader.
func ParseSettings(text string) (Settings, error) {
	settings := make(Settings)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: settings line %q has no '='", ErrInvalidInput, line)
		}
		settings[strings.TrimSpace(key)] = ParseSettingValue(value)
	}
	return settings, nil
}
