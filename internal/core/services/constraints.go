package services

import (
	"fmt"
	"strings"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// ConstraintService holds the active constraint set and compiles it to
// the constraints file the solver reads. The file path is fixed for the
// service's lifetime.
type ConstraintService struct {
	path    string
	current domain.ConstraintSet
}

// NewConstraintService creates a constraint service writing to path,
// starting with an empty constraint set.
func NewConstraintService(path string) *ConstraintService {
	return &ConstraintService{path: path}
}

// Set validates and replaces the active constraint set wholesale.
// There is no merging across calls: constraints not re-supplied are gone.
// On validation failure the previous set stays active.
func (s *ConstraintService) Set(set domain.ConstraintSet) error {
	if err := set.Validate(); err != nil {
		return err
	}
	s.current = set
	return nil
}

// Current returns the active constraint set.
func (s *ConstraintService) Current() domain.ConstraintSet {
	return s.current
}

// Persist compiles the active set and writes the constraints file
// atomically. Compilation failure means no write happens at all, so a
// partially written constraints file is never observable. An empty set
// writes an empty file, which the solver treats as no constraints.
func (s *ConstraintService) Persist() error {
	lines, err := s.current.Compile()
	if err != nil {
		return err
	}

	var text string
	if len(lines) > 0 {
		text = strings.Join(lines, "\n") + "\n"
	}
	if err := writeFileAtomic(s.path, []byte(text)); err != nil {
		return fmt.Errorf("persisting constraints: %w", err)
	}
	logger.Debug("wrote %d constraint line(s) to %s", len(lines), s.path)
	return nil
}

// Path returns the constraints file path.
func (s *ConstraintService) Path() string {
	return s.path
}
