package services

import (
	"fmt"
	"sort"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// SettingsService holds the engine's current solver settings and
// persists them to the settings file the solver reads. The file path is
// fixed for the service's lifetime.
type SettingsService struct {
	path    string
	current domain.Settings
}

// NewSettingsService creates a settings service writing to path,
// starting from the built-in defaults.
func NewSettingsService(path string) *SettingsService {
	return &SettingsService{
		path:    path,
		current: domain.DefaultSettings(),
	}
}

// Set merges overrides key-wise onto the current settings and returns
// the keys unknown to the built-in defaults. Unknown keys are kept and
// persisted anyway: the solver's accepted vocabulary is undocumented,
// so validation is deferred to its own argument parsing.
func (s *SettingsService) Set(overrides domain.Settings) []string {
	defaults := domain.DefaultSettings()
	var unknown []string
	for k := range overrides {
		if _, ok := defaults[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)

	merged, _ := s.current.Merge(overrides)
	s.current = merged

	for _, k := range unknown {
		logger.Warn("setting %q is not a known solver parameter; passing it through", k)
	}
	return unknown
}

// Current returns a copy of the active settings.
func (s *SettingsService) Current() domain.Settings {
	copied := make(domain.Settings, len(s.current))
	for k, v := range s.current {
		copied[k] = v
	}
	return copied
}

// Persist writes the settings file atomically, overwriting any previous
// content. One sorted "key = value" line per setting.
func (s *SettingsService) Persist() error {
	if err := writeFileAtomic(s.path, []byte(s.current.Render())); err != nil {
		return fmt.Errorf("persisting settings: %w", err)
	}
	logger.Debug("wrote %d settings to %s", len(s.current), s.path)
	return nil
}

// Path returns the settings file path.
func (s *SettingsService) Path() string {
	return s.path
}
