package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// Well-known configuration keys.
const (
	KeyToolchainRoot   = "toolchain.root"
	KeySolverVersion   = "toolchain.solver_version"
	KeyBackendVersion  = "toolchain.backend_version"
	KeyWorkDir         = "work.dir"
	KeySolverVerbosity = "solver.verbosity"
	KeyDataDelimiter   = "data.delimiter"
)

// ConfigStore keeps engine configuration in a TOML file under the gobn
// config directory. Nested tables are addressed with dot-notation keys.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// NewConfigStore opens the config store rooted at configDir, creating the
// directory and loading any existing config.toml. An empty configDir
// defaults to ~/.gobn.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".gobn")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}

	s := &ConfigStore{
		path:   filepath.Join(configDir, "config.toml"),
		values: make(map[string]any),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value, or "" when the key is
// absent or holds a non-string.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer configuration value. TOML decodes integers
// as int64, so both widths are accepted.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}
	b, _ := val.(bool)
	return b
}

// Set stores a configuration value and persists the file immediately, so
// a crash between Set and exit never loses the change.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persist()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist()
}

func (s *ConfigStore) persist() error {
	out, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(s.path, out, 0600)
}

// Load reads the TOML file, replacing the in-memory values. A missing
// file leaves the store empty rather than failing.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = make(map[string]any)
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	var decoded map[string]any
	if err := toml.Unmarshal(raw, &decoded); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	s.values = make(map[string]any)
	flattenInto(s.values, decoded, "")
	return nil
}

// flattenInto walks nested TOML tables and records leaves under
// dot-notation keys, so [toolchain] root = "/opt" reads back as
// "toolchain.root".
func flattenInto(dst map[string]any, src map[string]any, prefix string) {
	for key, value := range src {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flattenInto(dst, nested, full)
			continue
		}
		dst[full] = value
	}
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.path
}
