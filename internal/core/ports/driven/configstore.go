package driven

// ConfigStore provides access to the engine's own configuration, such as
// the toolchain location, pinned versions and the data delimiter. This is
// distinct from the solver settings file the engine generates per run.
// Keys use dot notation ("toolchain.root").
type ConfigStore interface {
	// Get retrieves a raw configuration value and whether the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" when absent or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 when absent or not an integer.
	GetInt(key string) int

	// GetBool retrieves a boolean value, or false when absent or not a boolean.
	GetBool(key string) bool

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path, or "" for non-file stores.
	Path() string
}
