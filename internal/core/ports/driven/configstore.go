package driven

// ConfigStore provides persistent application configuration.
// Keys use dot notation (e.g. "export.format").
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns the empty string for missing or non-string values.
	GetString(key string) string

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Load reads configuration from the backing store.
	Load() error

	// Path returns the backing store location, for display.
	Path() string
}
