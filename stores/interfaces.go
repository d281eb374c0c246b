package stores

// Storage keys for the app's persisted collections. Each value is a JSON
// array or object; there is no versioning or migration scheme.
const (
	KeyChatSessions    = "dharmabotChatSessions"
	KeyUsers           = "dharmabotUsers"
	KeyUserSession     = "dharmabotUserSession"
	KeySavedResearch   = "dharmabotSavedResearch"
	KeyVoiceNotes      = "dharmabotVoiceNotes"
	KeyThemePreference = "dharmabotThemePreference"
)

// KeyValueStore is a string-keyed, string-valued persistent store. It is
// durable across process restarts but offers no transactions and enforces
// no schema.
type KeyValueStore interface {
	// Get returns the value for key. The boolean reports whether the key
	// was present; absence is not an error.
	Get(key string) (string, bool, error)

	// Set writes the value for key, replacing any existing value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is a no-op.
	Remove(key string) error

	// Connection management
	Close() error

	// Health check
	Ping() error
}

// StoreConfig holds configuration for key-value store backends.
type StoreConfig struct {
	Type       string            `json:"type"`       // "sqlite", "postgres", "memory"
	Connection string            `json:"connection"` // file path or DSN
	Options    map[string]string `json:"options"`    // additional options
}

// NewStoreConfig creates a new store configuration
func NewStoreConfig(storeType, connection string) *StoreConfig {
	return &StoreConfig{
		Type:       storeType,
		Connection: connection,
		Options:    make(map[string]string),
	}
}

// WithOption adds an option to the store configuration
func (c *StoreConfig) WithOption(key, value string) *StoreConfig {
	c.Options[key] = value
	return c
}
