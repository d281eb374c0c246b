package stores

import "log"

// PreferenceStore persists small UI preferences, currently only the theme.
type PreferenceStore struct {
	store KeyValueStore
}

// NewPreferenceStore creates a preference store over the given key-value store
func NewPreferenceStore(store KeyValueStore) *PreferenceStore {
	return &PreferenceStore{store: store}
}

// Theme returns the stored theme preference, or the fallback when unset.
func (s *PreferenceStore) Theme(fallback string) string {
	v, ok, err := s.store.Get(KeyThemePreference)
	if err != nil {
		log.Printf("Error loading theme preference: %v", err)
		return fallback
	}
	if !ok || v == "" {
		return fallback
	}
	return v
}

// SetTheme stores the theme preference.
func (s *PreferenceStore) SetTheme(theme string) error {
	if err := s.store.Set(KeyThemePreference, theme); err != nil {
		log.Printf("Error saving theme preference: %v", err)
		return err
	}
	return nil
}
