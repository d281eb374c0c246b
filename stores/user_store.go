package stores

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/ub-intelligence/dharmabot/models"
)

// UserStore persists the registered-user collection and the current user
// session pointer. It follows the same degrade-on-failure policy as the
// session repository.
type UserStore struct {
	store KeyValueStore
}

// NewUserStore creates a user store over the given key-value store
func NewUserStore(store KeyValueStore) *UserStore {
	return &UserStore{store: store}
}

// ListUsers returns all registered users, empty on failure.
func (s *UserStore) ListUsers() ([]models.User, error) {
	raw, ok, err := s.store.Get(KeyUsers)
	if err != nil {
		log.Printf("Error loading users: %v", err)
		return []models.User{}, err
	}
	if !ok {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Printf("Error parsing users: %v", err)
		return []models.User{}, fmt.Errorf("failed to parse users: %w", err)
	}
	return users, nil
}

// SaveUsers rewrites the whole user collection.
func (s *UserStore) SaveUsers(users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		log.Printf("Error marshalling users: %v", err)
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	if err := s.store.Set(KeyUsers, string(data)); err != nil {
		log.Printf("Error saving users: %v", err)
		return err
	}
	return nil
}

// SetCurrentUser stores the active user session pointer (without password).
func (s *UserStore) SetCurrentUser(user models.User) error {
	data, err := json.Marshal(user.Public())
	if err != nil {
		return fmt.Errorf("failed to marshal user session: %w", err)
	}
	if err := s.store.Set(KeyUserSession, string(data)); err != nil {
		log.Printf("Error saving user session: %v", err)
		return err
	}
	return nil
}

// CurrentUser returns the stored session user, or nil when absent. A
// malformed or incomplete stored session is cleared and treated as absent.
func (s *UserStore) CurrentUser() (*models.User, error) {
	raw, ok, err := s.store.Get(KeyUserSession)
	if err != nil {
		log.Printf("Error loading user session: %v", err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Printf("Error parsing user session, clearing it: %v", err)
		_ = s.store.Remove(KeyUserSession)
		return nil, nil
	}
	if user.ID == "" || user.Email == "" || user.ProfileType == "" {
		log.Printf("Warning: stored session data is incomplete, clearing invalid session")
		_ = s.store.Remove(KeyUserSession)
		return nil, nil
	}
	return &user, nil
}

// ClearCurrentUser removes the session pointer.
func (s *UserStore) ClearCurrentUser() error {
	if err := s.store.Remove(KeyUserSession); err != nil {
		log.Printf("Error clearing user session: %v", err)
		return err
	}
	return nil
}
