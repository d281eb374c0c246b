package stores

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/ub-intelligence/dharmabot/models"
)

// ResearchStore persists saved deep-research results as one JSON array.
type ResearchStore struct {
	store KeyValueStore
}

// NewResearchStore creates a research store over the given key-value store
func NewResearchStore(store KeyValueStore) *ResearchStore {
	return &ResearchStore{store: store}
}

// ListAll returns saved research sorted by timestamp descending, empty on
// failure.
func (s *ResearchStore) ListAll() ([]models.SavedResearch, error) {
	raw, ok, err := s.store.Get(KeySavedResearch)
	if err != nil {
		log.Printf("Error loading saved research: %v", err)
		return []models.SavedResearch{}, err
	}
	if !ok {
		return []models.SavedResearch{}, nil
	}

	var items []models.SavedResearch
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Error parsing saved research: %v", err)
		return []models.SavedResearch{}, fmt.Errorf("failed to parse saved research: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	return items, nil
}

// Save prepends the new item and rewrites the collection.
func (s *ResearchStore) Save(item models.SavedResearch) error {
	items, _ := s.ListAll()
	items = append([]models.SavedResearch{item}, items...)
	return s.writeAll(items)
}

// Delete removes the item with the given id; absent ids are a no-op.
func (s *ResearchStore) Delete(id string) error {
	items, _ := s.ListAll()
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return s.writeAll(kept)
}

func (s *ResearchStore) writeAll(items []models.SavedResearch) error {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("Error marshalling saved research: %v", err)
		return fmt.Errorf("failed to marshal saved research: %w", err)
	}
	if err := s.store.Set(KeySavedResearch, string(data)); err != nil {
		log.Printf("Error saving research: %v", err)
		return err
	}
	return nil
}
