package schools

import (
	"sort"
	"sync"

	"go-measlesmonitor/types"
)

// Store holds the current school dataset in memory. Reads vastly
// outnumber writes (one refresh every few hours), hence the RWMutex.
type Store struct {
	mu   sync.RWMutex
	byID map[string]types.School
}

func NewStore() *Store {
	return &Store{byID: make(map[string]types.School)}
}

// Replace swaps the whole dataset for a freshly fetched one.
func (s *Store) Replace(list []types.School) {
	next := make(map[string]types.School, len(list))
	for _, sch := range list {
		next[sch.ID] = sch
	}

	s.mu.Lock()
	s.byID = next
	s.mu.Unlock()
}

// Get returns the school with the given ID.
func (s *Store) Get(id string) (types.School, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sch, ok := s.byID[id]
	return sch, ok
}

// List returns all schools sorted by name.
func (s *Store) List() []types.School {
	s.mu.RLock()
	list := make([]types.School, 0, len(s.byID))
	for _, sch := range s.byID {
		list = append(list, sch)
	}
	s.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Name == list[j].Name {
			return list[i].ID < list[j].ID
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// Len reports how many schools are loaded.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
