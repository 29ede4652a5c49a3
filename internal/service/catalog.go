package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/menufacil/backend/internal/model"
	"github.com/menufacil/backend/internal/store"
)

// Facet filter kinds. At most one facet filter is active at a time.
const (
	FacetCountry    = "country"
	FacetDifficulty = "difficulty"
)

// FacetSelection is the single-value toggleable facet filter: selecting
// the active value again clears the filter, selecting another value
// replaces it.
type FacetSelection struct {
	Type  string
	Value string
}

// Toggle applies a click on a facet value and returns the new selection.
func (f FacetSelection) Toggle(facetType, value string) FacetSelection {
	if f.Type == facetType && f.Value == value {
		return FacetSelection{}
	}
	return FacetSelection{Type: facetType, Value: value}
}

// Active reports whether a facet filter is in effect.
func (f FacetSelection) Active() bool { return f.Type != "" && f.Value != "" }

// FacetCounts are the read-only country and difficulty counters over a
// (possibly search-filtered) dish set.
type FacetCounts struct {
	Countries    map[string]int `json:"countries"`
	Difficulties map[string]int `json:"difficulties"`
}

// CatalogService is the sole owner of dish records and of the utensil
// suggestion list.
type CatalogService struct {
	mu       sync.Mutex
	kv       *store.KV
	log      *zap.SugaredLogger
	dishes   []model.Dish
	utensils []string
}

// NewCatalogService loads the catalog and the utensil list from the
// store, falling back to built-in defaults on missing or corrupt data.
// Every loaded dish passes through Normalize.
func NewCatalogService(kv *store.KV, log *zap.SugaredLogger) *CatalogService {
	s := &CatalogService{kv: kv, log: log}

	if !loadJSON(kv, log, store.KeyDishes, &s.dishes) {
		s.dishes = append([]model.Dish(nil), model.DefaultDishes...)
	}
	for i := range s.dishes {
		s.dishes[i].Normalize()
	}

	if !loadJSON(kv, log, store.KeyUtensils, &s.utensils) {
		s.utensils = append([]string(nil), model.DefaultUtensils...)
	}
	sort.Strings(s.utensils)

	return s
}

// List returns a copy of the full catalog.
func (s *CatalogService) List() []model.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Dish(nil), s.dishes...)
}

// Get finds a dish by id.
func (s *CatalogService) Get(id string) (model.Dish, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.dishes {
		if d.ID == id {
			return d, nil
		}
	}
	return model.Dish{}, ErrNotFound
}

// Add validates the dish, assigns an id when absent, and appends it.
func (s *CatalogService) Add(dish model.Dish) (model.Dish, error) {
	dish.Normalize()
	if err := dish.Validate(); err != nil {
		return model.Dish{}, err
	}
	dish.EnsureID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dishes = append(s.dishes, dish)
	s.persist()
	return dish, nil
}

// Update replaces the dish with the same id. An unknown id is a no-op;
// the return value tells the caller whether anything was replaced, so
// add-vs-update stays the caller's decision.
func (s *CatalogService) Update(dish model.Dish) (bool, error) {
	dish.Normalize()
	if err := dish.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.dishes {
		if d.ID == dish.ID {
			s.dishes[i] = dish
			s.persist()
			return true, nil
		}
	}
	return false, nil
}

// Remove deletes one dish by id.
func (s *CatalogService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.dishes {
		if d.ID == id {
			s.dishes = append(s.dishes[:i], s.dishes[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// RemoveMany deletes every dish whose id is in ids and returns how many
// were removed.
func (s *CatalogService) RemoveMany(ids []string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.dishes[:0]
	removed := 0
	for _, d := range s.dishes {
		if drop[d.ID] {
			removed++
			continue
		}
		kept = append(kept, d)
	}
	s.dishes = kept
	if removed > 0 {
		s.persist()
	}
	return removed
}

// RemoveAll empties the catalog.
func (s *CatalogService) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dishes = []model.Dish{}
	s.persist()
}

// Search returns the dishes whose name or any ingredient name contains
// the query, case-insensitively. An empty query returns everything.
func (s *CatalogService) Search(query string) []model.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return searchDishes(s.dishes, query)
}

// Facets computes country and difficulty counts over the search-filtered
// catalog.
func (s *CatalogService) Facets(query string) FacetCounts {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := FacetCounts{
		Countries:    make(map[string]int),
		Difficulties: make(map[string]int),
	}
	for _, d := range searchDishes(s.dishes, query) {
		if d.Country != "" {
			counts.Countries[d.Country]++
		}
		if d.Difficulty != "" {
			counts.Difficulties[string(d.Difficulty)]++
		}
	}
	return counts
}

// Filter applies the search query and then the facet selection.
func (s *CatalogService) Filter(query string, facet FacetSelection) []model.Dish {
	matched := s.Search(query)
	if !facet.Active() {
		return matched
	}
	out := matched[:0]
	for _, d := range matched {
		switch facet.Type {
		case FacetCountry:
			if d.Country == facet.Value {
				out = append(out, d)
			}
		case FacetDifficulty:
			if string(d.Difficulty) == facet.Value {
				out = append(out, d)
			}
		}
	}
	return out
}

// Utensils returns the utensil suggestion list, sorted.
func (s *CatalogService) Utensils() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.utensils...)
}

// AddUtensil inserts a suggestion unless an equal name (ignoring case)
// already exists. The list stays sorted.
func (s *CatalogService) AddUtensil(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.utensils {
		if strings.EqualFold(u, name) {
			return
		}
	}
	s.utensils = append(s.utensils, name)
	sort.Strings(s.utensils)
	persistJSON(s.kv, s.log, store.KeyUtensils, s.utensils)
}

// Import merges a JSON catalog file. The content must be a JSON array
// whose every element passes the minimal shape check (string id, string
// name, ingredients array); otherwise the entire import is rejected.
// Dishes whose id already exists are silently skipped.
func (s *CatalogService) Import(raw []byte) (added, skipped int, err error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return 0, 0, fmt.Errorf("import: expected a JSON array of dishes: %w", err)
	}

	incoming := make([]model.Dish, 0, len(rows))
	for i, row := range rows {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(row, &probe); err != nil {
			return 0, 0, fmt.Errorf("import: element %d is not an object", i)
		}
		if !isJSONString(probe["id"]) || !isJSONString(probe["name"]) || !isJSONArray(probe["ingredients"]) {
			return 0, 0, fmt.Errorf("import: element %d fails the dish shape check", i)
		}
		var dish model.Dish
		if err := json.Unmarshal(row, &dish); err != nil {
			return 0, 0, fmt.Errorf("import: element %d: %w", i, err)
		}
		dish.Normalize()
		incoming = append(incoming, dish)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	existing := make(map[string]bool, len(s.dishes))
	for _, d := range s.dishes {
		existing[d.ID] = true
	}
	for _, dish := range incoming {
		if existing[dish.ID] {
			skipped++
			continue
		}
		s.dishes = append(s.dishes, dish)
		existing[dish.ID] = true
		added++
	}
	if added > 0 {
		s.persist()
	}
	return added, skipped, nil
}

// Export serializes the full catalog as indented JSON.
func (s *CatalogService) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := json.MarshalIndent(s.dishes, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// persist writes the catalog. Callers hold the mutex.
func (s *CatalogService) persist() {
	persistJSON(s.kv, s.log, store.KeyDishes, s.dishes)
}

func searchDishes(dishes []model.Dish, query string) []model.Dish {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Dish, 0, len(dishes))
	for _, d := range dishes {
		if query == "" || dishMatches(d, query) {
			out = append(out, d)
		}
	}
	return out
}

func dishMatches(d model.Dish, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(d.Name), lowerQuery) {
		return true
	}
	for _, ing := range d.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), lowerQuery) {
			return true
		}
	}
	return false
}

func isJSONString(raw json.RawMessage) bool {
	var s string
	return raw != nil && json.Unmarshal(raw, &s) == nil
}

func isJSONArray(raw json.RawMessage) bool {
	var a []json.RawMessage
	return raw != nil && json.Unmarshal(raw, &a) == nil
}
