package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/menufacil/backend/internal/model"
	"github.com/menufacil/backend/internal/store"
)

// ArchiveService owns the saved-menu archive: named, timestamped
// snapshots of a plan plus its shopping list, newest first.
type ArchiveService struct {
	mu    sync.Mutex
	kv    *store.KV
	log   *zap.SugaredLogger
	now   func() time.Time
	menus []model.SavedMenu
}

// NewArchiveService loads the archive from the store; missing or corrupt
// data starts it empty.
func NewArchiveService(kv *store.KV, log *zap.SugaredLogger) *ArchiveService {
	s := &ArchiveService{kv: kv, log: log, now: time.Now}
	if !loadJSON(kv, log, store.KeySavedMenus, &s.menus) {
		s.menus = []model.SavedMenu{}
	}
	s.sortNewestFirst()
	return s
}

// Save snapshots the current plan and list under a user-given name. It
// rejects the save when there is no plan or the list is empty. The id is
// the save-time timestamp; plan and list are stored as deep copies.
func (s *ArchiveService) Save(name, description string, plan model.MenuPlan, list []model.ShoppingItem) (model.SavedMenu, error) {
	if plan == nil || len(list) == 0 {
		return model.SavedMenu{}, ErrNoPlan
	}

	createdAt := s.now()
	saved := model.SavedMenu{
		ID:           createdAt.Format(time.RFC3339Nano),
		Name:         strings.TrimSpace(name),
		Description:  strings.TrimSpace(description),
		Plan:         plan.Clone(),
		ShoppingList: model.CloneShoppingList(list),
		CreatedAt:    createdAt,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.menus = append(s.menus, saved)
	s.sortNewestFirst()
	s.persist()
	s.log.Infow("menu saved", "name", saved.Name, "id", saved.ID)
	return saved, nil
}

// List returns the archive, newest first.
func (s *ArchiveService) List() []model.SavedMenu {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.SavedMenu(nil), s.menus...)
}

// Get returns one saved menu by id. Loading never removes the entry.
func (s *ArchiveService) Get(id string) (model.SavedMenu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.menus {
		if m.ID == id {
			return m, nil
		}
	}
	return model.SavedMenu{}, ErrNotFound
}

// Delete removes one saved menu by id. Irreversible.
func (s *ArchiveService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.menus {
		if m.ID == id {
			s.menus = append(s.menus[:i], s.menus[i+1:]...)
			s.persist()
			return nil
		}
	}
	return ErrNotFound
}

// sortNewestFirst re-sorts on every insert rather than trusting
// append-order. Callers hold the mutex (or run before concurrency
// starts).
func (s *ArchiveService) sortNewestFirst() {
	sort.SliceStable(s.menus, func(i, j int) bool {
		return s.menus[i].CreatedAt.After(s.menus[j].CreatedAt)
	})
}

func (s *ArchiveService) persist() {
	persistJSON(s.kv, s.log, store.KeySavedMenus, s.menus)
}
