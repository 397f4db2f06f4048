package usecase

import (
	"sync"

	"luxestore/internal/domain/entity"
	"luxestore/internal/domain/settings"
	"luxestore/pkg/errors"
)

// DraftView is a snapshot of an admin's unsaved configuration edits.
type DraftView struct {
	Config entity.SiteConfig `json:"config"`
	Dirty  bool              `json:"dirty"`
	Saving bool              `json:"saving"`
}

type draft struct {
	config   entity.SiteConfig
	dirty    bool
	saving   bool
	revision int
}

func (d *draft) view() DraftView {
	return DraftView{Config: d.config.Clone(), Dirty: d.dirty, Saving: d.saving}
}

// draftStore keeps one draft per admin in process memory.
type draftStore struct {
	drafts map[string]*draft
	mutex  sync.Mutex
}

func newDraftStore() *draftStore {
	return &draftStore{drafts: make(map[string]*draft)}
}

func (s *draftStore) view(adminID string) (DraftView, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	d, ok := s.drafts[adminID]
	if !ok {
		return DraftView{}, false
	}
	return d.view(), true
}

// init installs a clean draft unless another request created one first.
func (s *draftStore) init(adminID string, cfg entity.SiteConfig) DraftView {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	d, ok := s.drafts[adminID]
	if !ok {
		d = &draft{config: cfg.Clone()}
		s.drafts[adminID] = d
	}
	return d.view()
}

func (s *draftStore) edit(adminID string, patch map[string]interface{}) (DraftView, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	d, ok := s.drafts[adminID]
	if !ok {
		return DraftView{}, errors.NotFound("Draft", nil)
	}
	d.config = settings.Merge(d.config, patch)
	d.dirty = true
	d.revision++
	return d.view(), nil
}

func (s *draftStore) beginSave(adminID string) (entity.SiteConfig, int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	d, ok := s.drafts[adminID]
	switch {
	case ok && d.saving:
		return entity.SiteConfig{}, 0, errors.Conflict(errors.CodeSaveInProgress, "A save is already in progress")
	case !ok || !d.dirty:
		return entity.SiteConfig{}, 0, errors.Conflict(errors.CodeNothingToSave, "There are no unsaved changes")
	}

	d.saving = true
	return d.config.Clone(), d.revision, nil
}

func (s *draftStore) finishSave(adminID string, revision int, ok bool) DraftView {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	d, exists := s.drafts[adminID]
	if !exists {
		return DraftView{}
	}
	d.saving = false
	if ok && d.revision == revision {
		d.dirty = false
	}
	return d.view()
}

func (s *draftStore) discard(adminID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.drafts, adminID)
}
