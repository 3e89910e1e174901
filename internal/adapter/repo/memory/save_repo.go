// Package memory is the in-process save repository, used by tests and by
// runs that do not configure persistence.
package memory

import (
	"context"
	"sort"
	"sync"

	"megbase/internal/app/ports"
)

type SaveRepo struct {
	mu    sync.RWMutex
	saves map[string]ports.SaveRecord
}

func NewSaveRepo() *SaveRepo {
	return &SaveRepo{saves: make(map[string]ports.SaveRecord)}
}

func (r *SaveRepo) Put(_ context.Context, record ports.SaveRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[record.Name] = record
	return nil
}

func (r *SaveRepo) Get(_ context.Context, name string) (ports.SaveRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.saves[name]
	if !ok {
		return ports.SaveRecord{}, ports.ErrSaveNotFound
	}
	return record, nil
}

func (r *SaveRepo) List(_ context.Context) ([]ports.SaveInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]ports.SaveInfo, 0, len(r.saves))
	for _, record := range r.saves {
		infos = append(infos, ports.SaveInfo{Name: record.Name, Day: record.Snapshot.Stats.Day, SavedAt: record.SavedAt})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (r *SaveRepo) Delete(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.saves[name]; !ok {
		return ports.ErrSaveNotFound
	}
	delete(r.saves, name)
	return nil
}
