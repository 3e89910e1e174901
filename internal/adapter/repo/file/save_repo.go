// Package file stores saves as zstd-compressed JSON documents on disk, one
// file per save name.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"megbase/internal/app/ports"
)

const saveExt = ".megsave.zst"

type SaveRepo struct {
	dir string
}

// NewSaveRepo creates the save directory if needed.
func NewSaveRepo(dir string) (*SaveRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create save dir: %w", err)
	}
	return &SaveRepo{dir: dir}, nil
}

type saveDocument struct {
	Name     string          `json:"name"`
	Seed     int64           `json:"seed"`
	SavedAt  time.Time       `json:"saved_at"`
	Snapshot json.RawMessage `json:"snapshot"`
}

func (r *SaveRepo) path(name string) (string, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" || strings.ContainsAny(cleaned, `/\`) || cleaned != filepath.Base(cleaned) {
		return "", fmt.Errorf("invalid save name %q", name)
	}
	return filepath.Join(r.dir, cleaned+saveExt), nil
}

func (r *SaveRepo) Put(_ context.Context, record ports.SaveRecord) error {
	path, err := r.path(record.Name)
	if err != nil {
		return err
	}
	snap, err := json.Marshal(record.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	doc, err := json.Marshal(saveDocument{
		Name:     record.Name,
		Seed:     record.Seed,
		SavedAt:  record.SavedAt,
		Snapshot: snap,
	})
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	compressed := enc.EncodeAll(doc, nil)
	enc.Close()

	// Write via a temp file so a crash never leaves a truncated save.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, compressed, 0o644); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return os.Rename(tmp, path)
}

func (r *SaveRepo) Get(_ context.Context, name string) (ports.SaveRecord, error) {
	path, err := r.path(name)
	if err != nil {
		return ports.SaveRecord{}, err
	}
	compressed, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.SaveRecord{}, ports.ErrSaveNotFound
		}
		return ports.SaveRecord{}, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return ports.SaveRecord{}, err
	}
	defer dec.Close()
	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return ports.SaveRecord{}, fmt.Errorf("decompress save %q: %w", name, ports.ErrSaveCorrupt)
	}

	var doc saveDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ports.SaveRecord{}, fmt.Errorf("decode save %q: %w", name, ports.ErrSaveCorrupt)
	}
	record := ports.SaveRecord{Name: name, Seed: doc.Seed, SavedAt: doc.SavedAt}
	if err := json.Unmarshal(doc.Snapshot, &record.Snapshot); err != nil {
		return ports.SaveRecord{}, fmt.Errorf("decode snapshot %q: %w", name, ports.ErrSaveCorrupt)
	}
	return record, nil
}

func (r *SaveRepo) List(ctx context.Context) ([]ports.SaveInfo, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}
	infos := make([]ports.SaveInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), saveExt) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), saveExt)
		record, err := r.Get(ctx, name)
		if err != nil {
			// A corrupt file is listed anyway so the player can delete it.
			infos = append(infos, ports.SaveInfo{Name: name})
			continue
		}
		infos = append(infos, ports.SaveInfo{Name: name, Day: record.Snapshot.Stats.Day, SavedAt: record.SavedAt})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (r *SaveRepo) Delete(_ context.Context, name string) error {
	path, err := r.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ports.ErrSaveNotFound
		}
		return err
	}
	return nil
}
