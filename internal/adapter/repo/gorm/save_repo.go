package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"megbase/internal/app/ports"
	"megbase/internal/domain/outpost"
)

// GameSave is the persisted row: the snapshot travels as a JSON blob so the
// schema does not chase every simulation change.
type GameSave struct {
	Name     string `gorm:"primaryKey;size:128"`
	Day      int    `gorm:"not null"`
	Seed     int64  `gorm:"not null"`
	Snapshot []byte `gorm:"type:jsonb;not null"`
	SavedAt  time.Time
}

type SaveRepo struct {
	db *gorm.DB
}

func NewSaveRepo(db *gorm.DB) SaveRepo {
	return SaveRepo{db: db}
}

func (r SaveRepo) Put(ctx context.Context, record ports.SaveRecord) error {
	blob, err := json.Marshal(record.Snapshot)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	row := GameSave{
		Name:     record.Name,
		Day:      record.Snapshot.Stats.Day,
		Seed:     record.Seed,
		Snapshot: blob,
		SavedAt:  record.SavedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"day", "seed", "snapshot", "saved_at"}),
	}).Create(&row).Error
}

func (r SaveRepo) Get(ctx context.Context, name string) (ports.SaveRecord, error) {
	var row GameSave
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SaveRecord{}, ports.ErrSaveNotFound
		}
		return ports.SaveRecord{}, err
	}
	var snap outpost.Snapshot
	if err := json.Unmarshal(row.Snapshot, &snap); err != nil {
		return ports.SaveRecord{}, fmt.Errorf("decode save %q: %w", name, ports.ErrSaveCorrupt)
	}
	return ports.SaveRecord{Name: row.Name, Snapshot: snap, Seed: row.Seed, SavedAt: row.SavedAt}, nil
}

func (r SaveRepo) List(ctx context.Context) ([]ports.SaveInfo, error) {
	var rows []GameSave
	if err := r.db.WithContext(ctx).Select("name", "day", "saved_at").Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	infos := make([]ports.SaveInfo, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, ports.SaveInfo{Name: row.Name, Day: row.Day, SavedAt: row.SavedAt})
	}
	return infos, nil
}

func (r SaveRepo) Delete(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&GameSave{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrSaveNotFound
	}
	return nil
}
