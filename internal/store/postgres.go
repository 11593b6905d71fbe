package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordRow persists one collection as a single JSON payload. This keeps
// the blob-store semantics of the record store: whole-collection reads and
// last-writer-wins overwrites, with no relational constraints.
type recordRow struct {
	Collection string         `gorm:"primaryKey;size:64"`
	Payload    datatypes.JSON `gorm:"not null"`
	UpdatedAt  time.Time
}

func (recordRow) TableName() string {
	return "records"
}

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore builds a Store backed by a single `records` table.
func NewPostgresStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, fmt.Errorf("migrate records table: %w", err)
	}
	return &postgresStore{db: db}, nil
}

func (s *postgresStore) Load(ctx context.Context, collection string, dest any) (bool, error) {
	var row recordRow
	err := s.db.WithContext(ctx).First(&row, "collection = ?", collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("store get %s: %w", collection, err)
	}

	if err := json.Unmarshal(row.Payload, dest); err != nil {
		return false, fmt.Errorf("unmarshal %s: %w: %v", collection, ErrCorruptRecord, err)
	}
	return true, nil
}

func (s *postgresStore) Save(ctx context.Context, collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", collection, err)
	}

	row := recordRow{Collection: collection, Payload: data, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("store set %s: %w", collection, err)
	}
	return nil
}

func (s *postgresStore) Delete(ctx context.Context, collection string) error {
	if err := s.db.WithContext(ctx).Delete(&recordRow{}, "collection = ?", collection).Error; err != nil {
		return fmt.Errorf("store del %s: %w", collection, err)
	}
	return nil
}

func (s *postgresStore) Exists(ctx context.Context, collection string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&recordRow{}).Where("collection = ?", collection).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("store exists %s: %w", collection, err)
	}
	return count > 0, nil
}

func (s *postgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *postgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
