package storage

import (
	"errors"
	"fmt"
	"time"

	logx "almacen-pos/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is the single table behind the key-value store.
type Record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value []byte
}

// TableName keeps the table name stable regardless of gorm pluralization.
func (Record) TableName() string { return "kv_records" }

// SQLite persists blobs in a local SQLite file through gorm.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and syncs the schema.
// The open is retried a few times so a slow disk mount does not kill the
// process at boot.
func OpenSQLite(path string) (*SQLite, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err == nil {
			break
		}
		logx.Warn().Err(err).Int("attempt", i+1).Msg("failed to open database, retrying")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("migrate kv_records: %w", err)
	}

	logx.Info().Str("path", path).Msg("database ready")
	return &SQLite{db: db}, nil
}

// Get returns the blob for key, reporting false when the key is absent.
func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

// Put upserts the blob for key.
func (s *SQLite) Put(key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}
