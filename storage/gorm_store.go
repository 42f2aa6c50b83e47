package storage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yenrise/milcolores-api/models"
)

// GormStore keeps the snapshot entries in the kv_entries table, one row
// per key.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(key string) (string, bool, error) {
	var entry models.KVEntry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, "kv get")
	}
	return entry.Value, true, nil
}

func (s *GormStore) Set(key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	return errors.Wrap(err, "kv set")
}

func (s *GormStore) Delete(key string) error {
	err := s.db.Delete(&models.KVEntry{}, "key = ?", key).Error
	return errors.Wrap(err, "kv delete")
}
