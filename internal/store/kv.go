package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hrtrack/internal/models"
)

// Get returns the value for key, or ("", false) when the key is absent.
func (s *Store) Get(key string) (string, bool, error) {
	var row models.Setting
	err := s.db.First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

// Set writes a single key.
func (s *Store) Set(key, value string) error {
	row := models.Setting{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}

// MultiGet returns the present subset of keys as a map. Absent keys are
// simply missing from the result.
func (s *Store) MultiGet(keys ...string) (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.Where("key IN ?", keys).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

// MultiSet writes all pairs in one transaction.
func (s *Store) MultiSet(pairs map[string]string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for k, v := range pairs {
			row := models.Setting{Key: k, Value: v}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// MultiRemove deletes the given keys; missing keys are not an error.
func (s *Store) MultiRemove(keys ...string) error {
	return s.db.Where("key IN ?", keys).Delete(&models.Setting{}).Error
}
