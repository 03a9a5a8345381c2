package repositories

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type storedRecord struct {
	Name      string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (storedRecord) TableName() string {
	return "stored_records"
}

// Data is a string-valued key-value store.
type Data struct {
	db *gorm.DB
}

func NewDataRepository(db *gorm.DB) *Data {
	return &Data{db: db}
}

func (repo *Data) Save(ctx context.Context, key string, value string) error {
	return save(repo.db.WithContext(ctx), key, value)
}

// Load returns false when the key is absent.
func (repo *Data) Load(ctx context.Context, key string) (string, bool, error) {
	record := &storedRecord{}
	err := repo.db.WithContext(ctx).First(record, "name = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "load %s", key)
	}
	return record.Value, true, nil
}

// Batch writes and removes keys in one transaction: either every change lands or none does.
func (repo *Data) Batch(ctx context.Context, writes map[string]string, removals []string) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for key, value := range writes {
			if err := save(tx, key, value); err != nil {
				return err
			}
		}
		for _, key := range removals {
			if err := remove(tx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

func save(db *gorm.DB, key string, value string) error {
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&storedRecord{Name: key, Value: value, UpdatedAt: time.Now()}).Error
	return errors.Wrapf(err, "save %s", key)
}

func remove(db *gorm.DB, key string) error {
	err := db.Delete(&storedRecord{}, "name = ?", key).Error
	return errors.Wrapf(err, "remove %s", key)
}
