package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"gorm.io/gorm"
)

type OnCallRepository struct {
	db *gorm.DB
}

// NewOnCallRepository returns pointer to repo along with the db
func NewOnCallRepository(db *gorm.DB) *OnCallRepository {
	return &OnCallRepository{db}
}

func (r *OnCallRepository) UpsertEntry(entry *models.OnCallEntry) (*models.OnCallEntry, error) {
	existing := &models.OnCallEntry{}

	if err := r.db.Where("rotation = ?", entry.Rotation).First(existing).Error; err == nil {
		entry.Model = existing.Model

		if err := r.db.Save(entry).Error; err != nil {
			return nil, err
		}

		return entry, nil
	}

	if err := r.db.Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *OnCallRepository) ReadEntry(rotation string) (*models.OnCallEntry, error) {
	entry := &models.OnCallEntry{}

	if err := r.db.Where("rotation = ?", rotation).First(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *OnCallRepository) ListEntries() ([]*models.OnCallEntry, error) {
	entries := make([]*models.OnCallEntry, 0)

	if err := r.db.Order("rotation asc").Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
