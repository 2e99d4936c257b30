package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository returns pointer to repo along with the db
func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

func (r *InventoryRepository) UpsertRecord(record *models.InventoryRecord) (*models.InventoryRecord, error) {
	existing := &models.InventoryRecord{}

	if err := r.db.Where("server_id = ?", record.ServerID).First(existing).Error; err == nil {
		record.Model = existing.Model

		if err := r.db.Save(record).Error; err != nil {
			return nil, err
		}

		return record, nil
	}

	if err := r.db.Create(record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

func (r *InventoryRepository) ReadRecord(serverID string) (*models.InventoryRecord, error) {
	record := &models.InventoryRecord{}

	if err := r.db.Where("server_id = ?", serverID).First(record).Error; err != nil {
		return nil, err
	}

	return record, nil
}

func (r *InventoryRepository) ListRecords(filter *utils.ListInventoryFilter, opts ...utils.QueryOption) ([]*models.InventoryRecord, error) {
	records := make([]*models.InventoryRecord, 0)

	db := r.db.Scopes(utils.Paginate(opts))

	if filter.OwningTeam != nil {
		db = db.Where("owning_team = ?", *filter.OwningTeam)
	}

	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
