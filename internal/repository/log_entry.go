package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"gorm.io/gorm"
)

type LogEntryRepository struct {
	db *gorm.DB
}

// NewLogEntryRepository returns pointer to repo along with the db
func NewLogEntryRepository(db *gorm.DB) *LogEntryRepository {
	return &LogEntryRepository{db}
}

func (r *LogEntryRepository) CreateEntries(entries []*models.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.db.Create(&entries).Error
}

func (r *LogEntryRepository) Count() (int64, error) {
	var count int64

	if err := r.db.Model(&models.LogEntry{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *LogEntryRepository) ListEntries(filter *utils.ListLogsFilter, opts ...utils.QueryOption) ([]*models.LogEntry, error) {
	entries := make([]*models.LogEntry, 0)

	db := r.db.Scopes(utils.Paginate(opts))

	if filter.Service != nil {
		db = db.Where("service = ?", *filter.Service)
	}

	if filter.Severity != nil {
		db = db.Where("severity = ?", *filter.Severity)
	}

	if filter.Search != nil {
		db = db.Where("message LIKE ?", "%"+*filter.Search+"%")
	}

	if filter.StartRange != nil {
		db = db.Where("timestamp >= ?", *filter.StartRange)
	}

	if filter.EndRange != nil {
		db = db.Where("timestamp <= ?", *filter.EndRange)
	}

	if err := db.Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
