package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MetricRepository struct {
	db *gorm.DB
}

// NewMetricRepository returns pointer to repo along with the db
func NewMetricRepository(db *gorm.DB) *MetricRepository {
	return &MetricRepository{db}
}

// CreateSamples bulk-inserts metric samples, skipping rows that already exist
// for the same (server_id, timestamp) pair.
func (r *MetricRepository) CreateSamples(samples []*models.MetricSample) error {
	if len(samples) == 0 {
		return nil
	}

	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&samples).Error
}

func (r *MetricRepository) ListSamples(filter *utils.ListMetricsFilter, opts ...utils.QueryOption) ([]*models.MetricSample, error) {
	samples := make([]*models.MetricSample, 0)

	db := r.db.Scopes(utils.Paginate(opts))

	if filter.ServerID != nil {
		db = db.Where("server_id = ?", *filter.ServerID)
	}

	if filter.StartRange != nil {
		db = db.Where("timestamp >= ?", *filter.StartRange)
	}

	if filter.EndRange != nil {
		db = db.Where("timestamp <= ?", *filter.EndRange)
	}

	if err := db.Find(&samples).Error; err != nil {
		return nil, err
	}

	return samples, nil
}

// ListServerIDs returns the distinct servers present in the metric series.
func (r *MetricRepository) ListServerIDs() ([]string, error) {
	ids := make([]string, 0)

	if err := r.db.Model(&models.MetricSample{}).Distinct("server_id").Order("server_id asc").Pluck("server_id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}
