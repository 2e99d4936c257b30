package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"gorm.io/gorm"
)

type IncidentEventRepository struct {
	db *gorm.DB
}

// NewIncidentEventRepository returns pointer to repo along with the db
func NewIncidentEventRepository(db *gorm.DB) *IncidentEventRepository {
	return &IncidentEventRepository{db}
}

func (r *IncidentEventRepository) CreateEvent(event *models.IncidentEvent) (*models.IncidentEvent, error) {
	if err := r.db.Create(event).Error; err != nil {
		return nil, err
	}

	return event, nil
}

func (r *IncidentEventRepository) ListEventsByIncidentID(incidentID uint, opts ...utils.QueryOption) ([]*models.IncidentEvent, error) {
	events := make([]*models.IncidentEvent, 0)

	db := r.db.Scopes(utils.Paginate(opts)).Where("incident_id = ?", incidentID)

	if err := db.Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}
