package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"gorm.io/gorm"
)

type IncidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository returns pointer to repo along with the db
func NewIncidentRepository(db *gorm.DB) *IncidentRepository {
	return &IncidentRepository{db}
}

func (r *IncidentRepository) CreateIncident(incident *models.Incident) (*models.Incident, error) {
	if err := r.db.Create(incident).Error; err != nil {
		return nil, err
	}

	return incident, nil
}

func (r *IncidentRepository) ReadIncident(uid string) (*models.Incident, error) {
	incident := &models.Incident{}

	if err := r.db.Preload("Events").Where("unique_id = ?", uid).First(incident).Error; err != nil {
		return nil, err
	}

	return incident, nil
}

func (r *IncidentRepository) UpdateIncident(incident *models.Incident) (*models.Incident, error) {
	if err := r.db.Save(incident).Error; err != nil {
		return nil, err
	}

	return incident, nil
}

func (r *IncidentRepository) UpsertIncident(incident *models.Incident) (*models.Incident, error) {
	existing := &models.Incident{}

	if err := r.db.Where("unique_id = ?", incident.UniqueID).First(existing).Error; err == nil {
		return existing, nil
	}

	return r.CreateIncident(incident)
}

func (r *IncidentRepository) ListIncidents(filter *utils.ListIncidentsFilter, opts ...utils.QueryOption) ([]*models.Incident, error) {
	var incidents []*models.Incident

	db := r.db.Scopes(utils.Paginate(opts))

	if filter.Status != nil {
		db = db.Where("status = ?", *filter.Status)
	}

	if filter.Severity != nil {
		db = db.Where("severity = ?", *filter.Severity)
	}

	if filter.Service != nil {
		db = db.Where("affected_services LIKE ?", "%"+*filter.Service+"%")
	}

	if err := db.Preload("Events").Find(&incidents).Error; err != nil {
		return nil, err
	}

	return incidents, nil
}

func (r *IncidentRepository) DeleteIncident(uid string) error {
	incident := &models.Incident{}

	if err := r.db.Where("unique_id = ?", uid).First(incident).Error; err != nil {
		return err
	}

	return r.db.Delete(incident).Error
}
