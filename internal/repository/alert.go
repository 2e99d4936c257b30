package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"github.com/contoso/sre-demo-agent/internal/utils"
	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

// NewAlertRepository returns pointer to repo along with the db
func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db}
}

func (r *AlertRepository) CreateAlert(alert *models.Alert) (*models.Alert, error) {
	if err := r.db.Create(alert).Error; err != nil {
		return nil, err
	}

	return alert, nil
}

func (r *AlertRepository) ReadAlert(alertID string) (*models.Alert, error) {
	alert := &models.Alert{}

	if err := r.db.Where("alert_id = ?", alertID).First(alert).Error; err != nil {
		return nil, err
	}

	return alert, nil
}

func (r *AlertRepository) UpdateAlert(alert *models.Alert) (*models.Alert, error) {
	if err := r.db.Save(alert).Error; err != nil {
		return nil, err
	}

	return alert, nil
}

// UpsertAlert creates the alert if no row exists for its alert id, and
// otherwise leaves the stored row untouched. Seeding uses this so re-loading
// the fixtures does not reset LastTriggered.
func (r *AlertRepository) UpsertAlert(alert *models.Alert) (*models.Alert, error) {
	existing := &models.Alert{}

	if err := r.db.Where("alert_id = ?", alert.AlertID).First(existing).Error; err == nil {
		return existing, nil
	}

	return r.CreateAlert(alert)
}

func (r *AlertRepository) ListAlerts(filter *utils.ListAlertsFilter, opts ...utils.QueryOption) ([]*models.Alert, error) {
	alerts := make([]*models.Alert, 0)

	db := r.db.Scopes(utils.Paginate(opts))

	if filter.Severity != nil {
		db = db.Where("severity = ?", *filter.Severity)
	}

	if filter.Resource != nil {
		db = db.Where("resource = ?", *filter.Resource)
	}

	if err := db.Find(&alerts).Error; err != nil {
		return nil, err
	}

	return alerts, nil
}
