package repository

import (
	"github.com/contoso/sre-demo-agent/internal/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, debug bool) error {
	instanceDB := db

	if debug {
		instanceDB = instanceDB.Debug()
	}

	return instanceDB.AutoMigrate(
		&models.Alert{},
		&models.Incident{},
		&models.IncidentEvent{},
		&models.MetricSample{},
		&models.LogEntry{},
		&models.InventoryRecord{},
		&models.OnCallEntry{},
		&models.WorkflowRun{},
	)
}
