package repository

import "gorm.io/gorm"

type Repository struct {
	DB *gorm.DB

	Alert         *AlertRepository
	Incident      *IncidentRepository
	IncidentEvent *IncidentEventRepository
	Metric        *MetricRepository
	LogEntry      *LogEntryRepository
	Inventory     *InventoryRepository
	OnCall        *OnCallRepository
	WorkflowRun   *WorkflowRunRepository
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		DB:            db,
		Alert:         NewAlertRepository(db),
		Incident:      NewIncidentRepository(db),
		IncidentEvent: NewIncidentEventRepository(db),
		Metric:        NewMetricRepository(db),
		LogEntry:      NewLogEntryRepository(db),
		Inventory:     NewInventoryRepository(db),
		OnCall:        NewOnCallRepository(db),
		WorkflowRun:   NewWorkflowRunRepository(db),
	}
}
