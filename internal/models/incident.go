package models

import (
	"strings"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"gorm.io/gorm"
)

type Incident struct {
	gorm.Model

	UniqueID string `gorm:"unique"`

	Title     string
	Status    types.IncidentStatus
	Severity  types.IncidentSeverity
	StartTime *time.Time

	// AffectedServices is stored as a comma-separated list of service names.
	AffectedServices string

	Impact string

	Events []IncidentEvent
}

func (i *Incident) ToAPITypeMeta() *types.IncidentMeta {
	var services []string

	if i.AffectedServices != "" {
		services = strings.Split(i.AffectedServices, ",")
	}

	return &types.IncidentMeta{
		ID:               i.UniqueID,
		Title:            i.Title,
		Status:           i.Status,
		Severity:         i.Severity,
		StartTime:        i.StartTime,
		AffectedServices: services,
		Impact:           i.Impact,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

func (i *Incident) ToAPIType() *types.Incident {
	incident := &types.Incident{
		IncidentMeta: i.ToAPITypeMeta(),
	}

	for _, ev := range i.Events {
		incident.Timeline = append(incident.Timeline, ev.ToAPIType())
	}

	return incident
}
