package models

import (
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"gorm.io/gorm"
)

type IncidentEvent struct {
	gorm.Model

	UniqueID   string `gorm:"unique"`
	IncidentID uint

	Timestamp *time.Time

	// Summary is the one-line timeline entry, e.g. "CPU crossed 90% on
	// vm-db-01". Detail carries any longer narrative for the entry.
	Summary string
	Detail  string
}

func (e *IncidentEvent) ToAPIType() *types.IncidentEvent {
	return &types.IncidentEvent{
		Timestamp: e.Timestamp,
		Summary:   e.Summary,
		Detail:    e.Detail,
	}
}
