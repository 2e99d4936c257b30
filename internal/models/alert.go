package models

import (
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"gorm.io/gorm"
)

// Alert stores one firing condition from the demo alert snapshot. We also
// track when the alert last triggered an incident-response run so that
// re-seeding the fixtures does not re-fire the workflow for the same alert.
type Alert struct {
	gorm.Model

	AlertID string `gorm:"unique"`

	Title     string
	Source    string
	Severity  types.AlertSeverity
	Condition string
	Resource  string

	FiringSince *time.Time

	LastTriggered *time.Time
}

func (a *Alert) ToAPIType() *types.Alert {
	return &types.Alert{
		AlertID:     a.AlertID,
		Title:       a.Title,
		Source:      a.Source,
		Severity:    a.Severity,
		Condition:   a.Condition,
		FiringSince: a.FiringSince,
		Resource:    a.Resource,
	}
}
