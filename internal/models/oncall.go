package models

import (
	"github.com/contoso/sre-demo-agent/api/server/types"
	"gorm.io/gorm"
)

type OnCallEntry struct {
	gorm.Model

	Rotation string `gorm:"unique"`

	EscalationPolicy string
	CurrentAssignee  string
	Contact          string
}

func (o *OnCallEntry) ToAPIType() *types.OnCallEntry {
	return &types.OnCallEntry{
		Rotation:         o.Rotation,
		EscalationPolicy: o.EscalationPolicy,
		CurrentAssignee:  o.CurrentAssignee,
		Contact:          o.Contact,
	}
}
