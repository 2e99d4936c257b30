package models

import (
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"gorm.io/gorm"
)

type LogEntry struct {
	gorm.Model

	Timestamp *time.Time `gorm:"index"`
	Service   string     `gorm:"index"`
	Severity  string
	Message   string
}

func (l *LogEntry) ToAPIType() *types.LogLine {
	return &types.LogLine{
		Timestamp: l.Timestamp,
		Service:   l.Service,
		Severity:  l.Severity,
		Message:   l.Message,
	}
}
