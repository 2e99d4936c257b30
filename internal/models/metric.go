package models

import (
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"gorm.io/gorm"
)

// MetricSample is one row of the server_metrics fixture. Samples are
// append-only; the (server_id, timestamp) pair identifies a sample for
// idempotent seeding.
type MetricSample struct {
	gorm.Model

	ServerID  string    `gorm:"index:idx_server_ts,unique"`
	Timestamp time.Time `gorm:"index:idx_server_ts,unique"`

	CPUPct      float64
	MemoryPct   float64
	DiskPct     float64
	NetworkMbps float64
}

func (m *MetricSample) ToAPIType() *types.MetricSample {
	return &types.MetricSample{
		ServerID:    m.ServerID,
		Timestamp:   m.Timestamp,
		CPUPct:      m.CPUPct,
		MemoryPct:   m.MemoryPct,
		DiskPct:     m.DiskPct,
		NetworkMbps: m.NetworkMbps,
	}
}
