package models

import (
	"strings"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"gorm.io/gorm"
)

// InventoryRecord is static reference data for one server in the demo fleet.
type InventoryRecord struct {
	gorm.Model

	ServerID string `gorm:"unique"`

	Environment string
	Region      string

	CPUCores int
	MemoryGB int
	DiskGB   int

	// ServicesHosted is stored as a comma-separated list of service names.
	ServicesHosted string

	OwningTeam string
}

func (r *InventoryRecord) HostsService(service string) bool {
	for _, s := range strings.Split(r.ServicesHosted, ",") {
		if s == service {
			return true
		}
	}

	return false
}

func (r *InventoryRecord) ToAPIType() *types.InventoryRecord {
	var services []string

	if r.ServicesHosted != "" {
		services = strings.Split(r.ServicesHosted, ",")
	}

	return &types.InventoryRecord{
		ServerID:    r.ServerID,
		Environment: r.Environment,
		Region:      r.Region,
		Specs: types.ServerSpecs{
			CPUCores: r.CPUCores,
			MemoryGB: r.MemoryGB,
			DiskGB:   r.DiskGB,
		},
		ServicesHosted: services,
		OwningTeam:     r.OwningTeam,
	}
}
