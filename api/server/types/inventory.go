package types

// ServerSpecs describes the hardware allocation of an inventory server.
type ServerSpecs struct {
	CPUCores int `json:"cpu_cores"`
	MemoryGB int `json:"memory_gb"`
	DiskGB   int `json:"disk_gb"`
}

// InventoryRecord is static reference data for one server in the demo fleet.
type InventoryRecord struct {
	ServerID       string      `json:"server_id"`
	Environment    string      `json:"environment"`
	Region         string      `json:"region"`
	Specs          ServerSpecs `json:"specs"`
	ServicesHosted []string    `json:"services_hosted"`
	OwningTeam     string      `json:"owning_team"`
}

type ListInventoryRequest struct {
	OwningTeam string `schema:"owning_team"`
	Service    string `schema:"service"`
}

type ListInventoryResponse struct {
	Servers []*InventoryRecord `json:"servers"`
}
