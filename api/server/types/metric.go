package types

import "time"

// MetricSample is a single point in a server's telemetry series. Samples are
// immutable once generated and ordered by timestamp per server.
type MetricSample struct {
	ServerID    string    `json:"server_id"`
	Timestamp   time.Time `json:"timestamp"`
	CPUPct      float64   `json:"cpu_pct"`
	MemoryPct   float64   `json:"memory_pct"`
	DiskPct     float64   `json:"disk_pct"`
	NetworkMbps float64   `json:"network_mbps"`
}

type ListMetricsRequest struct {
	ServerID   string     `schema:"server_id"`
	StartRange *time.Time `schema:"start_range"`
	EndRange   *time.Time `schema:"end_range"`
	Limit      uint       `schema:"limit"`
}

type ListMetricsResponse struct {
	Samples []*MetricSample `json:"samples"`
}
