package types

// GetStatusResponse summarizes the loaded demo dataset and the configured
// workflow, so a caller can verify the service is fully seeded.
type GetStatusResponse struct {
	Servers       int64  `json:"servers"`
	MetricSamples int64  `json:"metric_samples"`
	LogEntries    int64  `json:"log_entries"`
	Alerts        int64  `json:"alerts"`
	Incidents     int64  `json:"incidents"`
	Rotations     int64  `json:"rotations"`
	Workflow      string `json:"workflow"`
	Tools         int    `json:"tools"`
}
