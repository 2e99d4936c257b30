package fixtures

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
)

// WriteSet writes every fixture file for the set under dir, creating the
// directory if needed. Existing files are overwritten.
func WriteSet(dir string, set *Set) error {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("error creating fixture directory: %w", err)
	}

	if err := writeMetrics(filepath.Join(dir, MetricsFile), set.Metrics); err != nil {
		return err
	}

	files := []struct {
		name string
		data interface{}
	}{
		{LogsFile, map[string]interface{}{"logs": set.Logs}},
		{AlertsFile, &types.ListAlertsResponse{Alerts: set.Alerts}},
		{IncidentsFile, map[string]interface{}{"incidents": set.Incidents}},
		{InventoryFile, &types.ListInventoryResponse{Servers: set.Inventory}},
		{OnCallFile, &types.ListOnCallResponse{Rotations: set.OnCall}},
	}

	for _, file := range files {
		if err := writeJSON(filepath.Join(dir, file.name), file.data); err != nil {
			return err
		}
	}

	return nil
}

func writeMetrics(path string, samples []*types.MetricSample) error {
	f, err := os.Create(path)

	if err != nil {
		return fmt.Errorf("error creating metrics fixture: %w", err)
	}

	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(metricColumns); err != nil {
		return err
	}

	for _, sample := range samples {
		row := []string{
			sample.ServerID,
			sample.Timestamp.UTC().Format(time.RFC3339),
			formatPct(sample.CPUPct),
			formatPct(sample.MemoryPct),
			formatPct(sample.DiskPct),
			formatPct(sample.NetworkMbps),
		}

		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()

	return writer.Error()
}

func writeJSON(path string, data interface{}) error {
	raw, err := json.MarshalIndent(data, "", "  ")

	if err != nil {
		return fmt.Errorf("error serializing fixture %s: %w", filepath.Base(path), err)
	}

	return os.WriteFile(path, append(raw, '\n'), 0644)
}
