package status

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/models"
)

type GetStatusHandler struct {
	config *config.Config
}

func NewGetStatusHandler(config *config.Config) *GetStatusHandler {
	return &GetStatusHandler{config}
}

func (h *GetStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := &types.GetStatusResponse{
		Workflow: h.config.Workflow.Name,
		Tools:    len(h.config.Registry.List()),
	}

	db := h.config.Repository.DB

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.InventoryRecord{}, &res.Servers},
		{&models.MetricSample{}, &res.MetricSamples},
		{&models.LogEntry{}, &res.LogEntries},
		{&models.Alert{}, &res.Alerts},
		{&models.Incident{}, &res.Incidents},
		{&models.OnCallEntry{}, &res.Rotations},
	}

	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
			return
		}
	}

	shared.WriteResult(w, res)
}
