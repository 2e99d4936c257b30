package alert

import (
	"fmt"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

type ListAlertsHandler struct {
	config *config.Config
}

func NewListAlertsHandler(config *config.Config) *ListAlertsHandler {
	return &ListAlertsHandler{config}
}

func (h ListAlertsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.ListAlertsRequest{}

	if err := shared.DecodeQuery(r, req); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	filter := &utils.ListAlertsFilter{}

	if req.Severity != "" {
		if !req.Severity.Valid() {
			shared.WriteError(h.config.Logger, w, http.StatusBadRequest, fmt.Errorf("invalid severity %q", req.Severity))
			return
		}

		filter.Severity = &req.Severity
	}

	if req.Resource != "" {
		filter.Resource = &req.Resource
	}

	alerts, err := h.config.Repository.Alert.ListAlerts(filter)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := &types.ListAlertsResponse{}

	for _, alert := range alerts {
		res.Alerts = append(res.Alerts, alert.ToAPIType())
	}

	shared.WriteResult(w, res)
}
