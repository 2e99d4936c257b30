package incident

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

type ListIncidentsHandler struct {
	config *config.Config
}

func NewListIncidentsHandler(config *config.Config) *ListIncidentsHandler {
	return &ListIncidentsHandler{config}
}

func (h ListIncidentsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.ListIncidentsRequest{}

	if err := shared.DecodeQuery(r, req); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	filter := &utils.ListIncidentsFilter{}

	if req.Status != "" {
		filter.Status = &req.Status
	}

	if req.Severity != "" {
		filter.Severity = &req.Severity
	}

	if req.Service != "" {
		filter.Service = &req.Service
	}

	incidents, err := h.config.Repository.Incident.ListIncidents(
		filter,
		utils.WithSortBy("updated_at"),
		utils.WithOrder(utils.OrderDesc),
	)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := &types.ListIncidentsResponse{}

	for _, incident := range incidents {
		res.Incidents = append(res.Incidents, incident.ToAPITypeMeta())
	}

	shared.WriteResult(w, res)
}
