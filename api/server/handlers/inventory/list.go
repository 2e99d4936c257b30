package inventory

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

type ListInventoryHandler struct {
	config *config.Config
}

func NewListInventoryHandler(config *config.Config) *ListInventoryHandler {
	return &ListInventoryHandler{config}
}

func (h ListInventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.ListInventoryRequest{}

	if err := shared.DecodeQuery(r, req); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	filter := &utils.ListInventoryFilter{}

	if req.OwningTeam != "" {
		filter.OwningTeam = &req.OwningTeam
	}

	records, err := h.config.Repository.Inventory.ListRecords(filter, utils.WithSortBy("server_id"), utils.WithOrder(utils.OrderAsc))

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := &types.ListInventoryResponse{
		Servers: make([]*types.InventoryRecord, 0, len(records)),
	}

	for _, record := range records {
		if req.Service != "" && !record.HostsService(req.Service) {
			continue
		}

		res.Servers = append(res.Servers, record.ToAPIType())
	}

	shared.WriteResult(w, res)
}
