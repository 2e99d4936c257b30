package inventory

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/go-chi/chi"
)

type GetInventoryHandler struct {
	config *config.Config
}

func NewGetInventoryHandler(config *config.Config) *GetInventoryHandler {
	return &GetInventoryHandler{config}
}

func (h GetInventoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serverID := chi.URLParam(r, "server_id")

	record, err := h.config.Repository.Inventory.ReadRecord(serverID)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	shared.WriteResult(w, record.ToAPIType())
}
