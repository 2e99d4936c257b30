package oncall

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
)

type ListOnCallHandler struct {
	config *config.Config
}

func NewListOnCallHandler(config *config.Config) *ListOnCallHandler {
	return &ListOnCallHandler{config}
}

func (h ListOnCallHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	entries, err := h.config.Repository.OnCall.ListEntries()

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := &types.ListOnCallResponse{
		Rotations: make([]*types.OnCallEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		res.Rotations = append(res.Rotations, entry.ToAPIType())
	}

	shared.WriteResult(w, res)
}
