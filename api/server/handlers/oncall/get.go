package oncall

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/go-chi/chi"
)

type GetOnCallHandler struct {
	config *config.Config
}

func NewGetOnCallHandler(config *config.Config) *GetOnCallHandler {
	return &GetOnCallHandler{config}
}

func (h GetOnCallHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rotation := chi.URLParam(r, "rotation")

	entry, err := h.config.Repository.OnCall.ReadEntry(rotation)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	shared.WriteResult(w, entry.ToAPIType())
}
