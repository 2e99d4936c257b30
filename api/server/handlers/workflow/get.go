package workflow

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/go-chi/chi"
)

type GetRunHandler struct {
	config *config.Config
}

func NewGetRunHandler(config *config.Config) *GetRunHandler {
	return &GetRunHandler{config}
}

func (h GetRunHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "run_id")

	run, err := h.config.Repository.WorkflowRun.ReadRun(runID)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	shared.WriteResult(w, run.ToAPIType())
}
