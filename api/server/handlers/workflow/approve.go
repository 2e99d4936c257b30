package workflow

import (
	"errors"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/pkg/workflow"
	"github.com/go-chi/chi"
)

type ApproveRunHandler struct {
	config *config.Config
}

func NewApproveRunHandler(config *config.Config) *ApproveRunHandler {
	return &ApproveRunHandler{config}
}

func (h ApproveRunHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "run_id")

	approval := &types.TriageApproval{}

	if err := shared.DecodeJSON(r, approval); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	if !approval.Approved {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, errors.New("approval payload must set approved"))
		return
	}

	run, err := h.config.Runner.Approve(runID, approval)

	if errors.Is(err, workflow.ErrRunNotPending) {
		shared.WriteError(h.config.Logger, w, http.StatusConflict, err)
		return
	}

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	shared.WriteResult(w, run.ToAPIType())
}
