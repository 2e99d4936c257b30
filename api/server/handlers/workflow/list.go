package workflow

import (
	"fmt"
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

type ListRunsHandler struct {
	config *config.Config
}

func NewListRunsHandler(config *config.Config) *ListRunsHandler {
	return &ListRunsHandler{config}
}

func (h ListRunsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.ListWorkflowRunsRequest{}

	if err := shared.DecodeQuery(r, req); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	filter := &utils.ListWorkflowRunsFilter{}

	if req.Status != "" {
		switch req.Status {
		case types.WorkflowRunPendingApproval, types.WorkflowRunCompleted, types.WorkflowRunFailed:
		default:
			shared.WriteError(h.config.Logger, w, http.StatusBadRequest, fmt.Errorf("unknown run status %q", req.Status))
			return
		}

		filter.Status = &req.Status
	}

	runs, err := h.config.Repository.WorkflowRun.ListRuns(filter, utils.WithSortBy("started_at"), utils.WithOrder(utils.OrderDesc))

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := &types.ListWorkflowRunsResponse{
		Runs: make([]*types.WorkflowRun, 0, len(runs)),
	}

	for _, run := range runs {
		res.Runs = append(res.Runs, run.ToAPIType())
	}

	shared.WriteResult(w, res)
}
