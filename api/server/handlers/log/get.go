package log

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

type GetLogHandler struct {
	config *config.Config
}

func NewGetLogHandler(config *config.Config) *GetLogHandler {
	return &GetLogHandler{config}
}

func (h GetLogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.GetLogRequest{}

	if err := shared.DecodeQuery(r, req); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	filter := &utils.ListLogsFilter{
		StartRange: req.StartRange,
		EndRange:   req.EndRange,
	}

	if req.Service != "" {
		filter.Service = &req.Service
	}

	if req.Severity != "" {
		filter.Severity = &req.Severity
	}

	if req.SearchParam != "" {
		filter.Search = &req.SearchParam
	}

	opts := []utils.QueryOption{
		utils.WithSortBy("timestamp"),
	}

	if req.Limit > 0 {
		opts = append(opts, utils.WithLimit(req.Limit))
	}

	entries, err := h.config.Repository.LogEntry.ListEntries(filter, opts...)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := &types.GetLogResponse{
		Logs: make([]types.LogLine, 0, len(entries)),
	}

	for _, entry := range entries {
		res.Logs = append(res.Logs, *entry.ToAPIType())
	}

	shared.WriteResult(w, res)
}
