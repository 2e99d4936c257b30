package metric

import (
	"net/http"

	"github.com/contoso/sre-demo-agent/api/server/config"
	"github.com/contoso/sre-demo-agent/api/server/shared"
	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/internal/utils"
)

type ListMetricsHandler struct {
	config *config.Config
}

func NewListMetricsHandler(config *config.Config) *ListMetricsHandler {
	return &ListMetricsHandler{config}
}

func (h ListMetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := &types.ListMetricsRequest{}

	if err := shared.DecodeQuery(r, req); err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusBadRequest, err)
		return
	}

	filter := &utils.ListMetricsFilter{
		StartRange: req.StartRange,
		EndRange:   req.EndRange,
	}

	if req.ServerID != "" {
		filter.ServerID = &req.ServerID
	}

	opts := []utils.QueryOption{
		utils.WithSortBy("timestamp"),
	}

	if req.Limit > 0 {
		opts = append(opts, utils.WithLimit(req.Limit))
	}

	samples, err := h.config.Repository.Metric.ListSamples(filter, opts...)

	if err != nil {
		shared.WriteError(h.config.Logger, w, http.StatusInternalServerError, err)
		return
	}

	res := &types.ListMetricsResponse{}

	for _, sample := range samples {
		res.Samples = append(res.Samples, sample.ToAPIType())
	}

	shared.WriteResult(w, res)
}
