// Package integrations holds the issue-tracker and chat clients invoked by
// the incident-response workflow. Both default to simulated local behavior;
// pointing them at real endpoints is a configuration change, not a code one.
package integrations

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/pkg/httpclient"
)

type IssueTracker struct {
	Client   *httpclient.Client
	Repo     string
	Simulate bool
}

type createIssueRequest struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Labels []string `json:"labels"`
}

type createIssueResponse struct {
	Number  int    `json:"number"`
	HTMLURL string `json:"html_url"`
}

// CreateIssue opens a tracking issue for the triaged incident. In simulated
// mode the issue number is a stable hash of the alert id, so repeated runs for
// the same alert produce the same ticket reference.
func (t *IssueTracker) CreateIssue(triage *types.TriageResult) (*types.TrackedIssue, error) {
	labels := []string{
		fmt.Sprintf("severity:%s", triage.IncidentSeverity),
		fmt.Sprintf("priority:%s", triage.Priority),
		"incident",
		triage.AssignedTeam,
	}

	if t.Simulate {
		issueNumber := int(stableHash(triage.Alert.AlertID)%9000) + 1000

		return &types.TrackedIssue{
			IssueNumber: issueNumber,
			IssueURL:    fmt.Sprintf("https://github.com/%s/issues/%d", t.Repo, issueNumber),
			Labels:      labels,
			CreatedAt:   time.Now(),
		}, nil
	}

	req := &createIssueRequest{
		Title:  triage.IncidentTitle,
		Body:   triage.Summary,
		Labels: labels,
	}

	resp, err := t.Client.Post(fmt.Sprintf("/repos/%s/issues", t.Repo), req)

	if err != nil {
		return nil, fmt.Errorf("error creating tracking issue: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("issue tracker returned status %d", resp.StatusCode)
	}

	created := &createIssueResponse{}

	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, fmt.Errorf("error parsing issue tracker response: %w", err)
	}

	return &types.TrackedIssue{
		IssueNumber: created.Number,
		IssueURL:    created.HTMLURL,
		Labels:      labels,
		CreatedAt:   time.Now(),
	}, nil
}

func stableHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))

	return h.Sum32()
}
