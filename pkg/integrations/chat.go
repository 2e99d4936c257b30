package integrations

import (
	"fmt"
	"net/http"
	"time"

	"github.com/contoso/sre-demo-agent/api/server/types"
	"github.com/contoso/sre-demo-agent/pkg/httpclient"
)

type ChatNotifier struct {
	Client   *httpclient.Client
	Simulate bool
}

type chatPostRequest struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// PostIncident posts the incident notification to the channel chosen during
// triage. The message id is a stable hash of the issue URL in simulated mode.
func (c *ChatNotifier) PostIncident(channel string, triage *types.TriageResult, issue *types.TrackedIssue) (*types.ChatMessage, error) {
	text := fmt.Sprintf(
		"%s | %s | assigned to %s | ticket #%d (%s)",
		triage.IncidentTitle,
		triage.Summary,
		triage.AssignedTeam,
		issue.IssueNumber,
		issue.IssueURL,
	)

	if c.Simulate {
		return &types.ChatMessage{
			Channel:   channel,
			MessageID: fmt.Sprintf("msg-%d", stableHash(issue.IssueURL)%100000),
			PostedAt:  time.Now(),
			Success:   true,
		}, nil
	}

	resp, err := c.Client.Post("/webhook", &chatPostRequest{
		Channel: channel,
		Text:    text,
	})

	if err != nil {
		return nil, fmt.Errorf("error posting chat notification: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat webhook returned status %d", resp.StatusCode)
	}

	return &types.ChatMessage{
		Channel:  channel,
		PostedAt: time.Now(),
		Success:  true,
	}, nil
}
