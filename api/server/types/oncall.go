package types

// OnCallEntry is static reference data for one on-call rotation.
type OnCallEntry struct {
	Rotation         string `json:"rotation"`
	EscalationPolicy string `json:"escalation_policy"`
	CurrentAssignee  string `json:"current_assignee"`
	Contact          string `json:"contact"`
}

type GetOnCallRequest struct {
	Rotation string `schema:"rotation"`
}

type ListOnCallResponse struct {
	Rotations []*OnCallEntry `json:"rotations"`
}
