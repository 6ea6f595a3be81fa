package request

import "omis_backend/internal/usecase"

// AssigneeRequest is one adviser row of a set-assignees call.
type AssigneeRequest struct {
	AdviserID     string `json:"adviser_id" binding:"required"`
	EstimatedTime *int64 `json:"estimated_time"`
	ActualTime    *int64 `json:"actual_time"`
	IsLead        bool   `json:"is_lead"`
	TeamID        string `json:"team_id"`
	CountryID     string `json:"country_id"`
}

// SetAssigneesRequest replaces the full assignee set of an order.
type SetAssigneesRequest struct {
	Assignees []AssigneeRequest `json:"assignees"`
}

func (r SetAssigneesRequest) ToInputs() []usecase.AssigneeInput {
	inputs := make([]usecase.AssigneeInput, 0, len(r.Assignees))
	for _, a := range r.Assignees {
		inputs = append(inputs, usecase.AssigneeInput{
			AdviserID:     a.AdviserID,
			EstimatedTime: a.EstimatedTime,
			ActualTime:    a.ActualTime,
			IsLead:        a.IsLead,
			TeamID:        a.TeamID,
			CountryID:     a.CountryID,
		})
	}
	return inputs
}

// SubscriberRequest is one adviser row of a set-subscribers call.
type SubscriberRequest struct {
	AdviserID string `json:"adviser_id" binding:"required"`
}

// SetSubscribersRequest replaces the full subscriber set of an order.
type SetSubscribersRequest struct {
	Subscribers []SubscriberRequest `json:"subscribers"`
}

func (r SetSubscribersRequest) ToAdviserIDs() []string {
	ids := make([]string, 0, len(r.Subscribers))
	for _, s := range r.Subscribers {
		ids = append(ids, s.AdviserID)
	}
	return ids
}
