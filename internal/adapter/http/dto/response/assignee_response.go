package response

import (
	"time"

	"omis_backend/internal/domain/entities"
)

type AssigneeResponse struct {
	AdviserID     string    `json:"adviser_id"`
	EstimatedTime int64     `json:"estimated_time"`
	ActualTime    *int64    `json:"actual_time"`
	IsLead        bool      `json:"is_lead"`
	TeamID        string    `json:"team_id"`
	CountryID     string    `json:"country_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func AssigneeFromEntity(a entities.OrderAssignee) AssigneeResponse {
	return AssigneeResponse{
		AdviserID:     a.AdviserID,
		EstimatedTime: a.EstimatedTime,
		ActualTime:    a.ActualTime,
		IsLead:        a.IsLead,
		TeamID:        a.TeamID,
		CountryID:     a.CountryID,
		CreatedAt:     a.CreatedAt,
	}
}

func AssigneesFromEntities(assignees []entities.OrderAssignee) []AssigneeResponse {
	out := make([]AssigneeResponse, 0, len(assignees))
	for _, a := range assignees {
		out = append(out, AssigneeFromEntity(a))
	}
	return out
}

type SubscriberResponse struct {
	AdviserID string    `json:"adviser_id"`
	CreatedAt time.Time `json:"created_at"`
}

func SubscriberFromEntity(s entities.OrderSubscriber) SubscriberResponse {
	return SubscriberResponse{AdviserID: s.AdviserID, CreatedAt: s.CreatedAt}
}

func SubscribersFromEntities(subs []entities.OrderSubscriber) []SubscriberResponse {
	out := make([]SubscriberResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, SubscriberFromEntity(s))
	}
	return out
}
