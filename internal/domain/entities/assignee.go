package entities

import "time"

// OrderAssignee is an adviser doing billable work on an order, one row per
// (order, adviser) pair.
//
// Storage model (DynamoDB):
//   - PK: order_id
//   - SK: adviser_id
//
// The adviser reference is immutable after creation, and team/country are
// denormalised at creation time and frozen thereafter. At most one assignee
// per order may be lead; the state machine enforces this as a domain rule,
// not a table constraint.
type OrderAssignee struct {
	OrderID   string `json:"order_id"`
	AdviserID string `json:"adviser_id"`

	EstimatedTime int64  `json:"estimated_time"` // minutes
	ActualTime    *int64 `json:"actual_time"`    // minutes, nil until completion
	IsLead        bool   `json:"is_lead"`

	TeamID    string `json:"team_id"`
	CountryID string `json:"country_id"`

	CreatedAt time.Time `json:"created_at"`
}

// HasRecordedTime reports whether the assignee carries any estimated or
// actual time. Assignees with recorded time cannot be removed from paid
// orders.
func (a OrderAssignee) HasRecordedTime() bool {
	return a.EstimatedTime > 0 || (a.ActualTime != nil && *a.ActualTime > 0)
}

// OrderSubscriber is an adviser watching an order. Subscribers carry no time
// or lead semantics and are excluded from pricing.
type OrderSubscriber struct {
	OrderID   string    `json:"order_id"`
	AdviserID string    `json:"adviser_id"`
	CreatedAt time.Time `json:"created_at"`
}
