package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"omis_backend/internal/domain/entities"
	"omis_backend/internal/usecase/interfaces"
)

// AssigneeInput is one desired assignee row in a replace-the-set request.
// Nil time fields leave the stored value untouched; Team/Country are only
// honoured when the assignee is first added.
type AssigneeInput struct {
	AdviserID     string
	EstimatedTime *int64
	ActualTime    *int64
	IsLead        bool
	TeamID        string
	CountryID     string
}

// IAssigneeUseCase is the assignee/subscriber time ledger. Set operations
// take the full desired set for an order; advisers missing from the input
// are removed, subject to the status rules below.
type IAssigneeUseCase interface {
	ListAssignees(ctx context.Context, orderID string) ([]entities.OrderAssignee, error)
	SetAssignees(ctx context.Context, orderID string, inputs []AssigneeInput) ([]entities.OrderAssignee, error)
	ListSubscribers(ctx context.Context, orderID string) ([]entities.OrderSubscriber, error)
	SetSubscribers(ctx context.Context, orderID string, adviserIDs []string) ([]entities.OrderSubscriber, error)
}

type AssigneeUseCase struct {
	store   interfaces.IOrderStore
	pricing pricingUpdater
	logger  *zap.Logger
	now     func() time.Time
}

var _ IAssigneeUseCase = (*AssigneeUseCase)(nil)

func NewAssigneeUseCase(store interfaces.IOrderStore, rates interfaces.IHourlyRateRepository, logger *zap.Logger) *AssigneeUseCase {
	return &AssigneeUseCase{
		store:   store,
		pricing: pricingUpdater{rates: rates},
		logger:  logger,
		now:     time.Now,
	}
}

func (u *AssigneeUseCase) ListAssignees(ctx context.Context, orderID string) ([]entities.OrderAssignee, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o.Assignees, nil
}

func (u *AssigneeUseCase) ListSubscribers(ctx context.Context, orderID string) ([]entities.OrderSubscriber, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return o.Subscribers, nil
}

// SetAssignees applies the desired assignee set against the ledger rules:
//
//   - estimated_time is a draft-only activity;
//   - actual_time can only be recorded from paid onward;
//   - at most one lead may be submitted (submitting a new lead un-leads the
//     previous one because the input replaces the whole set);
//   - removal is forbidden from paid onward unless the assignee never
//     recorded any time;
//   - the ledger is frozen entirely on complete and cancelled orders.
//
// A committed change to any estimated time triggers the pricing recompute,
// diffed before writing so identical recomputes touch nothing.
func (u *AssigneeUseCase) SetAssignees(ctx context.Context, orderID string, inputs []AssigneeInput) ([]entities.OrderAssignee, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.Status == entities.OrderStatusComplete || o.Status == entities.OrderStatusCancelled {
		return nil, entities.NewStatusConflictError(o.Status,
			entities.OrderStatusDraft, entities.OrderStatusQuoteAwaitingAcceptance,
			entities.OrderStatusQuoteAccepted, entities.OrderStatusPaid)
	}

	leads := 0
	seen := map[string]struct{}{}
	for _, in := range inputs {
		if in.AdviserID == "" {
			return nil, entities.NewValidationError("adviser_id", "this field is required")
		}
		if _, dup := seen[in.AdviserID]; dup {
			return nil, entities.NewValidationError("adviser_id", fmt.Sprintf("adviser %q appears more than once", in.AdviserID))
		}
		seen[in.AdviserID] = struct{}{}
		if in.IsLead {
			leads++
		}
	}
	if leads > 1 {
		return nil, &entities.ConflictError{Message: "only one lead assignee is allowed", Current: o.Status}
	}

	existing := make(map[string]entities.OrderAssignee, len(o.Assignees))
	for _, a := range o.Assignees {
		existing[a.AdviserID] = a
	}

	estimatedChanged := false
	desired := make([]entities.OrderAssignee, 0, len(inputs))
	for _, in := range inputs {
		current, found := existing[in.AdviserID]
		if !found {
			current = entities.OrderAssignee{
				OrderID:   o.ID,
				AdviserID: in.AdviserID,
				TeamID:    in.TeamID,
				CountryID: in.CountryID,
				CreatedAt: u.now().UTC(),
			}
		}

		if in.EstimatedTime != nil && *in.EstimatedTime != current.EstimatedTime {
			if o.Status.AtOrPast(entities.OrderStatusQuoteAwaitingAcceptance) {
				return nil, &entities.ConflictError{
					Message:  "estimated time can only be set while the order is in draft",
					Current:  o.Status,
					Required: []entities.OrderStatus{entities.OrderStatusDraft},
				}
			}
			if *in.EstimatedTime < 0 {
				return nil, entities.NewValidationError("estimated_time", "must not be negative")
			}
			current.EstimatedTime = *in.EstimatedTime
			estimatedChanged = true
		}

		if in.ActualTime != nil && !equalTime(in.ActualTime, current.ActualTime) {
			if !o.Status.AtOrPast(entities.OrderStatusPaid) {
				return nil, &entities.ConflictError{
					Message:  "actual time can only be recorded once the order has been paid",
					Current:  o.Status,
					Required: []entities.OrderStatus{entities.OrderStatusPaid},
				}
			}
			if *in.ActualTime < 0 {
				return nil, entities.NewValidationError("actual_time", "must not be negative")
			}
			current.ActualTime = in.ActualTime
		}

		current.IsLead = in.IsLead
		desired = append(desired, current)
	}

	var removed []string
	for adviserID, a := range existing {
		if _, kept := seen[adviserID]; kept {
			continue
		}
		if o.Status.AtOrPast(entities.OrderStatusPaid) && a.HasRecordedTime() {
			return nil, &entities.ConflictError{
				Message: fmt.Sprintf("assignee %q has recorded time and cannot be removed", adviserID),
				Current: o.Status,
			}
		}
		removed = append(removed, adviserID)
		if a.EstimatedTime > 0 {
			estimatedChanged = true
		}
	}

	if err := u.store.SaveAssignees(ctx, o.ID, desired, removed); err != nil {
		return nil, err
	}

	if estimatedChanged {
		o.Assignees = desired
		changed, err := u.pricing.Refresh(ctx, &o)
		if err != nil {
			return nil, err
		}
		if changed {
			o.UpdatedAt = u.now().UTC()
			if _, err := u.store.UpdateOrder(ctx, o); err != nil {
				return nil, err
			}
			u.logger.Info("order repriced after assignee change",
				zap.String("order_id", o.ID),
				zap.Int64("total_cost", o.TotalCost),
			)
		}
	}

	return desired, nil
}

func (u *AssigneeUseCase) SetSubscribers(ctx context.Context, orderID string, adviserIDs []string) ([]entities.OrderSubscriber, error) {
	o, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	existing := make(map[string]entities.OrderSubscriber, len(o.Subscribers))
	for _, s := range o.Subscribers {
		existing[s.AdviserID] = s
	}

	seen := map[string]struct{}{}
	desired := make([]entities.OrderSubscriber, 0, len(adviserIDs))
	for _, adviserID := range adviserIDs {
		if adviserID == "" {
			return nil, entities.NewValidationError("adviser_id", "this field is required")
		}
		if _, dup := seen[adviserID]; dup {
			continue
		}
		seen[adviserID] = struct{}{}

		sub, found := existing[adviserID]
		if !found {
			sub = entities.OrderSubscriber{
				OrderID:   o.ID,
				AdviserID: adviserID,
				CreatedAt: u.now().UTC(),
			}
		}
		desired = append(desired, sub)
	}

	var removed []string
	for adviserID := range existing {
		if _, kept := seen[adviserID]; !kept {
			removed = append(removed, adviserID)
		}
	}

	if err := u.store.SaveSubscribers(ctx, o.ID, desired, removed); err != nil {
		return nil, err
	}
	return desired, nil
}

func (u *AssigneeUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func equalTime(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
