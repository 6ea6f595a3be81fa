package repository

import (
	"time"

	"omis_backend/internal/domain/entities"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		Line1:    a.Line1,
		Line2:    a.Line2,
		Town:     a.Town,
		County:   a.County,
		Postcode: a.Postcode,
		Country:  a.Country,
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		Line1:    it.Line1,
		Line2:    it.Line2,
		Town:     it.Town,
		County:   it.County,
		Postcode: it.Postcode,
		Country:  it.Country,
	}
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                 o.ID,
		Reference:          o.Reference,
		PublicToken:        o.PublicToken,
		Status:             string(o.Status),
		CompanyID:          o.CompanyID,
		ContactID:          o.ContactID,
		PrimaryMarketID:    o.PrimaryMarketID,
		ServiceTypes:       o.ServiceTypes,
		Description:        o.Description,
		DeliveryDate:       formatTimePtr(o.DeliveryDate),
		HourlyRateID:       o.HourlyRateID,
		DiscountValue:      o.DiscountValue,
		VATStatus:          string(o.VATStatus),
		VATNumber:          o.VATNumber,
		VATVerified:        o.VATVerified,
		NetCost:            o.NetCost,
		SubtotalCost:       o.SubtotalCost,
		VATCost:            o.VATCost,
		TotalCost:          o.TotalCost,
		BillingAddress:     toAddressItem(o.BillingAddress),
		BillingContactName: o.BillingContactName,
		CurrentQuoteID:     o.CurrentQuoteID,
		CurrentInvoiceID:   o.CurrentInvoiceID,
		PaidOn:             formatTimePtr(o.PaidOn),
		CompletedOn:        formatTimePtr(o.CompletedOn),
		CompletedByID:      o.CompletedByID,
		CancelledOn:        formatTimePtr(o.CancelledOn),
		CancelledByID:      o.CancelledByID,
		CancellationReason: o.CancellationReason,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                 it.ID,
		Reference:          it.Reference,
		PublicToken:        it.PublicToken,
		Status:             entities.OrderStatus(it.Status),
		CompanyID:          it.CompanyID,
		ContactID:          it.ContactID,
		PrimaryMarketID:    it.PrimaryMarketID,
		ServiceTypes:       it.ServiceTypes,
		Description:        it.Description,
		DeliveryDate:       parseTimePtr(it.DeliveryDate),
		HourlyRateID:       it.HourlyRateID,
		DiscountValue:      it.DiscountValue,
		VATStatus:          entities.VATStatus(it.VATStatus),
		VATNumber:          it.VATNumber,
		VATVerified:        it.VATVerified,
		NetCost:            it.NetCost,
		SubtotalCost:       it.SubtotalCost,
		VATCost:            it.VATCost,
		TotalCost:          it.TotalCost,
		BillingAddress:     fromAddressItem(it.BillingAddress),
		BillingContactName: it.BillingContactName,
		CurrentQuoteID:     it.CurrentQuoteID,
		CurrentInvoiceID:   it.CurrentInvoiceID,
		PaidOn:             parseTimePtr(it.PaidOn),
		CompletedOn:        parseTimePtr(it.CompletedOn),
		CompletedByID:      it.CompletedByID,
		CancelledOn:        parseTimePtr(it.CancelledOn),
		CancelledByID:      it.CancelledByID,
		CancellationReason: it.CancellationReason,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func toAssigneeItem(a entities.OrderAssignee) assigneeItem {
	return assigneeItem{
		OrderID:       a.OrderID,
		AdviserID:     a.AdviserID,
		EstimatedTime: a.EstimatedTime,
		ActualTime:    a.ActualTime,
		IsLead:        a.IsLead,
		TeamID:        a.TeamID,
		CountryID:     a.CountryID,
		CreatedAt:     formatTime(a.CreatedAt),
	}
}

func fromAssigneeItem(it assigneeItem) entities.OrderAssignee {
	return entities.OrderAssignee{
		OrderID:       it.OrderID,
		AdviserID:     it.AdviserID,
		EstimatedTime: it.EstimatedTime,
		ActualTime:    it.ActualTime,
		IsLead:        it.IsLead,
		TeamID:        it.TeamID,
		CountryID:     it.CountryID,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}

func toSubscriberItem(s entities.OrderSubscriber) subscriberItem {
	return subscriberItem{
		OrderID:   s.OrderID,
		AdviserID: s.AdviserID,
		CreatedAt: formatTime(s.CreatedAt),
	}
}

func fromSubscriberItem(it subscriberItem) entities.OrderSubscriber {
	return entities.OrderSubscriber{
		OrderID:   it.OrderID,
		AdviserID: it.AdviserID,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:            q.ID,
		OrderID:       q.OrderID,
		Reference:     q.Reference,
		Content:       q.Content,
		ExpiresOn:     formatTime(q.ExpiresOn),
		AcceptedOn:    formatTimePtr(q.AcceptedOn),
		AcceptedByID:  q.AcceptedByID,
		CancelledOn:   formatTimePtr(q.CancelledOn),
		CancelledByID: q.CancelledByID,
		CreatedAt:     formatTime(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	return entities.Quote{
		ID:            it.ID,
		OrderID:       it.OrderID,
		Reference:     it.Reference,
		Content:       it.Content,
		ExpiresOn:     parseTime(it.ExpiresOn),
		AcceptedOn:    parseTimePtr(it.AcceptedOn),
		AcceptedByID:  it.AcceptedByID,
		CancelledOn:   parseTimePtr(it.CancelledOn),
		CancelledByID: it.CancelledByID,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:                 inv.ID,
		OrderID:            inv.OrderID,
		InvoiceNumber:      inv.InvoiceNumber,
		PaymentDueDate:     formatTime(inv.PaymentDueDate),
		BillingAddress:     toAddressItem(inv.BillingAddress),
		BillingContactName: inv.BillingContactName,
		VATStatus:          string(inv.VATStatus),
		VATNumber:          inv.VATNumber,
		VATVerified:        inv.VATVerified,
		NetCost:            inv.NetCost,
		SubtotalCost:       inv.SubtotalCost,
		VATCost:            inv.VATCost,
		TotalCost:          inv.TotalCost,
		ContactReference:   inv.ContactReference,
		CreatedAt:          formatTime(inv.CreatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:                 it.ID,
		OrderID:            it.OrderID,
		InvoiceNumber:      it.InvoiceNumber,
		PaymentDueDate:     parseTime(it.PaymentDueDate),
		BillingAddress:     fromAddressItem(it.BillingAddress),
		BillingContactName: it.BillingContactName,
		VATStatus:          entities.VATStatus(it.VATStatus),
		VATNumber:          it.VATNumber,
		VATVerified:        it.VATVerified,
		NetCost:            it.NetCost,
		SubtotalCost:       it.SubtotalCost,
		VATCost:            it.VATCost,
		TotalCost:          it.TotalCost,
		ContactReference:   it.ContactReference,
		CreatedAt:          parseTime(it.CreatedAt),
	}
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:         p.ID,
		OrderID:    p.OrderID,
		Amount:     p.Amount,
		Method:     string(p.Method),
		ReceivedOn: formatTime(p.ReceivedOn),
		CreatedAt:  formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:         it.ID,
		OrderID:    it.OrderID,
		Amount:     it.Amount,
		Method:     entities.PaymentMethod(it.Method),
		ReceivedOn: parseTime(it.ReceivedOn),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
