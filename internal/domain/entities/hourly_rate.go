package entities

import "github.com/shopspring/decimal"

// HourlyRate is reference data: the billable rate applied to assignee time
// and the VAT percentage in force for that rate. Read-only from the
// engine's perspective.
//
// Storage model (DynamoDB):
//   - PK: id
type HourlyRate struct {
	ID        string          `json:"id"`
	RateValue int64           `json:"rate_value"` // minor units per hour
	VATValue  decimal.Decimal `json:"vat_value"`  // percentage, e.g. 19.5
}
