package report

import "github.com/shopspring/decimal"

// ConsultantMonthlyTotal is one row of the consultant performance report:
// the sums of a consultant's invoice facts for one calendar month, rounded
// to currency precision after summation, joined with the consultant's
// fixed cost.
//
// NetValue = InvoiceValue - TaxesValue and
// Profit = NetValue - CommissionValue - FixedCost, both rounded to 2
// decimal places once, after the sums.
type ConsultantMonthlyTotal struct {
	UserID          string          `json:"userId"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	InvoiceValue    decimal.Decimal `json:"invoiceValue"`
	TaxesValue      decimal.Decimal `json:"taxesValue"`
	NetValue        decimal.Decimal `json:"netValue"`
	CommissionValue decimal.Decimal `json:"commissionValue"`
	FixedCost       decimal.Decimal `json:"fixedCost"`
	Profit          decimal.Decimal `json:"profit"`
}

// ClientMonthlyTotal is one row of the client revenue report. Clients have
// no commission or fixed-cost dimension.
type ClientMonthlyTotal struct {
	ClientID     int64           `json:"clientId"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	InvoiceValue decimal.Decimal `json:"invoiceValue"`
	TaxesValue   decimal.Decimal `json:"taxesValue"`
	NetValue     decimal.Decimal `json:"netValue"`
}

// ConsultantFilter scopes the consultant report. UserIDs is an optional
// allow-list; empty means every eligible consultant.
type ConsultantFilter struct {
	Range   MonthRange
	UserIDs []string
}

// ClientFilter scopes the client report analogously. Query tokens that
// fail integer coercion never reach the filter; an empty list means every
// active client.
type ClientFilter struct {
	Range     MonthRange
	ClientIDs []int64
}
