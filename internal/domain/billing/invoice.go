package billing

import "github.com/shopspring/decimal"

// Invoice is a read model over the legacy cao_fatura table. Value is the
// gross amount; tax and commission percentages are applied downstream by
// the monthly report queries.
type Invoice struct {
	ID                   int64           `json:"invoiceId"`
	ClientID             int64           `json:"clientId"`
	SystemID             int64           `json:"systemId"`
	ServiceOrderID       int64           `json:"serviceOrderId"`
	InvoiceNumber        int64           `json:"invoiceNumber"`
	Value                decimal.Decimal `json:"value"`
	IssueDate            *string         `json:"issueDate"`
	InvoiceBody          string          `json:"invoiceBody"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage"`
	TaxPercentage        decimal.Decimal `json:"taxPercentage"`
}

// InvoiceFilter narrows an invoice listing. Dates are inclusive ISO
// (YYYY-MM-DD) bounds on the issue date; an empty ServiceOrderIDs list
// means no restriction.
type InvoiceFilter struct {
	StartIssueDate  string
	EndIssueDate    string
	ServiceOrderIDs []int64
}
