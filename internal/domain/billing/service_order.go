package billing

// ServiceOrder is a read model over the legacy cao_os table. It is what
// links invoices back to the consultant that performed the work.
type ServiceOrder struct {
	ID                    int64   `json:"serviceOrderId"`
	OrderNumber           *int64  `json:"orderNumber"`
	SystemID              int64   `json:"systemId"`
	ConsultantID          string  `json:"consultantId"`
	ArchitectureID        int64   `json:"architectureId"`
	Description           string  `json:"description"`
	Characteristics       string  `json:"characteristics"`
	Requirements          *string `json:"requirements"`
	StartDate             *string `json:"startDate"`
	EndDate               *string `json:"endDate"`
	StatusID              int64   `json:"statusId"`
	RequestingDepartment  string  `json:"requestingDepartment"`
	RequestDate           *string `json:"requestDate"`
	RequestPhone          string  `json:"requestPhone"`
	RequestPhoneAreaCode  *string `json:"requestPhoneAreaCode"`
	RequestPhone2         *string `json:"requestPhone2"`
	RequestPhone2AreaCode *string `json:"requestPhone2AreaCode"`
	RequestingUser        string  `json:"requestingUser"`
	ImplementationDate    *string `json:"implementationDate"`
	WarrantyDate          *string `json:"warrantyDate"`
	EmailID               *int64  `json:"emailId"`
	ProspectRelationID    *int64  `json:"prospectRelationId"`
}

// ServiceOrderFilter narrows a service-order listing. Dates are inclusive
// ISO (YYYY-MM-DD) bounds on the request date (dt_sol); an empty
// ConsultantIDs list means no restriction.
type ServiceOrderFilter struct {
	ConsultantIDs    []string
	StartRequestDate string
	EndRequestDate   string
}
