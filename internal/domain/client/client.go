package client

// ActiveType is the tp_cliente marker that makes a client visible to the
// reporting endpoints.
const ActiveType = "A"

// Client is a read model over the legacy cao_cliente table.
type Client struct {
	ID                 int64   `json:"clientId"`
	CompanyName        *string `json:"companyName"`
	TradeName          *string `json:"tradeName"`
	ContactName        *string `json:"contactName"`
	Phone              *string `json:"phone"`
	PhoneExtension     *string `json:"phoneExtension"`
	CNPJ               *string `json:"cnpj"`
	Address            *string `json:"address"`
	AddressNumber      *int64  `json:"addressNumber"`
	AddressComplement  *string `json:"addressComplement"`
	Neighborhood       string  `json:"neighborhood"`
	ZipCode            *string `json:"zipCode"`
	Country            *string `json:"country"`
	IndustryID         *int64  `json:"industryId"`
	CityID             int64   `json:"cityId"`
	StatusID           *int64  `json:"statusId"`
	Website            *string `json:"website"`
	Email              *string `json:"email"`
	ContactPosition    *string `json:"contactPosition"`
	ClientType         *string `json:"clientType"`
	Reference          *string `json:"reference"`
	StatusComplementID *int64  `json:"statusComplementId"`
	Fax                *string `json:"fax"`
	PhoneAreaCode2     *string `json:"phoneAreaCode2"`
	Phone2             *string `json:"phone2"`
}

// Filter narrows a client listing to an explicit id allow-list. An empty
// list means no restriction, not "match nothing".
type Filter struct {
	ClientIDs []int64
}
