package consultant

// Fixed authorization constants for the reporting scope. A consultant is
// eligible only while it holds an active permission on the CAO system with
// one of the consultant role codes.
const (
	SystemID   = 1
	ActiveFlag = "S"
)

// RoleCodes is the closed set of permission role codes that mark a user
// as a consultant.
var RoleCodes = []int{0, 1, 2}

// Consultant is a read model over the legacy cao_usuario table.
type Consultant struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	AuthorizationUserID  *string `json:"authorizationUserId"`
	RegistrationNumber   *int64  `json:"registrationNumber"`
	BirthDate            *string `json:"birthDate"`
	CompanyAdmissionDate *string `json:"companyAdmissionDate"`
	CompanyDismissalDate *string `json:"companyDismissalDate"`
	InclusionDate        *string `json:"inclusionDate"`
	ExpirationDate       *string `json:"expirationDate"`
	CPF                  *string `json:"cpf"`
	RG                   *string `json:"rg"`
	IssuingAgency        *string `json:"issuingAgency"`
	IssuingState         *string `json:"issuingState"`
	Address              *string `json:"address"`
	Email                *string `json:"email"`
	PersonalEmail        *string `json:"personalEmail"`
	Phone                *string `json:"phone"`
	LastModified         string  `json:"lastModified"`
	PhotoURL             *string `json:"photoUrl"`
	InstantMessenger     *string `json:"instantMessenger"`
	ICQ                  *int64  `json:"icq"`
	MSN                  *string `json:"msn"`
	YahooMessenger       *string `json:"yahooMessenger"`
	AddressComplement    *string `json:"addressComplement"`
	Neighborhood         *string `json:"neighborhood"`
	PostalCode           *string `json:"postalCode"`
	City                 *string `json:"city"`
	State                *string `json:"state"`
	IssueDate            *string `json:"issueDate"`
}
