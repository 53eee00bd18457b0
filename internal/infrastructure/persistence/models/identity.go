package models

import (
	"github.com/shopspring/decimal"

	"github.com/agence/backend/internal/domain/consultant"
)

// UserModel maps the legacy cao_usuario table. Column names are kept
// verbatim; the schema predates this service and is shared with other
// systems. The senha column is intentionally never selected.
type UserModel struct {
	ID                   string  `gorm:"column:co_usuario;primaryKey"`
	Name                 string  `gorm:"column:no_usuario"`
	AuthorizationUserID  *string `gorm:"column:co_usuario_autorizacao"`
	RegistrationNumber   *int64  `gorm:"column:nu_matricula"`
	BirthDate            *string `gorm:"column:dt_nascimento"`
	CompanyAdmissionDate *string `gorm:"column:dt_admissao_empresa"`
	CompanyDismissalDate *string `gorm:"column:dt_desligamento"`
	InclusionDate        *string `gorm:"column:dt_inclusao"`
	ExpirationDate       *string `gorm:"column:dt_expiracao"`
	CPF                  *string `gorm:"column:nu_cpf"`
	RG                   *string `gorm:"column:nu_rg"`
	IssuingAgency        *string `gorm:"column:no_orgao_emissor"`
	IssuingState         *string `gorm:"column:uf_orgao_emissor"`
	Address              *string `gorm:"column:ds_endereco"`
	Email                *string `gorm:"column:no_email"`
	PersonalEmail        *string `gorm:"column:no_email_pessoal"`
	Phone                *string `gorm:"column:nu_telefone"`
	LastModified         string  `gorm:"column:dt_alteracao"`
	PhotoURL             *string `gorm:"column:url_foto"`
	InstantMessenger     *string `gorm:"column:instant_messenger"`
	ICQ                  *int64  `gorm:"column:icq"`
	MSN                  *string `gorm:"column:msn"`
	YahooMessenger       *string `gorm:"column:yms"`
	AddressComplement    *string `gorm:"column:ds_comp_end"`
	Neighborhood         *string `gorm:"column:ds_bairro"`
	PostalCode           *string `gorm:"column:nu_cep"`
	City                 *string `gorm:"column:no_cidade"`
	State                *string `gorm:"column:uf_cidade"`
	IssueDate            *string `gorm:"column:dt_expedicao"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "cao_usuario"
}

// ToDomain converts the persistence model to a domain Consultant.
func (m *UserModel) ToDomain() consultant.Consultant {
	return consultant.Consultant{
		ID:                   m.ID,
		Name:                 m.Name,
		AuthorizationUserID:  m.AuthorizationUserID,
		RegistrationNumber:   m.RegistrationNumber,
		BirthDate:            m.BirthDate,
		CompanyAdmissionDate: m.CompanyAdmissionDate,
		CompanyDismissalDate: m.CompanyDismissalDate,
		InclusionDate:        m.InclusionDate,
		ExpirationDate:       m.ExpirationDate,
		CPF:                  m.CPF,
		RG:                   m.RG,
		IssuingAgency:        m.IssuingAgency,
		IssuingState:         m.IssuingState,
		Address:              m.Address,
		Email:                m.Email,
		PersonalEmail:        m.PersonalEmail,
		Phone:                m.Phone,
		LastModified:         m.LastModified,
		PhotoURL:             m.PhotoURL,
		InstantMessenger:     m.InstantMessenger,
		ICQ:                  m.ICQ,
		MSN:                  m.MSN,
		YahooMessenger:       m.YahooMessenger,
		AddressComplement:    m.AddressComplement,
		Neighborhood:         m.Neighborhood,
		PostalCode:           m.PostalCode,
		City:                 m.City,
		State:                m.State,
		IssueDate:            m.IssueDate,
	}
}

// SystemPermissionModel maps the legacy permissao_sistema table. It carries
// which user may access which internal system and with which role.
type SystemPermissionModel struct {
	UserID   string `gorm:"column:co_usuario;primaryKey"`
	SystemID int64  `gorm:"column:co_sistema;primaryKey"`
	Active   string `gorm:"column:in_ativo"`
	UserType int    `gorm:"column:co_tipo_usuario"`
}

// TableName returns the table name for GORM
func (SystemPermissionModel) TableName() string {
	return "permissao_sistema"
}

// SalaryModel maps the legacy cao_salario table. brut_salario is the fixed
// monthly cost of a consultant used by the performance report.
type SalaryModel struct {
	UserID      string          `gorm:"column:co_usuario;primaryKey"`
	GrossSalary decimal.Decimal `gorm:"column:brut_salario"`
}

// TableName returns the table name for GORM
func (SalaryModel) TableName() string {
	return "cao_salario"
}
