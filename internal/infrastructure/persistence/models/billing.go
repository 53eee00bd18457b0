package models

import (
	"github.com/shopspring/decimal"

	"github.com/agence/backend/internal/domain/billing"
)

// InvoiceModel maps the legacy cao_fatura table. valor is the gross
// invoice amount; total_imp_inc and comissao_cn are percentages.
type InvoiceModel struct {
	ID                   int64           `gorm:"column:co_fatura;primaryKey"`
	ClientID             int64           `gorm:"column:co_cliente"`
	SystemID             int64           `gorm:"column:co_sistema"`
	ServiceOrderID       int64           `gorm:"column:co_os"`
	InvoiceNumber        int64           `gorm:"column:num_nf"`
	Value                decimal.Decimal `gorm:"column:valor"`
	IssueDate            *string         `gorm:"column:data_emissao"`
	InvoiceBody          string          `gorm:"column:corpo_nf"`
	CommissionPercentage decimal.Decimal `gorm:"column:comissao_cn"`
	TaxPercentage        decimal.Decimal `gorm:"column:total_imp_inc"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "cao_fatura"
}

// ToDomain converts the persistence model to a domain Invoice.
func (m *InvoiceModel) ToDomain() billing.Invoice {
	return billing.Invoice{
		ID:                   m.ID,
		ClientID:             m.ClientID,
		SystemID:             m.SystemID,
		ServiceOrderID:       m.ServiceOrderID,
		InvoiceNumber:        m.InvoiceNumber,
		Value:                m.Value,
		IssueDate:            m.IssueDate,
		InvoiceBody:          m.InvoiceBody,
		CommissionPercentage: m.CommissionPercentage,
		TaxPercentage:        m.TaxPercentage,
	}
}

// ServiceOrderModel maps the legacy cao_os table.
type ServiceOrderModel struct {
	ID                    int64   `gorm:"column:co_os;primaryKey"`
	OrderNumber           *int64  `gorm:"column:nu_os"`
	SystemID              int64   `gorm:"column:co_sistema"`
	ConsultantID          string  `gorm:"column:co_usuario"`
	ArchitectureID        int64   `gorm:"column:co_arquitetura"`
	Description           string  `gorm:"column:ds_os"`
	Characteristics       string  `gorm:"column:ds_caracteristica"`
	Requirements          *string `gorm:"column:ds_requisito"`
	StartDate             *string `gorm:"column:dt_inicio"`
	EndDate               *string `gorm:"column:dt_fim"`
	StatusID              int64   `gorm:"column:co_status"`
	RequestingDepartment  string  `gorm:"column:diretoria_sol"`
	RequestDate           *string `gorm:"column:dt_sol"`
	RequestPhone          string  `gorm:"column:nu_tel_sol"`
	RequestPhoneAreaCode  *string `gorm:"column:ddd_tel_sol"`
	RequestPhone2         *string `gorm:"column:nu_tel_sol2"`
	RequestPhone2AreaCode *string `gorm:"column:ddd_tel_sol2"`
	RequestingUser        string  `gorm:"column:usuario_sol"`
	ImplementationDate    *string `gorm:"column:dt_imp"`
	WarrantyDate          *string `gorm:"column:dt_garantia"`
	EmailID               *int64  `gorm:"column:co_email"`
	ProspectRelationID    *int64  `gorm:"column:co_os_prospect_rel"`
}

// TableName returns the table name for GORM
func (ServiceOrderModel) TableName() string {
	return "cao_os"
}

// ToDomain converts the persistence model to a domain ServiceOrder.
func (m *ServiceOrderModel) ToDomain() billing.ServiceOrder {
	return billing.ServiceOrder{
		ID:                    m.ID,
		OrderNumber:           m.OrderNumber,
		SystemID:              m.SystemID,
		ConsultantID:          m.ConsultantID,
		ArchitectureID:        m.ArchitectureID,
		Description:           m.Description,
		Characteristics:       m.Characteristics,
		Requirements:          m.Requirements,
		StartDate:             m.StartDate,
		EndDate:               m.EndDate,
		StatusID:              m.StatusID,
		RequestingDepartment:  m.RequestingDepartment,
		RequestDate:           m.RequestDate,
		RequestPhone:          m.RequestPhone,
		RequestPhoneAreaCode:  m.RequestPhoneAreaCode,
		RequestPhone2:         m.RequestPhone2,
		RequestPhone2AreaCode: m.RequestPhone2AreaCode,
		RequestingUser:        m.RequestingUser,
		ImplementationDate:    m.ImplementationDate,
		WarrantyDate:          m.WarrantyDate,
		EmailID:               m.EmailID,
		ProspectRelationID:    m.ProspectRelationID,
	}
}
