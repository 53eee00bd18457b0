package models

import "github.com/agence/backend/internal/domain/client"

// ClientModel maps the legacy cao_cliente table.
type ClientModel struct {
	ID                 int64   `gorm:"column:co_cliente;primaryKey"`
	CompanyName        *string `gorm:"column:no_razao"`
	TradeName          *string `gorm:"column:no_fantasia"`
	ContactName        *string `gorm:"column:no_contato"`
	Phone              *string `gorm:"column:nu_telefone"`
	PhoneExtension     *string `gorm:"column:nu_ramal"`
	CNPJ               *string `gorm:"column:nu_cnpj"`
	Address            *string `gorm:"column:ds_endereco"`
	AddressNumber      *int64  `gorm:"column:nu_numero"`
	AddressComplement  *string `gorm:"column:ds_complemento"`
	Neighborhood       string  `gorm:"column:no_bairro"`
	ZipCode            *string `gorm:"column:nu_cep"`
	Country            *string `gorm:"column:no_pais"`
	IndustryID         *int64  `gorm:"column:co_ramo"`
	CityID             int64   `gorm:"column:co_cidade"`
	StatusID           *int64  `gorm:"column:co_status"`
	Website            *string `gorm:"column:ds_site"`
	Email              *string `gorm:"column:ds_email"`
	ContactPosition    *string `gorm:"column:ds_cargo_contato"`
	ClientType         *string `gorm:"column:tp_cliente"`
	Reference          *string `gorm:"column:ds_referencia"`
	StatusComplementID *int64  `gorm:"column:co_complemento_status"`
	Fax                *string `gorm:"column:nu_fax"`
	PhoneAreaCode2     *string `gorm:"column:ddd2"`
	Phone2             *string `gorm:"column:telefone2"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "cao_cliente"
}

// ToDomain converts the persistence model to a domain Client.
func (m *ClientModel) ToDomain() client.Client {
	return client.Client{
		ID:                 m.ID,
		CompanyName:        m.CompanyName,
		TradeName:          m.TradeName,
		ContactName:        m.ContactName,
		Phone:              m.Phone,
		PhoneExtension:     m.PhoneExtension,
		CNPJ:               m.CNPJ,
		Address:            m.Address,
		AddressNumber:      m.AddressNumber,
		AddressComplement:  m.AddressComplement,
		Neighborhood:       m.Neighborhood,
		ZipCode:            m.ZipCode,
		Country:            m.Country,
		IndustryID:         m.IndustryID,
		CityID:             m.CityID,
		StatusID:           m.StatusID,
		Website:            m.Website,
		Email:              m.Email,
		ContactPosition:    m.ContactPosition,
		ClientType:         m.ClientType,
		Reference:          m.Reference,
		StatusComplementID: m.StatusComplementID,
		Fax:                m.Fax,
		PhoneAreaCode2:     m.PhoneAreaCode2,
		Phone2:             m.Phone2,
	}
}
