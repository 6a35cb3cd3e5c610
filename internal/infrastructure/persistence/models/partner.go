package models

import (
	"github.com/invoicer/backend/internal/domain/partner"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
)

// CustomerModel is the persistence model for customers
type CustomerModel struct {
	BaseModel
	Name         string              `gorm:"type:varchar(200);not null;index"`
	Email        string              `gorm:"type:varchar(200)"`
	Phone        string              `gorm:"type:varchar(50)"`
	Organization *string             `gorm:"type:varchar(200)"`
	Address      valueobject.Address `gorm:"type:text"`
	Status       string              `gorm:"type:varchar(20);not null;default:'active'"`
	Notes        string              `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Organization: m.Organization,
		Address:      m.Address,
		Status:       partner.CustomerStatus(m.Status),
		Notes:        m.Notes,
	}
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		Organization: c.Organization,
		Address:      c.Address,
		Status:       string(c.Status),
		Notes:        c.Notes,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// CompanyModel is the persistence model for issuing companies
type CompanyModel struct {
	BaseModel
	Name    string              `gorm:"type:varchar(200);not null"`
	Email   string              `gorm:"type:varchar(200)"`
	Phone   string              `gorm:"type:varchar(50)"`
	TaxID   string              `gorm:"type:varchar(50)"`
	Website string              `gorm:"type:varchar(200)"`
	Address valueobject.Address `gorm:"type:text"`
	LogoURL string              `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company
func (m *CompanyModel) ToDomain() *partner.Company {
	return &partner.Company{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		TaxID:      m.TaxID,
		Website:    m.Website,
		Address:    m.Address,
		LogoURL:    m.LogoURL,
	}
}

// CompanyModelFromDomain creates a new persistence model from a domain Company
func CompanyModelFromDomain(c *partner.Company) *CompanyModel {
	m := &CompanyModel{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		TaxID:   c.TaxID,
		Website: c.Website,
		Address: c.Address,
		LogoURL: c.LogoURL,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
