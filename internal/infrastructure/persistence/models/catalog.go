package models

import (
	"github.com/invoicer/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for catalog products
type ProductModel struct {
	BaseModel
	Name     string          `gorm:"type:varchar(200);not null;index"`
	Details  string          `gorm:"type:text"`
	Rate     decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Category string          `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Details:    m.Details,
		Rate:       m.Rate,
		Category:   m.Category,
	}
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Name:     p.Name,
		Details:  p.Details,
		Rate:     p.Rate,
		Category: p.Category,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}
