package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/invoicing"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for invoices
type InvoiceModel struct {
	BaseModel
	Number          string             `gorm:"type:varchar(50);not null;uniqueIndex"`
	Status          string             `gorm:"type:varchar(20);not null;default:'draft';index"`
	IssueDate       time.Time          `gorm:"not null;index"`
	DueDate         time.Time          `gorm:"not null"`
	Currency        string             `gorm:"type:varchar(3);not null;default:'USD'"`
	CompanyID       uuid.UUID          `gorm:"type:uuid;not null;index"`
	CustomerID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	TaxRate         decimal.Decimal    `gorm:"type:decimal(20,4);not null;default:0"`
	TaxType         string             `gorm:"type:varchar(20);not null;default:'percentage'"`
	DiscountValue   decimal.Decimal    `gorm:"type:decimal(20,4);not null;default:0"`
	DiscountType    string             `gorm:"type:varchar(20);not null;default:'percentage'"`
	DiscountEnabled bool               `gorm:"not null;default:false"`
	TotalPaid       decimal.Decimal    `gorm:"type:decimal(20,4);not null;default:0"`
	Notes           string             `gorm:"type:text"`
	TemplateID      string             `gorm:"type:varchar(120)"`
	Items           []InvoiceItemModel `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel is the persistence model for invoice line items.
// Position keeps the user's ordering.
type InvoiceItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	Description string          `gorm:"type:text"`
	Quantity    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}

// TableName returns the table name for GORM
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the persistence model to a domain Invoice.
// Items must be loaded ordered by position.
func (m *InvoiceModel) ToDomain() *invoicing.Invoice {
	items := make([]invoicing.LineItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = invoicing.LineItem{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		}
	}
	return &invoicing.Invoice{
		BaseEntity: m.BaseModel.ToDomain(),
		Number:     m.Number,
		Status:     invoicing.InvoiceStatus(m.Status),
		IssueDate:  m.IssueDate,
		DueDate:    m.DueDate,
		Currency:   valueobject.Currency(m.Currency),
		CompanyID:  m.CompanyID,
		CustomerID: m.CustomerID,
		Items:      items,
		Tax: invoicing.TaxConfig{
			Rate: m.TaxRate,
			Type: invoicing.AdjustmentType(m.TaxType),
		},
		Discount: invoicing.DiscountConfig{
			Value:   m.DiscountValue,
			Type:    invoicing.AdjustmentType(m.DiscountType),
			Enabled: m.DiscountEnabled,
		},
		TotalPaid:  m.TotalPaid,
		Notes:      m.Notes,
		TemplateID: m.TemplateID,
	}
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice
func InvoiceModelFromDomain(inv *invoicing.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		Number:          inv.Number,
		Status:          inv.Status.String(),
		IssueDate:       inv.IssueDate,
		DueDate:         inv.DueDate,
		Currency:        inv.Currency.String(),
		CompanyID:       inv.CompanyID,
		CustomerID:      inv.CustomerID,
		TaxRate:         inv.Tax.Rate,
		TaxType:         string(inv.Tax.Type),
		DiscountValue:   inv.Discount.Value,
		DiscountType:    string(inv.Discount.Type),
		DiscountEnabled: inv.Discount.Enabled,
		TotalPaid:       inv.TotalPaid,
		Notes:           inv.Notes,
		TemplateID:      inv.TemplateID,
		Items:           make([]InvoiceItemModel, len(inv.Items)),
	}
	m.FromDomainBaseEntity(inv.BaseEntity)
	for i, it := range inv.Items {
		m.Items[i] = InvoiceItemModel{
			ID:          it.ID,
			InvoiceID:   inv.ID,
			Position:    i,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		}
	}
	return m
}
