package partner

import (
	"strings"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
)

// Company is the issuing business printed in an invoice header
type Company struct {
	shared.BaseEntity
	Name    string
	Email   string
	Phone   string
	TaxID   string
	Website string
	Address valueobject.Address
	// LogoURL points at an image hosted by the owning application
	LogoURL string
}

// NewCompany creates a company profile
func NewCompany(name string) (*Company, error) {
	return NewCompanyWithID(uuid.New(), name)
}

// NewCompanyWithID creates a company for an identifier issued elsewhere
func NewCompanyWithID(id uuid.UUID, name string) (*Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewInvalidInputError("name", "company name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewInvalidInputError("name", "company name cannot exceed 200 characters")
	}
	return &Company{
		BaseEntity: shared.NewBaseEntityWithID(id),
		Name:       name,
	}, nil
}

// SetContact sets email and phone, validated like a customer's
func (c *Company) SetContact(email, phone string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	c.Email = email
	c.Phone = phone
	c.Touch()
	return nil
}

// SetTaxID sets the tax identification number
func (c *Company) SetTaxID(taxID string) error {
	if len(taxID) > 50 {
		return shared.NewInvalidInputError("tax_id", "tax ID cannot exceed 50 characters")
	}
	c.TaxID = taxID
	c.Touch()
	return nil
}
