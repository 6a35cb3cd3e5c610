package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invoicer/backend/internal/domain/shared"
	"github.com/invoicer/backend/internal/domain/shared/valueobject"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// IsValid checks if the status is valid
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// Customer is someone invoices are billed to
type Customer struct {
	shared.BaseEntity
	Name  string
	Email string
	Phone string
	// Organization is absent for private customers
	Organization *string
	Address      valueobject.Address
	Status       CustomerStatus
	Notes        string
}

// NewCustomer creates a new active customer
func NewCustomer(name, email string) (*Customer, error) {
	return NewCustomerWithID(uuid.New(), name, email)
}

// NewCustomerWithID creates a customer for an identifier issued elsewhere
func NewCustomerWithID(id uuid.UUID, name, email string) (*Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntityWithID(id),
		Name:       name,
		Email:      email,
		Status:     CustomerStatusActive,
	}, nil
}

// SetOrganization sets or clears the organization. Blank clears it.
func (c *Customer) SetOrganization(org string) error {
	org = strings.TrimSpace(org)
	if org == "" {
		c.Organization = nil
		c.Touch()
		return nil
	}
	if len(org) > 200 {
		return shared.NewInvalidInputError("organization", "organization cannot exceed 200 characters")
	}
	c.Organization = &org
	c.Touch()
	return nil
}

// OrganizationName returns the organization or an empty string
func (c *Customer) OrganizationName() string {
	if c.Organization == nil {
		return ""
	}
	return *c.Organization
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(email, phone string) error {
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

// SetAddress replaces the postal address
func (c *Customer) SetAddress(addr valueobject.Address) {
	c.Address = addr
	c.Touch()
}

// Deactivate marks the customer inactive
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError(shared.CodeInvalidState, "customer is already inactive")
	}
	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
	return nil
}

// Activate marks the customer active
func (c *Customer) Activate() error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError(shared.CodeInvalidState, "customer is already active")
	}
	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
	return nil
}

// IsActive returns true if customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// DisplayName returns "Name (Organization)" when an organization is set
func (c *Customer) DisplayName() string {
	if c.Organization == nil {
		return c.Name
	}
	return c.Name + " (" + *c.Organization + ")"
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
)

func validateCustomerName(name string) error {
	if name == "" {
		return shared.NewInvalidInputError("name", "customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewInvalidInputError("name", "customer name cannot exceed 200 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewInvalidInputError("email", "email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewInvalidInputError("email", "invalid email format")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewInvalidInputError("phone", "phone number cannot exceed 50 characters")
	}
	if !phoneRegex.MatchString(phone) {
		return shared.NewInvalidInputError("phone", "invalid phone number format")
	}
	return nil
}
