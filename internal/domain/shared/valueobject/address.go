package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a value object representing a billing address.
// Every field is optional; a customer may be invoiced with no address at all.
type Address struct {
	street     string
	city       string
	region     string
	postalCode string
	country    string
}

// AddressOption is a functional option for configuring Address
type AddressOption func(*Address)

// WithRegion sets the state/province/region
func WithRegion(region string) AddressOption {
	return func(a *Address) {
		a.region = strings.TrimSpace(region)
	}
}

// WithPostalCode sets the postal code for the address
func WithPostalCode(postalCode string) AddressOption {
	return func(a *Address) {
		a.postalCode = strings.TrimSpace(postalCode)
	}
}

// WithCountry sets the country for the address
func WithCountry(country string) AddressOption {
	return func(a *Address) {
		a.country = strings.TrimSpace(country)
	}
}

// NewAddress creates a new Address
func NewAddress(street, city string, opts ...AddressOption) (Address, error) {
	addr := Address{
		street: strings.TrimSpace(street),
		city:   strings.TrimSpace(city),
	}
	for _, opt := range opts {
		opt(&addr)
	}

	if len(addr.street) > 500 {
		return Address{}, fmt.Errorf("street cannot exceed 500 characters")
	}
	if len(addr.city) > 100 {
		return Address{}, fmt.Errorf("city cannot exceed 100 characters")
	}
	if len(addr.postalCode) > 20 {
		return Address{}, fmt.Errorf("postal code cannot exceed 20 characters")
	}
	if len(addr.country) > 100 {
		return Address{}, fmt.Errorf("country cannot exceed 100 characters")
	}
	return addr, nil
}

// Street returns the street line
func (a Address) Street() string { return a.street }

// City returns the city
func (a Address) City() string { return a.city }

// Region returns the state/province/region
func (a Address) Region() string { return a.region }

// PostalCode returns the postal code
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country
func (a Address) Country() string { return a.country }

// IsEmpty returns true if the address is empty (all fields are blank)
func (a Address) IsEmpty() bool {
	return a.street == "" && a.city == "" && a.region == "" && a.postalCode == "" && a.country == ""
}

// Lines returns the address as printable lines:
// street / "city, region postal" / country. Blank lines are dropped.
func (a Address) Lines() []string {
	lines := make([]string, 0, 3)
	if a.street != "" {
		lines = append(lines, a.street)
	}

	locality := a.city
	if a.region != "" {
		if locality != "" {
			locality += ", "
		}
		locality += a.region
	}
	if a.postalCode != "" {
		if locality != "" {
			locality += " "
		}
		locality += a.postalCode
	}
	if locality != "" {
		lines = append(lines, locality)
	}

	if a.country != "" {
		lines = append(lines, a.country)
	}
	return lines
}

// String returns a single-line representation of the address
func (a Address) String() string {
	return strings.Join(a.Lines(), ", ")
}

// Equals returns true if both addresses are equal
func (a Address) Equals(other Address) bool {
	return a == other
}

// addressJSON is used for JSON marshaling/unmarshaling
type addressJSON struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street:     a.street,
		City:       a.city,
		Region:     a.region,
		PostalCode: a.postalCode,
		Country:    a.country,
	})
}

// UnmarshalJSON implements json.Unmarshaler, applying NewAddress validation
func (a *Address) UnmarshalJSON(data []byte) error {
	var v addressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	addr, err := NewAddress(v.Street, v.City,
		WithRegion(v.Region), WithPostalCode(v.PostalCode), WithCountry(v.Country))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Value implements driver.Valuer, storing the address as a JSON document
func (a Address) Value() (driver.Value, error) {
	b, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for JSON/text columns
func (a *Address) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*a = Address{}
		return nil
	case string:
		if v == "" {
			*a = Address{}
			return nil
		}
		return a.UnmarshalJSON([]byte(v))
	case []byte:
		if len(v) == 0 {
			*a = Address{}
			return nil
		}
		return a.UnmarshalJSON(v)
	default:
		return fmt.Errorf("cannot scan %T into Address", value)
	}
}
