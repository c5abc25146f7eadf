// Package models defines the records storekeeper reads from and writes to
// the relational store. Every row has a named-field struct so column order
// never leaks into the callers.
package models

import "fmt"

// Customer is the full detail record of a registered customer.
type Customer struct {
	ID               int64
	LastName         string
	FirstName        string
	Company          string
	Phone            string
	Email            string
	Address          string
	DateOfBirth      string
	IdentityVerified bool
}

// CustomerSummary is the listing row used for paging.
type CustomerSummary struct {
	ID        int64
	LastName  string
	FirstName string
}

// FullName returns "First Last".
func (c CustomerSummary) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// CustomerField is an updatable customer attribute. Its value is the column
// name, so only members of CustomerFields can ever reach an UPDATE statement.
type CustomerField string

const (
	CustomerLastName         CustomerField = "last_name"
	CustomerFirstName        CustomerField = "first_name"
	CustomerCompany          CustomerField = "company"
	CustomerPhone            CustomerField = "phone"
	CustomerEmail            CustomerField = "email"
	CustomerAddress          CustomerField = "address"
	CustomerDateOfBirth      CustomerField = "date_of_birth"
	CustomerIdentityVerified CustomerField = "identity_verified"
)

// CustomerFields lists the updatable fields in display order.
var CustomerFields = []CustomerField{
	CustomerLastName,
	CustomerFirstName,
	CustomerCompany,
	CustomerPhone,
	CustomerEmail,
	CustomerAddress,
	CustomerDateOfBirth,
	CustomerIdentityVerified,
}

// ParseCustomerField returns the field named s, or false if s is not updatable.
func ParseCustomerField(s string) (CustomerField, bool) {
	for _, f := range CustomerFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
