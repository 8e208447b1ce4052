package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile("^[a-zA-Z0-9_!#$%&'*+/=?`{|}~^.-]+@[a-zA-Z0-9.-]+\\.[a-zA-Z]{2,}$")

// Customer is immutable after construction. Identity is the email address,
// compared case-insensitively; names never participate in equality.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
}

func NewCustomer(firstName, lastName, email string) (*Customer, error) {
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return &Customer{FirstName: firstName, LastName: lastName, Email: email}, nil
}

// NormalizeEmail is the storage-key form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c *Customer) Key() string { return NormalizeEmail(c.Email) }

func (c *Customer) Equal(o *Customer) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Key() == o.Key()
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
