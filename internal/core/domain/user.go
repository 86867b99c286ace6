package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MaxBaseSalary is the upper bound for a user's base salary.
const MaxBaseSalary = 15_000_000

// MinPasswordLength is a policy knob, not a security target.
const MinPasswordLength = 3

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// User is the core identity + profile + credential aggregate.
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Name         string     `json:"name" bson:"name"`
	LastName     string     `json:"last_name" bson:"last_name"`
	BirthDate    *time.Time `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	Address      string     `json:"address,omitempty" bson:"address,omitempty"`
	Phone        string     `json:"phone,omitempty" bson:"phone,omitempty"`
	EmailAddress string     `json:"email_address" bson:"email_address"`
	BaseSalary   float64    `json:"base_salary" bson:"base_salary"`
	RoleID       string     `json:"role_id" bson:"role_id"`
	PasswordHash string     `json:"-" bson:"password_hash"`
}

// Validate checks the mandatory fields in a fixed order and fails on the
// first violation. Birth date, address, and phone carry no validation.
// All failures wrap ErrInvalidData.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidData)
	}
	if strings.TrimSpace(u.LastName) == "" {
		return fmt.Errorf("%w: last name cannot be empty", ErrInvalidData)
	}
	if strings.TrimSpace(u.EmailAddress) == "" {
		return fmt.Errorf("%w: email address cannot be empty", ErrInvalidData)
	}
	if !emailPattern.MatchString(u.EmailAddress) {
		return fmt.Errorf("%w: email address format is not valid", ErrInvalidData)
	}
	if u.BaseSalary <= 0 {
		return fmt.Errorf("%w: base salary must be greater than 0", ErrInvalidData)
	}
	if u.BaseSalary > MaxBaseSalary {
		return fmt.Errorf("%w: base salary cannot be greater than %d", ErrInvalidData, MaxBaseSalary)
	}
	if strings.TrimSpace(u.RoleID) == "" {
		return fmt.Errorf("%w: role id cannot be empty", ErrInvalidData)
	}
	if strings.TrimSpace(u.PasswordHash) == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidData)
	}
	return nil
}

// ValidateRawPassword applies the minimum-length policy to a password before
// it is hashed. The stored hash is never length-checked.
func ValidateRawPassword(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrInvalidData)
	}
	if len(raw) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidData, MinPasswordLength)
	}
	return nil
}
