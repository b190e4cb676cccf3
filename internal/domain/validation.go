package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validation errors
var (
	ErrInvalidName      = errors.New("invalid customer name")
	ErrInvalidTaxID     = errors.New("invalid tax id")
	ErrInvalidBirthDate = errors.New("invalid birth date")
)

const (
	MaxNameLength = 255
	MinNameLength = 1

	// TaxIDLength is the number of digits in a tax id.
	TaxIDLength = 11
)

var taxIDRegex = regexp.MustCompile(`^[0-9]{11}$`)

// ValidateName validates a customer's legal name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateTaxID validates the tax id format: exactly 11 digits, no
// punctuation. Uniqueness is the registry's concern, not checked here.
func ValidateTaxID(taxID string) error {
	if !taxIDRegex.MatchString(taxID) {
		return fmt.Errorf("%w: expected %d digits", ErrInvalidTaxID, TaxIDLength)
	}

	return nil
}

// ValidateBirthDate rejects zero and future dates.
func ValidateBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidBirthDate)
	}

	if birthDate.After(time.Now()) {
		return fmt.Errorf("%w: date is in the future", ErrInvalidBirthDate)
	}

	return nil
}
