// Package contact normalises player email addresses and phone numbers
// before they are stored.
package contact

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "US"

var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
)

// NormalizeEmail returns the lower-cased bare address. Display-name forms
// such as "Jo <jo@example.com>" are rejected.
func NormalizeEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Name != "" || addr.Address != raw {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}

// NormalizePhone parses raw in defaultRegion unless it carries a country
// code, and returns it in E.164 form.
func NormalizePhone(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if strings.Contains(raw, "@") {
		return "", ErrInvalidPhone
	}
	if defaultRegion == "" {
		defaultRegion = DefaultRegion
	}
	num, err := phonenumbers.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
