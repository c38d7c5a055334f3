package domain

import (
	"errors"
	"strings"
)

var (
	ErrNameRequired        = errors.New("name is required")
	ErrPhoneRequired       = errors.New("phone number is required")
	ErrPhoneTooShort       = errors.New("phone number must be at least 11 digits")
	ErrDistrictRequired    = errors.New("district is required")
	ErrSubDistrictRequired = errors.New("sub-district is required")
	ErrHouseRequired       = errors.New("house number is required")
)

// DeliveryAddress is the shipping block collected at checkout. It lives only
// inside the order record; there is no standalone address book.
type DeliveryAddress struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	District    string `json:"district"`
	SubDistrict string `json:"subDistrict"`
	HouseNumber string `json:"houseNumber"`
	Street      string `json:"street,omitempty"`
}

// Validate is fail-fast: it returns the first failing field, in a fixed
// order, so the caller always surfaces a single specific message. Street is
// optional and never validated.
func (a DeliveryAddress) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(a.Phone) == "" {
		return ErrPhoneRequired
	}
	if len(a.Phone) < 11 {
		return ErrPhoneTooShort
	}
	if strings.TrimSpace(a.District) == "" {
		return ErrDistrictRequired
	}
	if strings.TrimSpace(a.SubDistrict) == "" {
		return ErrSubDistrictRequired
	}
	if strings.TrimSpace(a.HouseNumber) == "" {
		return ErrHouseRequired
	}
	return nil
}
