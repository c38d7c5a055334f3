package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAddress() DeliveryAddress {
	return DeliveryAddress{
		Name:        "Rahim Uddin",
		Phone:       "01712345678",
		District:    "Dhaka",
		SubDistrict: "Mirpur",
		HouseNumber: "12/B",
	}
}

func TestDeliveryAddressValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*DeliveryAddress)
		wantErr error
	}{
		{"valid", func(a *DeliveryAddress) {}, nil},
		{"street optional", func(a *DeliveryAddress) { a.Street = "" }, nil},
		{"missing name", func(a *DeliveryAddress) { a.Name = "  " }, ErrNameRequired},
		{"missing phone", func(a *DeliveryAddress) { a.Phone = "" }, ErrPhoneRequired},
		{"short phone", func(a *DeliveryAddress) { a.Phone = "0171234567" }, ErrPhoneTooShort},
		{"missing district", func(a *DeliveryAddress) { a.District = "" }, ErrDistrictRequired},
		{"missing sub-district", func(a *DeliveryAddress) { a.SubDistrict = "" }, ErrSubDistrictRequired},
		{"missing house", func(a *DeliveryAddress) { a.HouseNumber = "" }, ErrHouseRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAddress()
			tt.mutate(&a)
			err := a.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Validation is fail-fast: with several fields broken, the earliest one in
// the fixed order wins.
func TestDeliveryAddressValidateReportsFirstFailure(t *testing.T) {
	a := DeliveryAddress{Phone: "short"}
	assert.ErrorIs(t, a.Validate(), ErrNameRequired)

	a.Name = "Rahim Uddin"
	assert.ErrorIs(t, a.Validate(), ErrPhoneTooShort)

	a.Phone = "01712345678"
	assert.ErrorIs(t, a.Validate(), ErrDistrictRequired)
}
