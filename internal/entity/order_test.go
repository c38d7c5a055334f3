package domain

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryCharge(t *testing.T) {
	assert.Equal(t, Taka(100), DeliverDhaka.Charge())
	assert.Equal(t, Taka(150), DeliverOutside.Charge())
}

func TestParseDeliveryLocation(t *testing.T) {
	loc, err := ParseDeliveryLocation("dhaka")
	require.NoError(t, err)
	assert.Equal(t, DeliverDhaka, loc)

	_, err = ParseDeliveryLocation("Dhaka")
	assert.ErrorIs(t, err, ErrUnknownLocation)
	_, err = ParseDeliveryLocation("")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "shipped", "delivered", "cancelled", "returned"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	_, err := ParseStatus("refunded")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestNewOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	n := NewOrderNumber(now)

	require.Regexp(t, regexp.MustCompile(`^AMA-\d+-\d{4}$`), n)

	parts := strings.Split(n, "-")
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), ms)
}
