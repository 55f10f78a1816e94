package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusesAreIndependent(t *testing.T) {
	b := Booking{Status: BookingConfirmed, PaymentStatus: PaymentPending}
	assert.True(t, b.Status.Valid())
	assert.True(t, b.PaymentStatus.Valid())

	assert.False(t, BookingStatus("PAID").Valid())
	assert.False(t, PaymentStatus("CONFIRMED").Valid())
}

func TestBookingNights(t *testing.T) {
	tests := []struct {
		in, out string
		nights  int
	}{
		{"2024-06-01", "2024-06-03", 2},
		{"2024-06-01", "2024-06-01", 0},
		{"2024-06-03", "2024-06-01", 0},
		{"garbage", "2024-06-01", 0},
	}
	for _, tt := range tests {
		b := Booking{CheckInDate: tt.in, CheckOutDate: tt.out}
		assert.Equal(t, tt.nights, b.Nights(), "%s -> %s", tt.in, tt.out)
	}
}
