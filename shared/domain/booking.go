package domain

import "slices"

// BookingStatus and PaymentStatus are independent. The backend decides which
// combinations are legal; nothing here enforces transitions.
type (
	BookingStatus string
	PaymentStatus string
)

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

var (
	bookingStatuses = []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}
	paymentStatuses = []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded}
)

func (s BookingStatus) Valid() bool { return slices.Contains(bookingStatuses, s) }
func (s PaymentStatus) Valid() bool { return slices.Contains(paymentStatuses, s) }

type Booking struct {
	Id              int64         `json:"id"`
	Room            Room          `json:"room"`
	GuestName       string        `json:"guestName"`
	GuestPhone      string        `json:"guestPhone"`
	GuestEmail      Email         `json:"guestEmail"`
	CheckInDate     string        `json:"checkInDate"`
	CheckOutDate    string        `json:"checkOutDate"`
	TotalAmount     float64       `json:"totalAmount"`
	Status          BookingStatus `json:"status"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	PaymentId       string        `json:"paymentId,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	CreatedAt       string        `json:"createdAt"`
	UpdatedAt       string        `json:"updatedAt"`
}

// Nights is the length of stay, or 0 if the dates do not parse.
func (b Booking) Nights() int {
	in, err := ParseDate(b.CheckInDate)
	if err != nil {
		return 0
	}
	out, err := ParseDate(b.CheckOutDate)
	if err != nil || !out.After(in) {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}
