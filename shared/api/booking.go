package api

// Request DTOs shared by the resource clients and page handlers

type CreateBookingRequest struct {
	RoomId          int64  `json:"roomId"`
	GuestName       string `json:"guestName"`
	GuestPhone      string `json:"guestPhone"`
	GuestEmail      string `json:"guestEmail"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

type CreateFeedbackRequest struct {
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}
