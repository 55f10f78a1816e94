package domain

import "time"

type (
	Email    = string
	UserId   = int64
	RoomId   = int64
	RoomType = string
)

// DateLayout is the calendar-date format the backend uses for stay dates
// (checkIn, checkOut, checkInDate, checkOutDate).
const DateLayout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
