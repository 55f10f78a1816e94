package apiclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

// === Booking Methods ===

type BookingsAPI struct{ c *APIClient }

func (a *BookingsAPI) Create(ctx context.Context, data api.CreateBookingRequest) (*api.Response[domain.Booking], error) {
	return post[domain.Booking](ctx, a.c, "/booking", data)
}

func (a *BookingsAPI) GetByID(ctx context.Context, id int64) (*api.Response[domain.Booking], error) {
	return get[domain.Booking](ctx, a.c, "/booking/"+strconv.FormatInt(id, 10), nil)
}

func (a *BookingsAPI) GetByEmail(ctx context.Context, email domain.Email) (*api.Response[[]domain.Booking], error) {
	return get[[]domain.Booking](ctx, a.c, "/booking/guest/"+segment(email), nil)
}

// CheckAvailability asks whether roomID is free for the whole stay.
func (a *BookingsAPI) CheckAvailability(ctx context.Context, roomID domain.RoomId, checkIn, checkOut time.Time) (*api.Response[bool], error) {
	query := url.Values{
		"roomId":   {strconv.FormatInt(roomID, 10)},
		"checkIn":  {domain.FormatDate(checkIn)},
		"checkOut": {domain.FormatDate(checkOut)},
	}
	return get[bool](ctx, a.c, "/booking/check-availability", query)
}
