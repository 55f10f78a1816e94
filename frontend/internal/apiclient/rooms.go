package apiclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

// === Room Methods ===

type RoomsAPI struct{ c *APIClient }

func (a *RoomsAPI) GetAll(ctx context.Context) (*api.Response[[]domain.Room], error) {
	return get[[]domain.Room](ctx, a.c, "/rooms", nil)
}

func (a *RoomsAPI) GetByID(ctx context.Context, id domain.RoomId) (*api.Response[domain.Room], error) {
	return get[domain.Room](ctx, a.c, "/rooms/"+strconv.FormatInt(id, 10), nil)
}

func (a *RoomsAPI) GetByType(ctx context.Context, roomType domain.RoomType) (*api.Response[[]domain.Room], error) {
	return get[[]domain.Room](ctx, a.c, "/rooms/type/"+segment(roomType), nil)
}

func (a *RoomsAPI) GetAvailable(ctx context.Context, checkIn, checkOut time.Time) (*api.Response[[]domain.Room], error) {
	query := url.Values{
		"checkIn":  {domain.FormatDate(checkIn)},
		"checkOut": {domain.FormatDate(checkOut)},
	}
	return get[[]domain.Room](ctx, a.c, "/rooms/available", query)
}
