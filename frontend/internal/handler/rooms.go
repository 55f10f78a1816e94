package handler

import (
	"net/http"
	"strings"

	frontend_domain "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/domain"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	sharedErrors "github.com/Ghorpaderamdas/server-Hotel/shared/errors"
	"github.com/go-chi/chi/v5"
)

// RoomsGetHandler lists rooms. ?type= filters locally; a valid
// ?checkIn=&checkOut= pair asks the backend for available rooms only.
func (h *Handler) RoomsGetHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	data := frontend_domain.RoomsPageData{
		RoomTypes:    domain.RoomTypes,
		SelectedType: selectedRoomType(query.Get("type")),
		CheckIn:      query.Get("checkIn"),
		CheckOut:     query.Get("checkOut"),
	}

	var (
		resp *api.Response[[]domain.Room]
		err  error
	)
	if in, out, ok := parseStay(data.CheckIn, data.CheckOut); ok {
		resp, err = h.APIClient.Rooms.GetAvailable(r.Context(), in, out)
	} else {
		data.CheckIn, data.CheckOut = "", ""
		resp, err = h.APIClient.Rooms.GetAll(r.Context())
	}
	logBackendError("fetching rooms", err)

	rooms, errMsg := result(resp, err)
	data.Rooms = domain.FilterRoomsByType(rooms, data.SelectedType)
	h.renderTemplateWithError(w, r, http.StatusOK, "rooms.html", data, errMsg)
}

// selectedRoomType maps the query value onto a known filter button.
func selectedRoomType(value string) domain.RoomType {
	for _, t := range domain.RoomTypes {
		if strings.EqualFold(t, value) {
			return t
		}
	}
	if value == "" {
		return domain.RoomTypeAll
	}
	return value
}

func (h *Handler) RoomGetHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.renderError(w, r, sharedErrors.NotFound("Room not found"))
		return
	}

	resp, err := h.APIClient.Rooms.GetByID(r.Context(), id)
	logBackendError("fetching room", err)
	room, errMsg := result(resp, err)
	if errMsg != "" {
		h.renderFetchError(w, r, err, errMsg, "Room not found")
		return
	}
	h.renderTemplate(w, r, "room.html", frontend_domain.RoomPageData{Room: room})
}
