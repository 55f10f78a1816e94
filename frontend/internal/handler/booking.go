package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/apiclient"
	frontend_domain "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/domain"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	sharedErrors "github.com/Ghorpaderamdas/server-Hotel/shared/errors"
	"github.com/Ghorpaderamdas/server-Hotel/shared/utils"
	"github.com/go-chi/chi/v5"
)

// BookingGetHandler shows the booking form, for ?roomId= when given and with a
// room picker otherwise.
func (h *Handler) BookingGetHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	form := api.CreateBookingRequest{
		CheckInDate:  query.Get("checkIn"),
		CheckOutDate: query.Get("checkOut"),
	}
	if id, ok := parseID(query.Get("roomId")); ok {
		form.RoomId = id
	}
	data, errMsg := h.bookingForm(r, form)
	h.renderTemplateWithError(w, r, http.StatusOK, "booking.html", data, errMsg)
}

func (h *Handler) bookingForm(r *http.Request, form api.CreateBookingRequest) (frontend_domain.BookingFormData, string) {
	data := frontend_domain.BookingFormData{Form: form}
	if form.RoomId > 0 {
		resp, err := h.APIClient.Rooms.GetByID(r.Context(), form.RoomId)
		logBackendError("fetching room", err)
		if room, errMsg := result(resp, err); errMsg == "" {
			data.Room = &room
			return data, ""
		}
	}
	resp, err := h.APIClient.Rooms.GetAll(r.Context())
	logBackendError("fetching rooms", err)
	rooms, errMsg := result(resp, err)
	data.Rooms = rooms
	return data, errMsg
}

func (h *Handler) BookingPostHandler(w http.ResponseWriter, r *http.Request) {
	form := api.CreateBookingRequest{
		GuestName:       strings.TrimSpace(r.FormValue("guestName")),
		GuestPhone:      strings.TrimSpace(r.FormValue("guestPhone")),
		GuestEmail:      strings.TrimSpace(r.FormValue("guestEmail")),
		CheckInDate:     r.FormValue("checkInDate"),
		CheckOutDate:    r.FormValue("checkOutDate"),
		SpecialRequests: strings.TrimSpace(r.FormValue("specialRequests")),
	}
	roomID, ok := parseID(r.FormValue("roomId"))
	form.RoomId = roomID

	invalid := ""
	switch {
	case !ok:
		invalid = "Please choose a room."
	case form.GuestName == "" || form.GuestPhone == "" || form.GuestEmail == "":
		invalid = "Name, phone and email are required."
	default:
		if _, _, ok := parseStay(form.CheckInDate, form.CheckOutDate); !ok {
			invalid = "Check-out must be after check-in."
		}
	}
	if invalid != "" {
		data, _ := h.bookingForm(r, form)
		h.renderTemplateWithError(w, r, http.StatusBadRequest, "booking.html", data, invalid)
		return
	}

	resp, err := h.APIClient.Bookings.Create(r.Context(), form)
	logBackendError("creating booking", err)
	booking, errMsg := result(resp, err)
	if errMsg != "" {
		data, _ := h.bookingForm(r, form)
		h.renderTemplateWithError(w, r, http.StatusOK, "booking.html", data, errMsg)
		return
	}

	h.setFlash(w, flashCookieSuccess, "Your booking request has been received.")
	http.Redirect(w, r, "/booking/"+strconv.FormatInt(booking.Id, 10), http.StatusSeeOther)
}

func (h *Handler) BookingConfirmationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		h.renderError(w, r, sharedErrors.NotFound("Booking not found"))
		return
	}

	resp, err := h.APIClient.Bookings.GetByID(r.Context(), id)
	logBackendError("fetching booking", err)
	booking, errMsg := result(resp, err)
	if errMsg != "" {
		h.renderFetchError(w, r, err, errMsg, "Booking not found")
		return
	}
	h.renderTemplate(w, r, "booking_confirmation.html", frontend_domain.BookingConfirmationData{
		Booking: booking,
		Nights:  booking.Nights(),
	})
}

// BookingLookupHandler finds bookings by number or by guest email.
func (h *Handler) BookingLookupHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.BookingLookupData{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if data.Query == "" {
		h.renderTemplate(w, r, "booking_lookup.html", data)
		return
	}
	data.Searched = true

	var (
		err    error
		errMsg string
	)
	if id, ok := parseID(strings.TrimPrefix(data.Query, "#")); ok {
		var resp *api.Response[domain.Booking]
		resp, err = h.APIClient.Bookings.GetByID(r.Context(), id)
		var booking domain.Booking
		if booking, errMsg = result(resp, err); errMsg == "" {
			data.Bookings = []domain.Booking{booking}
		}
	} else {
		var resp *api.Response[[]domain.Booking]
		resp, err = h.APIClient.Bookings.GetByEmail(r.Context(), data.Query)
		data.Bookings, errMsg = result(resp, err)
	}
	logBackendError("looking up bookings", err)

	// Not found is an empty result, not a failure.
	if apiclient.IsNotFound(err) {
		errMsg = ""
	}
	h.renderTemplateWithError(w, r, http.StatusOK, "booking_lookup.html", data, errMsg)
}

type availabilityResponse struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// BookingCheckHandler answers the room page's availability widget with JSON.
func (h *Handler) BookingCheckHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	roomID, ok := parseID(query.Get("roomId"))
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, availabilityResponse{Error: "roomId is required"})
		return
	}
	in, out, ok := parseStay(query.Get("checkIn"), query.Get("checkOut"))
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, availabilityResponse{Error: "checkIn and checkOut must be dates, check-out after check-in"})
		return
	}

	resp, err := h.APIClient.Bookings.CheckAvailability(r.Context(), roomID, in, out)
	logBackendError("checking availability", err)
	available, errMsg := result(resp, err)
	if errMsg != "" {
		status := http.StatusBadGateway
		if err == nil {
			status = http.StatusOK
		}
		utils.WriteJSON(w, status, availabilityResponse{Error: errMsg})
		return
	}
	utils.WriteJSON(w, http.StatusOK, availabilityResponse{Available: available})
}
