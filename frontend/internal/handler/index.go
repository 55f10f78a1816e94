package handler

import (
	"net/http"
	"sync"

	frontend_domain "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/domain"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

// IndexGetHandler loads the three home page sections in parallel. Each
// section degrades on its own.
func (h *Handler) IndexGetHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		data   frontend_domain.HomePageData
		errMsg string
		mu     sync.Mutex
		wg     sync.WaitGroup
	)
	fail := func(msg string) {
		mu.Lock()
		defer mu.Unlock()
		if errMsg == "" {
			errMsg = msg
		}
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		resp, err := h.APIClient.Rooms.GetAll(ctx)
		logBackendError("fetching rooms", err)
		rooms, msg := result(resp, err)
		if msg != "" {
			fail(msg)
			return
		}
		data.FeaturedRooms = featuredRooms(rooms, h.Public.FeaturedRooms)
	}()
	go func() {
		defer wg.Done()
		resp, err := h.APIClient.Feedback.GetAverageRating(ctx)
		logBackendError("fetching average rating", err)
		if rating, msg := result(resp, err); msg == "" && rating > 0 {
			data.AverageRating, data.HasRating = rating, true
		}
	}()
	go func() {
		defer wg.Done()
		resp, err := h.APIClient.Contact.GetInfo(ctx)
		logBackendError("fetching contact info", err)
		if info, msg := result(resp, err); msg == "" {
			data.Contact = &info
		}
	}()
	wg.Wait()

	h.renderTemplateWithError(w, r, http.StatusOK, "index.html", data, errMsg)
}

// featuredRooms picks up to n bookable rooms, falling back to any room.
func featuredRooms(rooms []domain.Room, n int) []domain.Room {
	featured := make([]domain.Room, 0, n)
	for _, room := range rooms {
		if len(featured) == n {
			return featured
		}
		if room.IsAvailable {
			featured = append(featured, room)
		}
	}
	for _, room := range rooms {
		if len(featured) == n {
			break
		}
		if !room.IsAvailable {
			featured = append(featured, room)
		}
	}
	return featured
}
