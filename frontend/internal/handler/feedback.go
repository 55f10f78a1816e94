package handler

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	frontend_domain "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/domain"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
)

func (h *Handler) FeedbackGetHandler(w http.ResponseWriter, r *http.Request) {
	var (
		data   frontend_domain.FeedbackPageData
		errMsg string
		wg     sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		resp, err := h.APIClient.Feedback.GetAll(r.Context())
		logBackendError("fetching feedback", err)
		data.Feedback, errMsg = result(resp, err)
	}()
	go func() {
		defer wg.Done()
		resp, err := h.APIClient.Feedback.GetAverageRating(r.Context())
		logBackendError("fetching average rating", err)
		if rating, msg := result(resp, err); msg == "" && rating > 0 {
			data.AverageRating, data.HasRating = rating, true
		}
	}()
	wg.Wait()

	h.renderTemplateWithError(w, r, http.StatusOK, "feedback.html", data, errMsg)
}

// FeedbackPostHandler submits a review. Rating bounds are checked by the
// backend, which answers success:false when they are violated.
func (h *Handler) FeedbackPostHandler(w http.ResponseWriter, r *http.Request) {
	rating, _ := strconv.Atoi(r.FormValue("rating"))
	form := api.CreateFeedbackRequest{
		GuestName:  strings.TrimSpace(r.FormValue("guestName")),
		GuestEmail: strings.TrimSpace(r.FormValue("guestEmail")),
		Rating:     rating,
		Comment:    strings.TrimSpace(r.FormValue("comment")),
	}

	resp, err := h.APIClient.Feedback.Create(r.Context(), form)
	logBackendError("submitting feedback", err)
	if _, errMsg := result(resp, err); errMsg != "" {
		h.redirectWithFlash(w, r, "/feedback", flashCookieError, errMsg)
		return
	}
	h.redirectWithFlash(w, r, "/feedback", flashCookieSuccess, "Thank you for your feedback!")
}

func (h *Handler) ContactGetHandler(w http.ResponseWriter, r *http.Request) {
	var data frontend_domain.ContactPageData
	resp, err := h.APIClient.Contact.GetInfo(r.Context())
	logBackendError("fetching contact info", err)
	info, errMsg := result(resp, err)
	if errMsg == "" {
		data.Info = &info
	}
	data.Form.Email = currentEmail(r)
	h.renderTemplateWithError(w, r, http.StatusOK, "contact.html", data, errMsg)
}

func (h *Handler) ContactPostHandler(w http.ResponseWriter, r *http.Request) {
	form := api.ContactFormRequest{
		Name:    strings.TrimSpace(r.FormValue("name")),
		Email:   parseEmail(r),
		Phone:   strings.TrimSpace(r.FormValue("phone")),
		Subject: strings.TrimSpace(r.FormValue("subject")),
		Message: strings.TrimSpace(r.FormValue("message")),
	}

	resp, err := h.APIClient.Contact.SubmitForm(r.Context(), form)
	logBackendError("submitting contact form", err)
	if _, errMsg := result(resp, err); errMsg != "" {
		h.redirectWithFlash(w, r, "/contact", flashCookieError, errMsg)
		return
	}
	h.redirectWithFlash(w, r, "/contact", flashCookieSuccess, "Thanks! We will get back to you soon.")
}

func currentEmail(r *http.Request) string {
	if user := currentUser(r); user != nil {
		return user.Email
	}
	return ""
}
