package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"damone-orders/internal/domain"
	"damone-orders/internal/service"
)

func (h *Handler) getComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.Comments.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *Handler) postComment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.Comments.Post(payload.Author, payload.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyComment) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handler) postCatering(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		EventDate  string `json:"event_date"`
		GuestCount int    `json:"guest_count"`
		Message    string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	eventDate, err := time.Parse("2006-01-02", payload.EventDate)
	if err != nil {
		http.Error(w, "event_date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	inquiry := &domain.CateringInquiry{
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		EventDate:  eventDate,
		GuestCount: payload.GuestCount,
		Message:    payload.Message,
	}

	if err := h.Catering.Submit(inquiry); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingContact),
			errors.Is(err, service.ErrPastEventDate),
			errors.Is(err, service.ErrInvalidGuestCount):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, inquiry)
}
