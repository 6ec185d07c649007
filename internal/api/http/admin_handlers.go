package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"damone-orders/internal/domain"
	"damone-orders/internal/service"
)

func (h *Handler) adminListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListAll(r.URL.Query().Get("status"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) adminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Orders.UpdateStatus(orderID, payload.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": payload.Status})
}

func (h *Handler) adminCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.Create(&item); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidItem):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrItemExists):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) adminUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = mux.Vars(r)["id"]

	if err := h.Menu.Update(&item); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidItem):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrItemNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) adminDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Menu.Delete(mux.Vars(r)["id"]); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) adminListCatering(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.Catering.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, inquiries)
}

func (h *Handler) adminSummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	summary, err := h.Orders.Summary(r.Context(), date, 5)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
