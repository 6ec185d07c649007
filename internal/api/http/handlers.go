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

type Handler struct {
	Carts    *service.CartSessions
	Menu     *service.MenuService
	Checkout *service.CheckoutService
	Auth     *service.AuthService
	Orders   *service.OrderService
	Comments *service.CommentService
	Catering *service.CateringService
}

func NewHandler(
	carts *service.CartSessions,
	menu *service.MenuService,
	checkout *service.CheckoutService,
	auth *service.AuthService,
	orders *service.OrderService,
	comments *service.CommentService,
	catering *service.CateringService,
) *Handler {
	return &Handler{
		Carts:    carts,
		Menu:     menu,
		Checkout: checkout,
		Auth:     auth,
		Orders:   orders,
		Comments: comments,
		Catering: catering,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{category}", h.getMenuCategory).Methods("GET")

	r.HandleFunc("/api/cart", withSession(h.getCart)).Methods("GET")
	r.HandleFunc("/api/cart", withSession(h.clearCart)).Methods("DELETE")
	r.HandleFunc("/api/cart/items", withSession(h.addCartItem)).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}", withSession(h.removeCartItem)).Methods("DELETE")
	r.HandleFunc("/api/cart/items/{itemId}/increase", withSession(h.increaseCartItem)).Methods("POST")
	r.HandleFunc("/api/cart/items/{itemId}/decrease", withSession(h.decreaseCartItem)).Methods("POST")
	r.HandleFunc("/api/cart/fulfillment", withSession(h.setFulfillment)).Methods("PUT")

	r.HandleFunc("/api/checkout", withSession(h.requireAuth(h.submitCheckout))).Methods("POST")

	r.HandleFunc("/api/auth/signup", h.signUp).Methods("POST")
	r.HandleFunc("/api/auth/login", h.logIn).Methods("POST")
	r.HandleFunc("/api/auth/me", h.requireAuth(h.me)).Methods("GET")

	r.HandleFunc("/api/profile", h.requireAuth(h.getProfile)).Methods("GET")
	r.HandleFunc("/api/profile", h.requireAuth(h.putProfile)).Methods("PUT")
	r.HandleFunc("/api/profile/orders", h.requireAuth(h.orderHistory)).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.requireAuth(h.orderQRCode)).Methods("GET")

	r.HandleFunc("/api/comments", h.getComments).Methods("GET")
	r.HandleFunc("/api/comments", h.postComment).Methods("POST")
	r.HandleFunc("/api/catering", h.postCatering).Methods("POST")

	r.HandleFunc("/api/admin/orders", h.requireAdmin(h.adminListOrders)).Methods("GET")
	r.HandleFunc("/api/admin/orders/{id}/status", h.requireAdmin(h.adminUpdateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/admin/menu", h.requireAdmin(h.adminCreateMenuItem)).Methods("POST")
	r.HandleFunc("/api/admin/menu/{id}", h.requireAdmin(h.adminUpdateMenuItem)).Methods("PUT")
	r.HandleFunc("/api/admin/menu/{id}", h.requireAdmin(h.adminDeleteMenuItem)).Methods("DELETE")
	r.HandleFunc("/api/admin/catering", h.requireAdmin(h.adminListCatering)).Methods("GET")
	r.HandleFunc("/api/admin/summary", h.requireAdmin(h.adminSummary)).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "damone-orders",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menu.FullMenu()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getMenuCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.Category(mux.Vars(r)["category"])
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// cartView is the render shape of a cart: lines plus the derived totals,
// rounded here at the display edge only.
type cartView struct {
	Lines      []domain.OrderLine     `json:"lines"`
	Mode       domain.FulfillmentMode `json:"fulfillment_mode,omitempty"`
	TotalItems int                    `json:"total_items"`
	Subtotal   float64                `json:"subtotal"`
	Total      float64                `json:"total"`
}

func viewOf(cart *service.CartService) cartView {
	snapshot := cart.Snapshot()
	lines := snapshot.Lines
	if lines == nil {
		lines = []domain.OrderLine{}
	}
	return cartView{
		Lines:      lines,
		Mode:       snapshot.Mode,
		TotalItems: snapshot.TotalItems(),
		Subtotal:   domain.Round2(snapshot.Subtotal()),
		Total:      domain.Round2(snapshot.Total()),
	}
}

func (h *Handler) cart(r *http.Request) *service.CartService {
	return h.Carts.Get(r.Context(), sessionID(r), language(r))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, viewOf(h.cart(r)))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ItemID string `json:"item_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Menu.Find(payload.ItemID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	cart := h.cart(r)
	if err := cart.AddItem(r.Context(), *item); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(r)
	if err := cart.RemoveItem(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) increaseCartItem(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(r)
	if err := cart.IncreaseQuantity(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) decreaseCartItem(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(r)
	if err := cart.DecreaseQuantity(r.Context(), mux.Vars(r)["itemId"]); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart := h.cart(r)
	if err := cart.Clear(r.Context()); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) setFulfillment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart := h.cart(r)
	if err := cart.SetFulfillmentMode(r.Context(), domain.FulfillmentMode(payload.Mode)); err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(cart))
}

func (h *Handler) submitCheckout(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Address string `json:"address"`
	}
	if r.Body != nil {
		// Address is optional; an empty body means "use the saved one".
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	order, err := h.Checkout.Submit(r.Context(), h.cart(r), userID(r), payload.Address)
	if err != nil {
		writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidFulfillment),
		errors.Is(err, service.ErrModeUnset),
		errors.Is(err, service.ErrAddressRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrCheckoutInFlight):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])

	qr, err := h.Orders.QRCode(orderID, userID(r), isAdmin(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
