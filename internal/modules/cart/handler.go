package cart

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes cart HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/session", h.newSession)
		r.Post("/", h.addToCart)
		r.Get("/{sessionId}", h.getCart)
		r.Delete("/{sessionId}", h.clearCart)
		r.Put("/{sessionId}/{productId}", h.updateItem)
		r.Delete("/{sessionId}/{productId}", h.removeItem)
	})
}

func (h *Handler) newSession(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"sessionId": h.service.NewSessionID()})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	items, err := h.service.GetCartItems(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch cart items")
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid cart item data")
		return
	}
	item, err := h.service.AddToCart(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid cart item data")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}
	respond(w, http.StatusCreated, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil || *req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "Invalid quantity")
		return
	}
	_, err = h.service.UpdateCartItem(r.Context(), sessionID, productID, *req.Quantity)
	if err != nil {
		// Setting a missing line to zero is already the requested end state,
		// so only a positive-quantity miss is reported as 404.
		if errors.Is(err, ErrNotFound) && *req.Quantity > 0 {
			respondError(w, http.StatusNotFound, "Cart item not found")
			return
		}
		if !errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusInternalServerError, "Failed to update cart item")
			return
		}
	}
	respond(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	if err := h.service.RemoveFromCart(r.Context(), sessionID, productID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Cart item not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to remove cart item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	if err := h.service.ClearCart(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"message": message})
}
