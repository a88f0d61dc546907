package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.createCategory)
		r.Get("/{id}", h.getCategory)
		r.Put("/{id}", h.updateCategory)
		r.Delete("/{id}", h.deleteCategory)
	})
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	respond(w, http.StatusOK, categories)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	c, err := h.service.GetCategory(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Category not found")
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category data")
		return
	}
	c, err := h.service.CreateCategory(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid category data")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	respond(w, http.StatusCreated, c)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	var req UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category data")
		return
	}
	c, err := h.service.UpdateCategory(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}
	respond(w, http.StatusOK, c)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid category id")
		return
	}
	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Category not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	var (
		products []*ProductWithCategory
		err      error
	)
	switch {
	case r.URL.Query().Get("search") != "":
		products, err = h.service.SearchProducts(r.Context(), r.URL.Query().Get("search"))
	case r.URL.Query().Get("category") != "":
		categoryID, convErr := strconv.Atoi(r.URL.Query().Get("category"))
		if convErr != nil {
			respondError(w, http.StatusBadRequest, "Invalid category id")
			return
		}
		products, err = h.service.ListProductsByCategory(r.Context(), categoryID)
	default:
		products, err = h.service.ListProducts(r.Context())
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	p, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product data")
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "Invalid product data")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product data")
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product id")
		return
	}
	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, map[string]string{"message": message})
}
